package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var setPattern = regexp.MustCompile(`^(\d*)d(\d+)$`)

// Parse reads a cluster written in dice notation: sets of the form "NdF"
// joined by "+". The count may be omitted ("d20" is "1d20"). Letters are
// case-insensitive and blanks are ignored, so " 2D6 + d8 " parses.
//
// The parsed cluster is validated: "0d6" fails with ErrInvalidCount, not
// ErrSyntax.
func Parse(expr string) (Cluster, error) {
	clean := strings.ToLower(strings.Join(strings.Fields(expr), ""))
	if clean == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}

	terms := strings.Split(clean, "+")
	c := make(Cluster, 0, len(terms))
	for _, term := range terms {
		m := setPattern.FindStringSubmatch(term)
		if m == nil {
			return nil, fmt.Errorf("%w: %q in %q", ErrSyntax, term, expr)
		}
		count := 1
		if m[1] != "" {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("%w: count %q: %v", ErrSyntax, m[1], err)
			}
			count = n
		}
		faces, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: faces %q: %v", ErrSyntax, m[2], err)
		}
		c = append(c, Set{Count: count, Faces: faces})
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustParse is Parse that panics on error. Meant for literals in tests and
// examples.
func MustParse(expr string) Cluster {
	c, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse(" + strconv.Quote(expr) + "): " + err.Error())
	}
	return c
}
