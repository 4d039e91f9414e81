package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultBarWidth is the number of cells used by the longest bar.
const DefaultBarWidth = 50

// TextRenderer prints a horizontal bar chart, one line per total:
//
//	2d6
//	 2 | ########                                 0.0278
//	 7 | ################################################## 0.1667
type TextRenderer struct {
	w     io.Writer
	width int
}

// NewTextRenderer writes charts to w with bars at most width cells long.
// A width below 1 selects DefaultBarWidth.
func NewTextRenderer(w io.Writer, width int) *TextRenderer {
	if width < 1 {
		width = DefaultBarWidth
	}
	return &TextRenderer{w: w, width: width}
}

// Render writes s as text.
func (r *TextRenderer) Render(s Series) error {
	if err := s.Validate(); err != nil {
		return err
	}

	peak := 0.0
	xWidth := 0
	for i, y := range s.Y {
		peak = max(peak, y)
		xWidth = max(xWidth, len(strconv.Itoa(s.X[i])))
	}

	var sb strings.Builder
	if s.Title != "" {
		fmt.Fprintf(&sb, "%s\n", s.Title)
	}
	fmt.Fprintf(&sb, "%*s | %s\n", xWidth, firstRune(s.XLabel), s.YLabel)
	for i, y := range s.Y {
		n := 0
		if peak > 0 {
			n = int(y * float64(r.width) / peak)
		}
		fmt.Fprintf(&sb, "%*d | %-*s %s\n", xWidth, s.X[i], r.width, strings.Repeat("#", n), formatValue(y))
	}

	if _, err := io.WriteString(r.w, sb.String()); err != nil {
		return fmt.Errorf("render: write text: %w", err)
	}
	return nil
}

// firstRune shortens an axis label to fit the narrow sum column.
func firstRune(label string) string {
	for _, r := range label {
		return string(r)
	}
	return ""
}

// formatValue prints whole numbers without decimals and fractions with four.
func formatValue(v float64) string {
	if v == float64(int64(v)) && v < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}
