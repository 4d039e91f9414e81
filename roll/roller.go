package roll

import (
	"fmt"

	"github.com/katalvlaran/lvdice/dice"
)

// Roller rolls dice sets and clusters.
type Roller struct {
	src Source
}

// SetRoll is the outcome of rolling one Set.
type SetRoll struct {
	Set   dice.Set
	Faces []int // one entry per die, in roll order
	Total int
}

// Result is the outcome of rolling a whole Cluster.
type Result struct {
	Rolls []SetRoll // same order as the cluster
	Total int
}

// New returns a Roller. Without options it is seeded from crypto/rand.
func New(opts ...Option) *Roller {
	r := &Roller{}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.src == nil {
		r.src = rngFromSeed(newSeed())
	}
	return r
}

// RollSet rolls every die of s and returns the faces in roll order.
//
// Errors:
//   - dice.ErrInvalidCount, dice.ErrInvalidFaces.
func (r *Roller) RollSet(s dice.Set) ([]int, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	faces := make([]int, s.Count)
	for i := range faces {
		faces[i] = face(r.src, s.Faces)
	}
	return faces, nil
}

// RollCluster rolls every set of c once.
//
// Errors:
//   - any dice validation error; nothing is rolled when c is invalid.
func (r *Roller) RollCluster(c dice.Cluster) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	res := Result{Rolls: make([]SetRoll, 0, len(c))}
	for _, s := range c {
		faces, err := r.RollSet(s)
		if err != nil {
			return Result{}, err
		}
		sum := 0
		for _, f := range faces {
			sum += f
		}
		res.Rolls = append(res.Rolls, SetRoll{Set: s, Faces: faces, Total: sum})
		res.Total += sum
	}
	return res, nil
}

// RollN rolls c independently n times.
//
// Errors:
//   - ErrInvalidTrials: n < 1.
//   - any dice validation error.
func (r *Roller) RollN(c dice.Cluster, n int) ([]Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTrials, n)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	out := make([]Result, n)
	for i := range out {
		res, err := r.RollCluster(c)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}

// Histogram tallies how often each total occurs in results.
func Histogram(results []Result) map[int]int {
	h := make(map[int]int)
	for _, res := range results {
		h[res.Total]++
	}
	return h
}
