// Package roll - seed policy shared by every Roller.
//
// Goals:
//   - Determinism on request: the same seed gives the same faces.
//   - Unpredictability by default: no time-based seeds unless crypto/rand fails.
package roll

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Source is the randomness provider for rolls.
// *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a non-negative pseudo-random int in [0, n). n > 0.
	Intn(n int) int
}

// newSeed returns a high-entropy seed from crypto/rand, falling back to
// the wall clock when the system source is unavailable.
func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// rngFromSeed returns a deterministic *rand.Rand for seed.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// face draws one face of an f-sided die from src.
func face(src Source, faces int) int {
	return src.Intn(faces) + 1
}
