package poly_test

import (
	"testing"

	"github.com/katalvlaran/lvdice/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []poly.Strategy{poly.Auto, poly.Schoolbook, poly.Kronecker}

// TestMul_TwoDice checks the classic 2d6 triangle under every strategy.
func TestMul_TwoDice(t *testing.T) {
	d6, err := poly.Uniform(1, 6)
	require.NoError(t, err)

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			p := poly.Mul(d6, d6, poly.WithStrategy(s))
			assert.Equal(t, 2, p.MinExp())
			assert.Equal(t, 12, p.MaxExp())
			assert.Equal(t,
				[]string{"1", "2", "3", "4", "5", "6", "5", "4", "3", "2", "1"},
				coeffStrings(p))
		})
	}
}

// TestMul_ZeroAndIdentity checks the algebraic identities of Mul.
func TestMul_ZeroAndIdentity(t *testing.T) {
	d4, _ := poly.Uniform(1, 4)

	assert.True(t, poly.Mul(d4, poly.Zero()).IsZero())
	assert.True(t, poly.Mul(poly.Zero(), d4).IsZero())
	assert.True(t, poly.Equal(d4, poly.Mul(d4, poly.Identity())))
	assert.True(t, poly.Equal(d4, poly.Mul(poly.Identity(), d4)))
}

// TestMul_Commutes verifies p·q == q·p for uneven operands.
func TestMul_Commutes(t *testing.T) {
	p, _ := poly.New(3, 1, 0, 2, 5)
	q, _ := poly.New(-2, 4, 1)

	assert.True(t, poly.Equal(poly.Mul(p, q), poly.Mul(q, p)))
}

// TestMul_KeepsInteriorZeros: (1 + x²)² = 1 + 2x² + x⁴ keeps the odd gaps.
func TestMul_KeepsInteriorZeros(t *testing.T) {
	p, _ := poly.New(0, 1, 0, 1)
	for _, s := range strategies {
		sq := poly.Mul(p, p, poly.WithStrategy(s))
		assert.Equal(t, []string{"1", "0", "2", "0", "1"}, coeffStrings(sq), s.String())
	}
}

// TestMul_StrategiesAgreeOnLargeOperands forces both routes on operands
// whose coefficients exceed a machine word.
func TestMul_StrategiesAgreeOnLargeOperands(t *testing.T) {
	d20, _ := poly.Uniform(1, 20)
	big1, err := poly.Pow(d20, 30, poly.WithStrategy(poly.Schoolbook))
	require.NoError(t, err)
	d12, _ := poly.Uniform(1, 12)
	big2, err := poly.Pow(d12, 25, poly.WithStrategy(poly.Schoolbook))
	require.NoError(t, err)
	require.Greater(t, big1.Coeff(315).BitLen(), 64, "operands must need multi-word slots")

	slow := poly.Mul(big1, big2, poly.WithStrategy(poly.Schoolbook))
	fast := poly.Mul(big1, big2, poly.WithStrategy(poly.Kronecker))
	auto := poly.Mul(big1, big2, poly.WithKroneckerThreshold(1))

	assert.True(t, poly.Equal(slow, fast), "Kronecker must match schoolbook")
	assert.True(t, poly.Equal(slow, auto), "Auto with threshold 1 must match schoolbook")
}

// TestPow matches repeated multiplication and covers n = 0 and n < 0.
func TestPow(t *testing.T) {
	d6, _ := poly.Uniform(1, 6)

	want := poly.Identity()
	for n := 0; n <= 9; n++ {
		got, err := poly.Pow(d6, n)
		require.NoError(t, err)
		assert.True(t, poly.Equal(want, got), "d6^%d", n)
		want = poly.Mul(want, d6)
	}

	zero0, err := poly.Pow(poly.Zero(), 0)
	require.NoError(t, err)
	assert.True(t, poly.Equal(poly.Identity(), zero0), "0^0 is the identity")

	_, err = poly.Pow(d6, -1)
	assert.ErrorIs(t, err, poly.ErrNegativeExponent)
}

// TestPow_SumIsSampleSpace: the coefficients of d8^5 sum to 8^5.
func TestPow_SumIsSampleSpace(t *testing.T) {
	d8, _ := poly.Uniform(1, 8)
	p, err := poly.Pow(d8, 5)
	require.NoError(t, err)
	assert.Equal(t, "32768", p.Sum().String())
}

// TestMul_DoesNotMutate checks operands are unchanged after a product.
func TestMul_DoesNotMutate(t *testing.T) {
	p, _ := poly.New(0, 1, 2, 3)
	before := coeffStrings(p)
	_ = poly.Mul(p, p, poly.WithStrategy(poly.Kronecker))
	_ = poly.Mul(p, p, poly.WithStrategy(poly.Schoolbook))
	assert.Equal(t, before, coeffStrings(p))
}
