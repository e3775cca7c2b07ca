package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	xfixed "golang.org/x/image/math/fixed"
)

func TestInt26_6Interop(t *testing.T) {
	assert.Equal(t, xfixed.I(3), ToInt26_6(Int26_6U(3)))
	assert.Equal(t, Int26_6U(-2), FromInt26_6(xfixed.I(-2)))

	// conversions are bit exact in both directions
	for _, bits := range []Int26_6{0, 1, -1, 32, 96, -96, 0x7FFFFFFF, -0x80000000} {
		assert.Equal(t, bits, FromInt26_6(ToInt26_6(bits)))
	}

	// and the two sides agree on rounding
	for _, bits := range []Int26_6{0, 63, 64, 65, -63, -64, -65, 96, -96} {
		assert.Equal(t, ToInt26_6(bits).Floor(), bits.Floor(), "bits %d", bits)
		assert.Equal(t, ToInt26_6(bits).Ceil(), bits.Ceil(), "bits %d", bits)
	}
}

func TestInt52_12Interop(t *testing.T) {
	assert.Equal(t, xfixed.Int52_12(1<<12), ToInt52_12(Int52_12U(1)))

	for _, bits := range []Int52_12{0, 1, -1, 1 << 12, -1 << 12, 98304, -98304} {
		assert.Equal(t, bits, FromInt52_12(ToInt52_12(bits)))
		assert.Equal(t, ToInt52_12(bits).Floor(), bits.Floor(), "bits %d", bits)
	}
}
