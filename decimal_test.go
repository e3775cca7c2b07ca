package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits10(t *testing.T) {
	assert.Equal(t, uint32(0), digits10(0))
	assert.Equal(t, uint32(1), digits10(1))
	assert.Equal(t, uint32(1), digits10(9))
	assert.Equal(t, uint32(2), digits10(10))
	assert.Equal(t, uint32(2), digits10(15))
	assert.Equal(t, uint32(3), digits10(255))
	assert.Equal(t, uint32(5), digits10(65535))
	assert.Equal(t, uint32(10), digits10(4294967295))
	assert.Equal(t, uint32(20), digits10(18446744073709551615))
}

func TestPow10(t *testing.T) {
	assert.Equal(t, uint64(1), pow10(0))
	assert.Equal(t, uint64(10), pow10(1))
	assert.Equal(t, uint64(10000), pow10(4))
	assert.Equal(t, uint64(10000000000000000000), pow10(19))
}

// Trailing decimal zeros carry no magnitude: the digit count of d sets
// its place value, so 9, 90 and 900 all construct the same fraction.
func TestDecimalTrailingZeros(t *testing.T) {
	a := Int16_16D(0, 9)
	b := Int16_16D(0, 90)
	c := Int16_16D(0, 900)
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
	assert.Equal(t, Int16_16(58987), a)
	assert.InDelta(t, 0.9, a.Float64(), 0.001)
}

func TestDecimalExactFractions(t *testing.T) {
	assert.Equal(t, Int8_8(128), Int8_8D(0, 5))   // 0.5
	assert.Equal(t, Int8_8(64), Int8_8D(0, 25))   // 0.25
	assert.Equal(t, Int8_8(320), Int8_8D(1, 25)) // 1.25
	// the scale ratio floors, so wider formats land one bit above 1/4
	assert.Equal(t, Int16_16(81921), Int16_16D(1, 25))
	assert.InDelta(t, 1.25, Int16_16D(1, 25).Float64(), 0.001)
	assert.Equal(t, Int32_32(2147483649), Int32_32D(0, 5))
	assert.InDelta(t, 0.5, Int32_32D(0, 5).Float64(), 1e-8)
}

// Digits beyond the format's canonical precision are integer-divided
// away, rounding toward zero. The loss is silent.
func TestDecimalTruncatesExcessDigits(t *testing.T) {
	assert.Equal(t, Int16_16D(0, 1234), Int16_16D(0, 123456))
	assert.Equal(t, Int16_16D(0, 9999), Int16_16D(0, 99995))
	assert.NotEqual(t, Int16_16D(0, 1234), Int16_16D(0, 1235))
}

// With 4 fractional bits maxFrac is 15, which leaves exactly one
// canonical decimal digit. The stored bits below follow the documented
// conversion: scale == (15<<3)/9 == 13, frac == (d*13)>>3.
func TestDecimalLowPrecisionBoundary(t *testing.T) {
	assert.Equal(t, Int4_4(1), Int4_4D(0, 1))
	assert.Equal(t, Int4_4(14), Int4_4D(0, 9))
	assert.Equal(t, Int4_4(14), Int4_4D(0, 99)) // truncated to one digit
	assert.Equal(t, Int4_4(14), Int4_4D(0, 95))
	assert.Equal(t, Int4_4(24), Int4_4D(1, 5)) // exactly 1.5
}

// Formats with fewer than four fractional bits can't hold a single
// decimal digit: maxBase10 underflows to zero and the scale division
// panics, like any other unchecked integer division in the package.
func TestDecimalSubDigitPrecisionPanics(t *testing.T) {
	assert.Panics(t, func() { decimalFrac[int8, uint8](5, 3, 4) })
	assert.NotPanics(t, func() { decimalFrac[int8, uint8](0, 3, 4) })
}

func TestDecimalZeroFractionBits(t *testing.T) {
	assert.Equal(t, int8(0), decimalFrac[int8, uint8](5, 0, 7))
}

// The fractional contribution is always added to the integer part, so
// a negative integer part moves toward zero: D(-1, 5) is -1.0 + 0.5,
// not -1.5. Kept as-is from the reference behavior; don't "fix" this
// without changing the constructor's contract.
func TestDecimalNegativeIntegerPart(t *testing.T) {
	x := Int16_16D(-1, 5)
	assert.Equal(t, Int16_16(-32766), x)
	assert.Equal(t, -1, x.Floor())
	assert.InDelta(t, -0.5, x.Float64(), 0.001)

	assert.Equal(t, Int16_16(-65536), Int16_16D(-1, 0))
}
