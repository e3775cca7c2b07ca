package fixed

import "fmt"

// Int16_16U returns i as an Int16_16, upscaled by the fractional width.
func Int16_16U(i int) Int16_16 { return Int16_16(i << 16) }

// Int16_16F returns the Int16_16 closest to f, truncating excess precision.
func Int16_16F(f float64) Int16_16 { return Int16_16(f * (1 << 16)) }

// Int16_16D composes a value from an integer part and a base 10 digit
// sequence for the fraction: Int16_16D(1, 5) is 1.5 and Int16_16D(1, 25)
// is 1.25. Trailing zeros don't change the fraction, so d values 9, 90
// and 900 all mean ".9". The fraction always contributes additively,
// even with a negative integer part: Int16_16D(-1, 5) is -1.0 + 0.5.
func Int16_16D(i int, d uint32) Int16_16 {
	x := Int16_16(i << 16)
	if d > 0 {
		x += decimalFrac[Int16_16, uint32](d, 16, 15)
	}
	return x
}

// Floor returns the integer part of x, truncating toward negative
// infinity (arithmetic right shift).
func (x Int16_16) Floor() int { return int(x >> 16) }

// Ceil returns the smallest integer greater than or equal to x.
func (x Int16_16) Ceil() int { return int((int64(x) + 1<<16 - 1) >> 16) }

// Float64 returns the exact floating point value of x.
func (x Int16_16) Float64() float64 { return float64(x) / (1 << 16) }

// Mul returns x*y. The product runs through the int64 intermediate so
// the doubled fraction can't overflow mid-computation; the narrowing at
// the end still wraps if the result's integer part doesn't fit.
func (x Int16_16) Mul(y Int16_16) Int16_16 {
	return Int16_16((int64(x) * int64(y)) >> 16)
}

// Div returns x/y, upshifting x into the int64 intermediate first to
// keep the fractional precision across the division. The quotient
// truncates toward zero. Division by zero panics.
func (x Int16_16) Div(y Int16_16) Int16_16 {
	return Int16_16(int64(x) << 16 / int64(y))
}

// AddInt returns x+n, upscaling n to fixed point first.
func (x Int16_16) AddInt(n int32) Int16_16 { return x + Int16_16(n)<<16 }

// SubInt returns x-n, upscaling n to fixed point first.
func (x Int16_16) SubInt(n int32) Int16_16 { return x - Int16_16(n)<<16 }

// MulInt scales the raw value by n directly: n acts as a plain scalar
// factor, not as a fixed-point operand.
func (x Int16_16) MulInt(n int32) Int16_16 { return x * Int16_16(n) }

// DivInt divides the raw value by n directly, truncating toward zero.
func (x Int16_16) DivInt(n int32) Int16_16 { return x / Int16_16(n) }

// CmpInt orders x against the plain integer n, promoting n through the
// int64 intermediate so the upscale can't overflow. The result is
// -1 if x < n, 0 if x == n and +1 if x > n.
func (x Int16_16) CmpInt(n int32) int {
	w := int64(n) << 16
	switch {
	case int64(x) < w:
		return -1
	case int64(x) > w:
		return 1
	}
	return 0
}

func (x Int16_16) String() string {
	const shift, mask = 16, 1<<16 - 1
	return fmt.Sprintf("%d:%05d", int64(x>>shift), int64(x&mask))
}
