package fixed

import "fmt"

// Int32_32U returns i as an Int32_32, upscaled by the fractional width.
func Int32_32U(i int64) Int32_32 { return Int32_32(i << 32) }

// Int32_32F returns the Int32_32 closest to f, truncating excess precision.
func Int32_32F(f float64) Int32_32 { return Int32_32(f * (1 << 32)) }

// Int32_32D composes a value from an integer part and a base 10 digit
// sequence for the fraction: Int32_32D(1, 5) is 1.5 and Int32_32D(1, 25)
// is 1.25. Trailing zeros don't change the fraction, so d values 9, 90
// and 900 all mean ".9". The fraction always contributes additively,
// even with a negative integer part: Int32_32D(-1, 5) is -1.0 + 0.5.
func Int32_32D(i int64, d uint64) Int32_32 {
	x := Int32_32(i << 32)
	if d > 0 {
		x += decimalFrac[Int32_32, uint64](d, 32, 31)
	}
	return x
}

// Floor returns the integer part of x, truncating toward negative
// infinity (arithmetic right shift).
func (x Int32_32) Floor() int { return int(x >> 32) }

// Ceil returns the smallest integer greater than or equal to x.
func (x Int32_32) Ceil() int { return int((int64(x) + 1<<32 - 1) >> 32) }

// Float64 returns the exact floating point value of x.
func (x Int32_32) Float64() float64 { return float64(x) / (1 << 32) }

// Mul returns x*y. The product runs through the int64 intermediate so
// the doubled fraction can't overflow mid-computation; the narrowing at
// the end still wraps if the result's integer part doesn't fit.
func (x Int32_32) Mul(y Int32_32) Int32_32 {
	return Int32_32((int64(x) * int64(y)) >> 32)
}

// Div returns x/y, upshifting x into the int64 intermediate first to
// keep the fractional precision across the division. The quotient
// truncates toward zero. Division by zero panics.
func (x Int32_32) Div(y Int32_32) Int32_32 {
	return Int32_32(int64(x) << 32 / int64(y))
}

// AddInt returns x+n, upscaling n to fixed point first.
func (x Int32_32) AddInt(n int64) Int32_32 { return x + Int32_32(n)<<32 }

// SubInt returns x-n, upscaling n to fixed point first.
func (x Int32_32) SubInt(n int64) Int32_32 { return x - Int32_32(n)<<32 }

// MulInt scales the raw value by n directly: n acts as a plain scalar
// factor, not as a fixed-point operand.
func (x Int32_32) MulInt(n int64) Int32_32 { return x * Int32_32(n) }

// DivInt divides the raw value by n directly, truncating toward zero.
func (x Int32_32) DivInt(n int64) Int32_32 { return x / Int32_32(n) }

// CmpInt orders x against the plain integer n, promoting n through the
// int64 intermediate so the upscale can't overflow. The result is
// -1 if x < n, 0 if x == n and +1 if x > n.
func (x Int32_32) CmpInt(n int64) int {
	w := int64(n) << 32
	switch {
	case int64(x) < w:
		return -1
	case int64(x) > w:
		return 1
	}
	return 0
}

func (x Int32_32) String() string {
	const shift, mask = 32, 1<<32 - 1
	return fmt.Sprintf("%d:%010d", int64(x>>shift), int64(x&mask))
}
