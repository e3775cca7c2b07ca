package fixed

import "fmt"

// Int52_12U returns i as an Int52_12, upscaled by the fractional width.
func Int52_12U(i int64) Int52_12 { return Int52_12(i << 12) }

// Int52_12F returns the Int52_12 closest to f, truncating excess precision.
func Int52_12F(f float64) Int52_12 { return Int52_12(f * (1 << 12)) }

// Int52_12D composes a value from an integer part and a base 10 digit
// sequence for the fraction: Int52_12D(1, 5) is 1.5 and Int52_12D(1, 25)
// is 1.25. Trailing zeros don't change the fraction, so d values 9, 90
// and 900 all mean ".9". The fraction always contributes additively,
// even with a negative integer part: Int52_12D(-1, 5) is -1.0 + 0.5.
func Int52_12D(i int64, d uint64) Int52_12 {
	x := Int52_12(i << 12)
	if d > 0 {
		x += decimalFrac[Int52_12, uint64](d, 12, 51)
	}
	return x
}

// Floor returns the integer part of x, truncating toward negative
// infinity (arithmetic right shift).
func (x Int52_12) Floor() int { return int(x >> 12) }

// Ceil returns the smallest integer greater than or equal to x.
func (x Int52_12) Ceil() int { return int((int64(x) + 1<<12 - 1) >> 12) }

// Float64 returns the exact floating point value of x.
func (x Int52_12) Float64() float64 { return float64(x) / (1 << 12) }

// Mul returns x*y. The product runs through the int64 intermediate so
// the doubled fraction can't overflow mid-computation; the narrowing at
// the end still wraps if the result's integer part doesn't fit.
func (x Int52_12) Mul(y Int52_12) Int52_12 {
	return Int52_12((int64(x) * int64(y)) >> 12)
}

// Div returns x/y, upshifting x into the int64 intermediate first to
// keep the fractional precision across the division. The quotient
// truncates toward zero. Division by zero panics.
func (x Int52_12) Div(y Int52_12) Int52_12 {
	return Int52_12(int64(x) << 12 / int64(y))
}

// AddInt returns x+n, upscaling n to fixed point first.
func (x Int52_12) AddInt(n int64) Int52_12 { return x + Int52_12(n)<<12 }

// SubInt returns x-n, upscaling n to fixed point first.
func (x Int52_12) SubInt(n int64) Int52_12 { return x - Int52_12(n)<<12 }

// MulInt scales the raw value by n directly: n acts as a plain scalar
// factor, not as a fixed-point operand.
func (x Int52_12) MulInt(n int64) Int52_12 { return x * Int52_12(n) }

// DivInt divides the raw value by n directly, truncating toward zero.
func (x Int52_12) DivInt(n int64) Int52_12 { return x / Int52_12(n) }

// CmpInt orders x against the plain integer n, promoting n through the
// int64 intermediate so the upscale can't overflow. The result is
// -1 if x < n, 0 if x == n and +1 if x > n.
func (x Int52_12) CmpInt(n int64) int {
	w := int64(n) << 12
	switch {
	case int64(x) < w:
		return -1
	case int64(x) > w:
		return 1
	}
	return 0
}

func (x Int52_12) String() string {
	const shift, mask = 12, 1<<12 - 1
	return fmt.Sprintf("%d:%04d", int64(x>>shift), int64(x&mask))
}
