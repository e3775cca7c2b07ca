package fixed

import "fmt"

// Int26_6U returns i as an Int26_6, upscaled by the fractional width.
func Int26_6U(i int) Int26_6 { return Int26_6(i << 6) }

// Int26_6F returns the Int26_6 closest to f, truncating excess precision.
func Int26_6F(f float64) Int26_6 { return Int26_6(f * (1 << 6)) }

// Int26_6D composes a value from an integer part and a base 10 digit
// sequence for the fraction: Int26_6D(1, 5) is 1.5 and Int26_6D(1, 25)
// is 1.25. Trailing zeros don't change the fraction, so d values 9, 90
// and 900 all mean ".9". The fraction always contributes additively,
// even with a negative integer part: Int26_6D(-1, 5) is -1.0 + 0.5.
func Int26_6D(i int, d uint32) Int26_6 {
	x := Int26_6(i << 6)
	if d > 0 {
		x += decimalFrac[Int26_6, uint32](d, 6, 25)
	}
	return x
}

// Floor returns the integer part of x, truncating toward negative
// infinity (arithmetic right shift).
func (x Int26_6) Floor() int { return int(x >> 6) }

// Ceil returns the smallest integer greater than or equal to x.
func (x Int26_6) Ceil() int { return int((int64(x) + 1<<6 - 1) >> 6) }

// Float64 returns the exact floating point value of x.
func (x Int26_6) Float64() float64 { return float64(x) / (1 << 6) }

// Mul returns x*y. The product runs through the int64 intermediate so
// the doubled fraction can't overflow mid-computation; the narrowing at
// the end still wraps if the result's integer part doesn't fit.
func (x Int26_6) Mul(y Int26_6) Int26_6 {
	return Int26_6((int64(x) * int64(y)) >> 6)
}

// Div returns x/y, upshifting x into the int64 intermediate first to
// keep the fractional precision across the division. The quotient
// truncates toward zero. Division by zero panics.
func (x Int26_6) Div(y Int26_6) Int26_6 {
	return Int26_6(int64(x) << 6 / int64(y))
}

// AddInt returns x+n, upscaling n to fixed point first.
func (x Int26_6) AddInt(n int32) Int26_6 { return x + Int26_6(n)<<6 }

// SubInt returns x-n, upscaling n to fixed point first.
func (x Int26_6) SubInt(n int32) Int26_6 { return x - Int26_6(n)<<6 }

// MulInt scales the raw value by n directly: n acts as a plain scalar
// factor, not as a fixed-point operand.
func (x Int26_6) MulInt(n int32) Int26_6 { return x * Int26_6(n) }

// DivInt divides the raw value by n directly, truncating toward zero.
func (x Int26_6) DivInt(n int32) Int26_6 { return x / Int26_6(n) }

// CmpInt orders x against the plain integer n, promoting n through the
// int64 intermediate so the upscale can't overflow. The result is
// -1 if x < n, 0 if x == n and +1 if x > n.
func (x Int26_6) CmpInt(n int32) int {
	w := int64(n) << 6
	switch {
	case int64(x) < w:
		return -1
	case int64(x) > w:
		return 1
	}
	return 0
}

func (x Int26_6) String() string {
	const shift, mask = 6, 1<<6 - 1
	return fmt.Sprintf("%d:%02d", int64(x>>shift), int64(x&mask))
}
