package fixed

import "fmt"

// Int4_4U returns i as an Int4_4, upscaled by the fractional width.
func Int4_4U(i int) Int4_4 { return Int4_4(i << 4) }

// Int4_4F returns the Int4_4 closest to f, truncating excess precision.
func Int4_4F(f float64) Int4_4 { return Int4_4(f * (1 << 4)) }

// Int4_4D composes a value from an integer part and a base 10 digit
// sequence for the fraction: Int4_4D(1, 5) is 1.5 and Int4_4D(1, 25)
// is 1.25. Trailing zeros don't change the fraction, so d values 9, 90
// and 900 all mean ".9". The fraction always contributes additively,
// even with a negative integer part: Int4_4D(-1, 5) is -1.0 + 0.5.
func Int4_4D(i int, d uint8) Int4_4 {
	x := Int4_4(i << 4)
	if d > 0 {
		x += decimalFrac[Int4_4, uint8](d, 4, 3)
	}
	return x
}

// Floor returns the integer part of x, truncating toward negative
// infinity (arithmetic right shift).
func (x Int4_4) Floor() int { return int(x >> 4) }

// Ceil returns the smallest integer greater than or equal to x.
func (x Int4_4) Ceil() int { return int((int16(x) + 1<<4 - 1) >> 4) }

// Float64 returns the exact floating point value of x.
func (x Int4_4) Float64() float64 { return float64(x) / (1 << 4) }

// Mul returns x*y. The product runs through the int16 intermediate so
// the doubled fraction can't overflow mid-computation; the narrowing at
// the end still wraps if the result's integer part doesn't fit.
func (x Int4_4) Mul(y Int4_4) Int4_4 {
	return Int4_4((int16(x) * int16(y)) >> 4)
}

// Div returns x/y, upshifting x into the int16 intermediate first to
// keep the fractional precision across the division. The quotient
// truncates toward zero. Division by zero panics.
func (x Int4_4) Div(y Int4_4) Int4_4 {
	return Int4_4(int16(x) << 4 / int16(y))
}

// AddInt returns x+n, upscaling n to fixed point first.
func (x Int4_4) AddInt(n int8) Int4_4 { return x + Int4_4(n)<<4 }

// SubInt returns x-n, upscaling n to fixed point first.
func (x Int4_4) SubInt(n int8) Int4_4 { return x - Int4_4(n)<<4 }

// MulInt scales the raw value by n directly: n acts as a plain scalar
// factor, not as a fixed-point operand.
func (x Int4_4) MulInt(n int8) Int4_4 { return x * Int4_4(n) }

// DivInt divides the raw value by n directly, truncating toward zero.
func (x Int4_4) DivInt(n int8) Int4_4 { return x / Int4_4(n) }

// CmpInt orders x against the plain integer n, promoting n through the
// int16 intermediate so the upscale can't overflow. The result is
// -1 if x < n, 0 if x == n and +1 if x > n.
func (x Int4_4) CmpInt(n int8) int {
	w := int16(n) << 4
	switch {
	case int16(x) < w:
		return -1
	case int16(x) > w:
		return 1
	}
	return 0
}

func (x Int4_4) String() string {
	const shift, mask = 4, 1<<4 - 1
	return fmt.Sprintf("%d:%02d", int16(x>>shift), int16(x&mask))
}
