package fixed

import "fmt"

// Int8_8U returns i as an Int8_8, upscaled by the fractional width.
func Int8_8U(i int) Int8_8 { return Int8_8(i << 8) }

// Int8_8F returns the Int8_8 closest to f, truncating excess precision.
func Int8_8F(f float64) Int8_8 { return Int8_8(f * (1 << 8)) }

// Int8_8D composes a value from an integer part and a base 10 digit
// sequence for the fraction: Int8_8D(1, 5) is 1.5 and Int8_8D(1, 25)
// is 1.25. Trailing zeros don't change the fraction, so d values 9, 90
// and 900 all mean ".9". The fraction always contributes additively,
// even with a negative integer part: Int8_8D(-1, 5) is -1.0 + 0.5.
func Int8_8D(i int, d uint16) Int8_8 {
	x := Int8_8(i << 8)
	if d > 0 {
		x += decimalFrac[Int8_8, uint16](d, 8, 7)
	}
	return x
}

// Floor returns the integer part of x, truncating toward negative
// infinity (arithmetic right shift).
func (x Int8_8) Floor() int { return int(x >> 8) }

// Ceil returns the smallest integer greater than or equal to x.
func (x Int8_8) Ceil() int { return int((int32(x) + 1<<8 - 1) >> 8) }

// Float64 returns the exact floating point value of x.
func (x Int8_8) Float64() float64 { return float64(x) / (1 << 8) }

// Mul returns x*y. The product runs through the int32 intermediate so
// the doubled fraction can't overflow mid-computation; the narrowing at
// the end still wraps if the result's integer part doesn't fit.
func (x Int8_8) Mul(y Int8_8) Int8_8 {
	return Int8_8((int32(x) * int32(y)) >> 8)
}

// Div returns x/y, upshifting x into the int32 intermediate first to
// keep the fractional precision across the division. The quotient
// truncates toward zero. Division by zero panics.
func (x Int8_8) Div(y Int8_8) Int8_8 {
	return Int8_8(int32(x) << 8 / int32(y))
}

// AddInt returns x+n, upscaling n to fixed point first.
func (x Int8_8) AddInt(n int16) Int8_8 { return x + Int8_8(n)<<8 }

// SubInt returns x-n, upscaling n to fixed point first.
func (x Int8_8) SubInt(n int16) Int8_8 { return x - Int8_8(n)<<8 }

// MulInt scales the raw value by n directly: n acts as a plain scalar
// factor, not as a fixed-point operand.
func (x Int8_8) MulInt(n int16) Int8_8 { return x * Int8_8(n) }

// DivInt divides the raw value by n directly, truncating toward zero.
func (x Int8_8) DivInt(n int16) Int8_8 { return x / Int8_8(n) }

// CmpInt orders x against the plain integer n, promoting n through the
// int32 intermediate so the upscale can't overflow. The result is
// -1 if x < n, 0 if x == n and +1 if x > n.
func (x Int8_8) CmpInt(n int16) int {
	w := int32(n) << 8
	switch {
	case int32(x) < w:
		return -1
	case int32(x) > w:
		return 1
	}
	return 0
}

func (x Int8_8) String() string {
	const shift, mask = 8, 1<<8 - 1
	return fmt.Sprintf("%d:%03d", int32(x>>shift), int32(x&mask))
}
