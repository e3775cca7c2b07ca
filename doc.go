// Floating point arithmetic is fast, but its results depend on the
// hardware, the compiler and the rounding mode in effect. Whenever a
// computation has to come out bit-identical on every machine that runs
// it (lockstep simulation, embedded control, values that cross a
// serialization boundary and come back), [fixed point] arithmetic is
// the classic answer: store a plain integer, agree on how many of its
// low bits are the fraction, and every operation becomes deterministic
// integer math.
//
// This package provides a family of signed fixed-point formats covering
// the 8, 16, 32 and 64 bit integer widths. Each format is a defined
// integer type, so addition, subtraction and all comparisons between
// values of the same format are Go's native operators working directly
// on the raw bits:
//
//	a := fixed.Int16_16D(1, 25) // 1.25
//	b := fixed.Int16_16U(2)     // 2.0
//	sum := a + b                // 3.25
//	if sum > b { ... }
//
// Multiplication and division need a wider intermediate to avoid
// overflowing the fractional bits, so those are methods:
//
//	p := a.Mul(b)            // 2.5
//	q := p.Div(b)            // 1.25
//	n := q.Floor()           // 1
//
// Operations that mix a format with a plain integer come in two
// flavors: AddInt/SubInt/CmpInt upscale the integer to the format's
// scale first, while MulInt/DivInt treat it as a raw scalar factor.
// For the remaining mixed-operand spellings, build a temporary with
// the U constructor: 5 - x is Int16_16U(5) - x.
//
// Overflow is not checked anywhere: results wrap exactly like Go's
// fixed-width signed integers wrap. Division by zero panics like any
// integer division by zero. Both are deliberate; a format that traps
// or saturates would no longer be a drop-in deterministic integer.
//
// The shipped formats are generated by mkfixed.go. If you need a
// different width/precision split, add a go:generate line next to the
// existing ones in fixed.go.
//
// [fixed point]: https://en.wikibooks.org/wiki/Floating_Point/Fixed-Point_Numbers
package fixed
