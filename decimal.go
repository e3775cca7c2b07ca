package fixed

import "golang.org/x/exp/constraints"

// digits10 returns the number of base 10 digits in x. The digit count
// of 0 is 0.
func digits10(x uint64) uint32 {
	var n uint32
	for ; x > 0; x /= 10 {
		n++
	}
	return n
}

// pow10 returns 10^n by repeated multiplication, so pow10(0) == 1.
// Results past 10^19 wrap.
func pow10(n uint32) uint64 {
	x := uint64(1)
	for ; n > 0; n-- {
		x *= 10
	}
	return x
}

// decimalFrac converts a sequence of base 10 fractional digits, given
// as the bare integer d, into a binary fraction with frac bits. The
// digit count of d is its place value: 9, 90 and 900 all denote ".9".
// A leading zero digit cannot be expressed this way; that's inherent
// to taking the digits as an integer instead of a string.
//
// T and U are the format's signed and unsigned storage types, and
// scaleShift is the fractional precision of the intermediate
// decimal-to-binary ratio, always width(T)-frac-1 so the upshifted
// ratio numerator stays within T.
//
// The fraction is quantized to one digit less than maxFrac's digit
// count, since the last decimal digit is not fully resolvable in frac
// bits: excess low-order digits of d are truncated away, shorter d
// values are padded with trailing zeros. Formats whose maxFrac is a
// single decimal digit can't deliver even one canonical digit; for
// those the ratio denominator is zero and this function panics, same
// as any other unchecked integer division. frac == 0 leaves nothing
// to resolve at all and contributes zero.
func decimalFrac[T constraints.Signed, U constraints.Unsigned](d U, frac, scaleShift uint) T {
	if d == 0 || frac == 0 {
		return 0
	}
	maxFrac := U(1)<<frac - 1
	maxDigits := digits10(uint64(maxFrac)) - 1
	maxBase10 := pow10(maxDigits) - 1
	scale := (T(maxFrac) << scaleShift) / T(maxBase10)

	digits := digits10(uint64(d))
	if digits > maxDigits {
		d = U(uint64(d) / pow10(digits-maxDigits))
	} else {
		d = U(uint64(d) * pow10(maxDigits-digits))
	}
	return (T(d) * scale) >> scaleShift
}
