package fixed

import xfixed "golang.org/x/image/math/fixed"

// Int26_6 and Int52_12 share their bit layout with the homonymous types
// from [golang.org/x/image/math/fixed], so converting between the two
// representations is exact in both directions. This matters when fixed
// point values have to flow into font metrics, rasterizers and other
// code built on top of the x/image types.

// ToInt26_6 reinterprets x as an x/image fixed.Int26_6.
func ToInt26_6(x Int26_6) xfixed.Int26_6 { return xfixed.Int26_6(x) }

// FromInt26_6 reinterprets an x/image fixed.Int26_6 as an Int26_6.
func FromInt26_6(v xfixed.Int26_6) Int26_6 { return Int26_6(v) }

// ToInt52_12 reinterprets x as an x/image fixed.Int52_12.
func ToInt52_12(x Int52_12) xfixed.Int52_12 { return xfixed.Int52_12(x) }

// FromInt52_12 reinterprets an x/image fixed.Int52_12 as an Int52_12.
func FromInt52_12(v xfixed.Int52_12) Int52_12 { return Int52_12(v) }
