package fixed

// The type name encodes the split: IntI_F has I integer bits (sign
// included) and F fractional bits, I+F matching the base type's width.

//go:generate go run mkfixed.go Int4_4 int8
type Int4_4 int8

//go:generate go run mkfixed.go Int8_8 int16
type Int8_8 int16

//go:generate go run mkfixed.go Int26_6 int32
type Int26_6 int32

//go:generate go run mkfixed.go Int16_16 int32
type Int16_16 int32

//go:generate go run mkfixed.go Int52_12 int64
type Int52_12 int64

//go:generate go run mkfixed.go Int32_32 int64
type Int32_32 int64
