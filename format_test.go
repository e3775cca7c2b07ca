package fixed

import "testing"

// String renders floor(x) and the positive raw fraction, so -1.5 in 8.8
// prints as "-2:128" (-2 + 128/256).
func TestString(t *testing.T) {
	tests := []struct {
		in  Int8_8
		out string
	}{
		{0, "0:000"},
		{Int8_8U(1), "1:000"},
		{384, "1:128"},
		{-384, "-2:128"},
		{Int8_8D(1, 25), "1:064"},
	}

	for i, test := range tests {
		out := test.in.String()
		if out != test.out {
			t.Fatalf("test #%d: bits %d expected %q, but got %q", i, test.in, test.out, out)
		}
	}

	if got := Int4_4(14).String(); got != "0:14" {
		t.Fatalf("Int4_4 bits 14 expected \"0:14\", but got %q", got)
	}
	if got := Int16_16D(5, 5).String(); got != "5:32770" {
		t.Fatalf("Int16_16 5.5 expected \"5:32770\", but got %q", got)
	}
}

func TestFloat64(t *testing.T) {
	tests := []struct {
		in  Int8_8
		out float64
	}{
		{0, 0}, {256, 1}, {128, 0.5}, {-128, -0.5},
		{1, 1.0 / 256.0}, {384, 1.5}, {-384, -1.5},
	}

	for i, test := range tests {
		out := test.in.Float64()
		if out != test.out {
			str := "test #%d: bits %d expected %f, but got %f"
			t.Fatalf(str, i, test.in, test.out, out)
		}
	}
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		in  float64
		out Int8_8
	}{
		{0, 0}, {1, 256}, {1.5, 384}, {-0.25, -64},
		{0.3, 76},  // 76.8 truncates toward zero
		{-0.3, -76},
	}

	for i, test := range tests {
		out := Int8_8F(test.in)
		if out != test.out {
			str := "test #%d: from %f expected bits %d, but got bits %d"
			t.Fatalf(str, i, test.in, test.out, out)
		}
	}
}
