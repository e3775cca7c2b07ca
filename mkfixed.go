//go:build ignore

// mkfixed generates the method set for one fixed-point format. The
// format's name encodes the integer/fraction split ("Int16_16") and the
// base type selects the storage width:
//
//	go run mkfixed.go Int16_16 int32
//
// writes int16_16_fixed.go into the current package.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"strings"
	"text/template"
)

var fixedTemplate = `
// {{ .Name }}U returns i as an {{ .Name }}, upscaled by the fractional width.
func {{ .Name }}U(i {{ .IntArg }}) {{ .Name }} { return {{ .Name }}(i << {{ .Frac }}) }

// {{ .Name }}F returns the {{ .Name }} closest to f, truncating excess precision.
func {{ .Name }}F(f float64) {{ .Name }} { return {{ .Name }}(f * (1 << {{ .Frac }})) }

// {{ .Name }}D composes a value from an integer part and a base 10 digit
// sequence for the fraction: {{ .Name }}D(1, 5) is 1.5 and {{ .Name }}D(1, 25)
// is 1.25. Trailing zeros don't change the fraction, so d values 9, 90
// and 900 all mean ".9". The fraction always contributes additively,
// even with a negative integer part: {{ .Name }}D(-1, 5) is -1.0 + 0.5.
func {{ .Name }}D(i {{ .IntArg }}, d {{ .UType }}) {{ .Name }} {
	x := {{ .Name }}(i << {{ .Frac }})
	if d > 0 {
		x += decimalFrac[{{ .Name }}, {{ .UType }}](d, {{ .Frac }}, {{ .ScaleShift }})
	}
	return x
}

// Floor returns the integer part of x, truncating toward negative
// infinity (arithmetic right shift).
func (x {{ .Name }}) Floor() int { return int(x >> {{ .Frac }}) }

// Ceil returns the smallest integer greater than or equal to x.
func (x {{ .Name }}) Ceil() int { return int(({{ .MulType }}(x) + 1<<{{ .Frac }} - 1) >> {{ .Frac }}) }

// Float64 returns the exact floating point value of x.
func (x {{ .Name }}) Float64() float64 { return float64(x) / (1 << {{ .Frac }}) }

// Mul returns x*y. The product runs through the {{ .MulType }} intermediate so
// the doubled fraction can't overflow mid-computation; the narrowing at
// the end still wraps if the result's integer part doesn't fit.
func (x {{ .Name }}) Mul(y {{ .Name }}) {{ .Name }} {
	return {{ .Name }}(({{ .MulType }}(x) * {{ .MulType }}(y)) >> {{ .Frac }})
}

// Div returns x/y, upshifting x into the {{ .MulType }} intermediate first to
// keep the fractional precision across the division. The quotient
// truncates toward zero. Division by zero panics.
func (x {{ .Name }}) Div(y {{ .Name }}) {{ .Name }} {
	return {{ .Name }}({{ .MulType }}(x) << {{ .Frac }} / {{ .MulType }}(y))
}

// AddInt returns x+n, upscaling n to fixed point first.
func (x {{ .Name }}) AddInt(n {{ .BaseType }}) {{ .Name }} { return x + {{ .Name }}(n)<<{{ .Frac }} }

// SubInt returns x-n, upscaling n to fixed point first.
func (x {{ .Name }}) SubInt(n {{ .BaseType }}) {{ .Name }} { return x - {{ .Name }}(n)<<{{ .Frac }} }

// MulInt scales the raw value by n directly: n acts as a plain scalar
// factor, not as a fixed-point operand.
func (x {{ .Name }}) MulInt(n {{ .BaseType }}) {{ .Name }} { return x * {{ .Name }}(n) }

// DivInt divides the raw value by n directly, truncating toward zero.
func (x {{ .Name }}) DivInt(n {{ .BaseType }}) {{ .Name }} { return x / {{ .Name }}(n) }

// CmpInt orders x against the plain integer n, promoting n through the
// {{ .MulType }} intermediate so the upscale can't overflow. The result is
// -1 if x < n, 0 if x == n and +1 if x > n.
func (x {{ .Name }}) CmpInt(n {{ .BaseType }}) int {
	w := {{ .MulType }}(n) << {{ .Frac }}
	switch {
	case {{ .MulType }}(x) < w:
		return -1
	case {{ .MulType }}(x) > w:
		return 1
	}
	return 0
}

func (x {{ .Name }}) String() string {
	const shift, mask = {{ .Frac }}, 1<<{{ .Frac }} - 1
	return fmt.Sprintf("%d:%0{{ .Digits }}d", {{ .MulType }}(x>>shift), {{ .MulType }}(x&mask))
}
`

// widthInfo describes one rung of the storage width ladder: the signed
// and unsigned type names of that width plus the adjacent widths.
type widthInfo struct {
	signed, unsigned string
	narrower, wider  uint
}

// ladder holds the supported storage widths. It terminates explicitly
// at both ends: 8 has no narrower sibling and 64 no wider one, so
// widened intermediates of the 64 bit formats reuse int64 and their
// Mul/Div can overflow for large operands. Any width outside the table
// fails generation, before the package is ever built.
var ladder = map[uint]widthInfo{
	8:  {"int8", "uint8", 8, 16},
	16: {"int16", "uint16", 8, 32},
	32: {"int32", "uint32", 16, 64},
	64: {"int64", "uint64", 32, 64},
}

type fixedType struct {
	Name, BaseType, UType, MulType, IntArg string
	Frac, ScaleShift, Digits               uint
}

func fromDecl(name, basetype string) (f fixedType) {
	f.Name = name
	f.BaseType = basetype

	var width uint
	_, err := fmt.Sscanf(basetype, "int%d", &width)
	if err != nil && err != io.EOF {
		log.Fatalln(err)
	}
	info, ok := ladder[width]
	if !ok || info.signed != basetype {
		log.Fatalln("unsupported basetype:", basetype)
	}
	f.UType = info.unsigned
	f.MulType = ladder[info.wider].signed

	var intbits uint
	rest, found := strings.CutPrefix(name, "Int")
	if !found {
		log.Fatalln("invalid name:", f.Name)
	}
	_, err = fmt.Sscanf(rest, "%d_%d", &intbits, &f.Frac)
	if err != nil && err != io.EOF {
		log.Fatalln(err)
	}
	if f.Frac+intbits != width {
		log.Fatalln("must use all bits")
	}
	if intbits == 0 {
		log.Fatalln("the integer part must keep at least the sign bit")
	}
	// A plain int is only 32 bits on some architectures, which would
	// zero the upscale shift for the 64-bit formats.
	f.IntArg = "int"
	if width == 64 {
		f.IntArg = "int64"
	}
	f.ScaleShift = width - f.Frac - 1
	f.Digits = digits(f.Frac)
	return
}

func digits(bits uint) uint {
	return uint(len(fmt.Sprint(uint64(1)<<bits - 1)))
}

func usage() {
	fmt.Printf("Usage: %v <typename> <basetype>\n", os.Args[0])
}

func main() {
	log.Default().SetFlags(log.Lshortfile)
	if len(os.Args) != 3 {
		usage()
		os.Exit(1)
	}

	source := bytes.NewBuffer(nil)
	tmpl, err := template.New("fixedTemplate").Parse(fixedTemplate)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Fprintln(source, "package fixed")
	fmt.Fprintln(source, "import \"fmt\"")

	err = tmpl.Execute(source, fromDecl(os.Args[1], os.Args[2]))
	if err != nil {
		log.Fatalln(err)
	}

	formattedSource, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	err = os.WriteFile(strings.ToLower(os.Args[1])+"_fixed.go", formattedSource, 0644)
	if err != nil {
		log.Fatalln(err)
	}
}
