package parsec

import (
	"reflect"
	"strconv"

	"github.com/npillmayer/pcomb/stream"
	"golang.org/x/exp/constraints"
)

// Integer parses an integer literal with an optional sign and returns its text.
func Integer() *Parser[string] {
	return Concat(sign(), digits()).Label("integer")
}

// Float parses a decimal floating point literal and returns its text. It accepts
// an optional sign, an integer part, an optional fraction and an optional
// exponent, e.g. "-12.5e+3". Integers are valid floats.
func Float() *Parser[string] {
	fraction := Optional(Concat(AsString(Char('.')), digits()))
	exponent := Optional(Concat(AsString(OneOf("eE")), sign(), digits()))
	return Concat(sign(), digits(), fraction, exponent).Label("float")
}

// Signed parses an integer literal and converts it to T. Literals out of range
// for T are reported as failures.
func Signed[T constraints.Signed]() *Parser[T] {
	bits := bitSize[T]()
	return convert(Integer(), func(text string) (T, error) {
		n, err := strconv.ParseInt(text, 10, bits)
		return T(n), err
	})
}

// Unsigned parses an unsigned integer literal and converts it to T. Literals out
// of range for T are reported as failures.
func Unsigned[T constraints.Unsigned]() *Parser[T] {
	bits := bitSize[T]()
	return convert(digits().Label("unsigned integer"), func(text string) (T, error) {
		n, err := strconv.ParseUint(text, 10, bits)
		return T(n), err
	})
}

// FloatValue parses a floating point literal and converts it to T. The literal
// is converted as a whole, thus the value is the nearest T to the decimal
// number in the input.
func FloatValue[T constraints.Float]() *Parser[T] {
	bits := bitSize[T]()
	return convert(Float(), func(text string) (T, error) {
		f, err := strconv.ParseFloat(text, bits)
		return T(f), err
	})
}

// ---------------------------------------------------------------------------

func sign() *Parser[string] {
	return Optional(AsString(OneOf("+-")))
}

func digits() *Parser[string] {
	return TakeWhile1(IsDigit).Label("digits")
}

func bitSize[T any]() int {
	var zero T
	return reflect.TypeOf(zero).Bits()
}

// convert runs p and converts its text output with conv. A conversion error
// turns into a failure at the start of the literal.
func convert[T any](p *Parser[string], conv func(string) (T, error)) *Parser[T] {
	return NewParser(p.label, func(s stream.Stream) Result[T] {
		r := p.Run(s)
		if !r.ok {
			return failed[T](r)
		}
		v, err := conv(r.output)
		if err != nil {
			tracer().Debugf("cannot convert %q: %v", r.output, err)
			return Fail[T](p.label+" in range", s)
		}
		return Succeed(v, r.remainder)
	})
}
