package json

import (
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/npillmayer/pcomb/parsec"
	"github.com/npillmayer/pcomb/stream"
)

// Parse parses a JSON text.
func Parse(text string) (any, error) {
	return Grammar().TryParse(text)
}

// ParseStream parses a JSON text from an input stream, e.g. a file.
func ParseStream(s stream.Stream) (any, error) {
	return Grammar().TryParseStream(s)
}

var grammar struct {
	once   sync.Once
	parser *parsec.Parser[any]
}

// Grammar returns the parser for JSON texts: a single value, optionally
// surrounded by whitespace.
func Grammar() *parsec.Parser[any] {
	grammar.once.Do(func() {
		tracer().Debugf("building JSON grammar")
		grammar.parser = parsec.Sequence(ws(), element()).ThenEOF()
	})
	return grammar.parser
}

// element creates the parser for a value followed by whitespace. Objects and
// arrays contain elements, thus element is recursive.
func element() *parsec.Parser[any] {
	elem := parsec.Recursive[any]()
	value := parsec.Choice(
		object(elem),
		array(elem),
		parsec.Erase(stringLiteral()),
		parsec.Erase(number()),
		parsec.As[string, any](parsec.String("true"), true),
		parsec.As[string, any](parsec.String("false"), false),
		parsec.As[string, any](parsec.String("null"), nil),
	).Label("JSON value")
	return elem.Recurse(token(value))
}

func ws() *parsec.Parser[parsec.Unit] {
	return parsec.SkipWhile(func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func token[T any](p *parsec.Parser[T]) *parsec.Parser[T] {
	return parsec.KeepFirst(p, ws())
}

type member struct {
	key   string
	value any
}

func object(elem *parsec.Parser[any]) *parsec.Parser[any] {
	key := parsec.KeepFirst(token(stringLiteral()), token(parsec.Char(':')))
	m := parsec.Apply(parsec.Map(key, func(k string) func(any) member {
		return func(v any) member { return member{key: k, value: v} }
	}), elem)
	members := parsec.SepBy(token(parsec.Char(',')), m)
	obj := parsec.Between(token(parsec.Char('{')), parsec.Char('}'), members)
	return parsec.Map(obj, func(ms []member) any {
		o := newObject()
		for _, m := range ms {
			o.put(m.key, m.value)
		}
		return o
	})
}

func array(elem *parsec.Parser[any]) *parsec.Parser[any] {
	elems := parsec.SepBy(token(parsec.Char(',')), elem)
	return parsec.Map(parsec.Between(token(parsec.Char('[')), parsec.Char(']'), elems),
		func(a []any) any { return a })
}

// --- Strings ---------------------------------------------------------------

func stringLiteral() *parsec.Parser[string] {
	plain := parsec.Map(parsec.TakeWhile1(func(r rune) bool {
		return r != '"' && r != '\\' && r >= 0x20
	}), validUTF8)
	escape := parsec.Sequence(parsec.Char('\\'), parsec.Choice(
		parsec.As(parsec.Char('"'), `"`),
		parsec.As(parsec.Char('\\'), `\`),
		parsec.As(parsec.Char('/'), "/"),
		parsec.As(parsec.Char('b'), "\b"),
		parsec.As(parsec.Char('f'), "\f"),
		parsec.As(parsec.Char('n'), "\n"),
		parsec.As(parsec.Char('r'), "\r"),
		parsec.As(parsec.Char('t'), "\t"),
		unicodeEscape(),
	)).Label("escape sequence")
	chunks := parsec.Many(plain.Or(escape))
	str := parsec.Between(parsec.Char('"'), parsec.Char('"'), chunks)
	return parsec.Map(str, func(cs []string) string {
		return strings.Join(cs, "")
	}).Label("string")
}

// validUTF8 replaces every invalid byte of a chunk by U+FFFD.
func validUTF8(chunk string) string {
	if utf8.ValidString(chunk) {
		return chunk
	}
	var b strings.Builder
	for _, r := range chunk {
		b.WriteRune(r)
	}
	return b.String()
}

// unicodeEscape parses the 'uXXXX' part of a unicode escape. A high surrogate
// followed by an escaped low surrogate is combined into a single rune. Unpaired
// surrogates turn into the replacement character.
func unicodeEscape() *parsec.Parser[string] {
	hex4 := parsec.Map(parsec.Repeat(4, parsec.HexDigit()), func(ds []rune) rune {
		n, _ := strconv.ParseUint(string(ds), 16, 32)
		return rune(n)
	})
	lowSurrogate := parsec.Sequence(parsec.String(`\u`), hex4)
	return parsec.Bind(parsec.Sequence(parsec.Char('u'), hex4), func(r rune) *parsec.Parser[string] {
		if !utf16.IsSurrogate(r) {
			return parsec.Pure(string(r))
		}
		return parsec.NewParser("low surrogate", func(s stream.Stream) parsec.Result[string] {
			if low := lowSurrogate.Run(s); low.IsSuccess() {
				if pair := utf16.DecodeRune(r, low.Output()); pair != unicode.ReplacementChar {
					return parsec.Succeed(string(pair), low.Remainder())
				}
			}
			return parsec.Succeed(string(unicode.ReplacementChar), s)
		})
	})
}

// --- Numbers ---------------------------------------------------------------

// number parses a JSON number: '-'? ('0' | [1-9][0-9]*) fraction? exponent?
func number() *parsec.Parser[float64] {
	digits := parsec.TakeWhile1(parsec.IsDigit)
	integer := parsec.AsString(parsec.Char('0')).Or(
		parsec.Concat(parsec.AsString(parsec.OneOf("123456789")), parsec.TakeWhile(parsec.IsDigit)))
	fraction := parsec.Optional(parsec.Concat(parsec.AsString(parsec.Char('.')), digits))
	exponent := parsec.Optional(parsec.Concat(
		parsec.AsString(parsec.OneOf("eE")),
		parsec.Optional(parsec.AsString(parsec.OneOf("+-"))),
		digits))
	literal := parsec.Concat(parsec.Optional(parsec.AsString(parsec.Char('-'))), integer, fraction, exponent)
	return parsec.NewParser("number", func(s stream.Stream) parsec.Result[float64] {
		r := literal.Run(s)
		if r.IsFail() {
			return parsec.Fail[float64]("number", r.Got())
		}
		f, err := strconv.ParseFloat(r.Output(), 64)
		if err != nil {
			tracer().Infof("number literal %s: %v", r.Output(), err)
			return parsec.Fail[float64]("number in range", s)
		}
		return parsec.Succeed(f, r.Remainder())
	})
}
