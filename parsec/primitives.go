package parsec

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/pcomb/stream"
)

// Satisfy returns a parser consuming a single rune for which pred holds.
func Satisfy(pred func(rune) bool) *Parser[rune] {
	return satisfy(pred, "satisfy(predicate)")
}

func satisfy(pred func(rune) bool, label string) *Parser[rune] {
	return NewParser(label, func(s stream.Stream) Result[rune] {
		r, rest, err := s.TakeOne()
		if err != nil || !pred(r) {
			return Fail[rune](label, s)
		}
		return Succeed(r, rest)
	})
}

// Char returns a parser for rune c.
func Char(c rune) *Parser[rune] {
	return satisfy(IsEqual(c), quote(c))
}

// CharI returns a parser for rune c in either upper or lower case. The output is the
// rune as found in the input.
func CharI(c rune) *Parser[rune] {
	lower, upper := unicode.ToLower(c), unicode.ToUpper(c)
	label := quote(c)
	if lower != upper {
		label = quote(lower) + " or " + quote(upper)
	}
	return satisfy(func(r rune) bool {
		return r == lower || r == upper
	}, label)
}

// String returns a parser for the exact string str, which must not be empty.
func String(str string) *Parser[string] {
	if str == "" {
		panic("parser String requires a non-empty string")
	}
	n := utf8.RuneCountInString(str)
	label := "'" + str + "'"
	return NewParser(label, func(s stream.Stream) Result[string] {
		chunk, rest, err := s.TakeN(n)
		if err != nil || chunk != str {
			return Fail[string](label, s)
		}
		return Succeed(chunk, rest)
	})
}

// StringI returns a parser for string str, ignoring case. The output is the string
// as found in the input.
func StringI(str string) *Parser[string] {
	if str == "" {
		panic("parser StringI requires a non-empty string")
	}
	chars := make([]*Parser[string], 0, len(str))
	for _, c := range str {
		chars = append(chars, AsString(CharI(c)))
	}
	return Concat(chars...).Label("'" + str + "' (ignoring case)")
}

// TakeWhile returns a parser consuming the longest run of runes satisfying pred.
// It never fails, but may produce an empty string.
func TakeWhile(pred func(rune) bool) *Parser[string] {
	return NewParser("takeWhile(predicate)", func(s stream.Stream) Result[string] {
		chunk, rest := s.TakeWhile(pred)
		return Succeed(chunk, rest)
	})
}

// TakeWhile1 is like TakeWhile, but fails if not at least one rune satisfies pred.
func TakeWhile1(pred func(rune) bool) *Parser[string] {
	const label = "takeWhile1(predicate)"
	return NewParser(label, func(s stream.Stream) Result[string] {
		chunk, rest := s.TakeWhile(pred)
		if chunk == "" {
			return Fail[string](label, s)
		}
		return Succeed(chunk, rest)
	})
}

// SkipWhile is like TakeWhile, but discards the consumed text.
func SkipWhile(pred func(rune) bool) *Parser[Unit] {
	return As(TakeWhile(pred), Unit{}).Label("skipWhile(predicate)")
}

// SkipWhile1 is like TakeWhile1, but discards the consumed text.
func SkipWhile1(pred func(rune) bool) *Parser[Unit] {
	return As(TakeWhile1(pred), Unit{}).Label("skipWhile1(predicate)")
}

// AnySingle consumes any single rune. It fails at end of input only.
func AnySingle() *Parser[rune] {
	return satisfy(func(rune) bool { return true }, "any character")
}

// AnySingleBut consumes any single rune except c.
func AnySingleBut(c rune) *Parser[rune] {
	return satisfy(NotPred(IsEqual(c)), "anything but "+quote(c))
}

// OneOf consumes a single rune contained in chars.
func OneOf(chars string) *Parser[rune] {
	set := runeSet(chars)
	return satisfy(func(r rune) bool {
		return set.Contains(r)
	}, "one of "+quoteAll(chars))
}

// NoneOf consumes a single rune not contained in chars.
func NoneOf(chars string) *Parser[rune] {
	set := runeSet(chars)
	return satisfy(func(r rune) bool {
		return !set.Contains(r)
	}, "none of "+quoteAll(chars))
}

// OneOfS returns a parser for the first of strs found in the input. As
// strings are tried in order, longer strings sharing a prefix with shorter ones
// should go first.
func OneOfS(strs ...string) *Parser[string] {
	parsers := make([]*Parser[string], len(strs))
	for i, str := range strs {
		parsers[i] = String(str)
	}
	return Choice(parsers...)
}

// TakeRest consumes all of the remaining input. It never fails.
func TakeRest() *Parser[string] {
	return NewParser("rest of input", func(s stream.Stream) Result[string] {
		chunk, rest := s.TakeWhile(func(rune) bool { return true })
		return Succeed(chunk, rest)
	})
}

// Everything consumes the entire remaining input unconditionally.
func Everything() *Parser[string] {
	return TakeRest().Label("everything")
}

// EOF succeeds at the end of input only.
func EOF() *Parser[Unit] {
	return NewParser("<EOF>", func(s stream.Stream) Result[Unit] {
		if !s.IsEOF() {
			return Fail[Unit]("<EOF>", s)
		}
		return Succeed(Unit{}, s)
	})
}

// Nothing always succeeds and consumes nothing.
func Nothing() *Parser[Unit] {
	return NewParser("nothing", func(s stream.Stream) Result[Unit] {
		return Succeed(Unit{}, s)
	})
}

// ---------------------------------------------------------------------------

func runeSet(chars string) *hashset.Set {
	set := hashset.New()
	for _, r := range chars {
		set.Add(r)
	}
	return set
}

func quote(c rune) string {
	if name, ok := controlNames[c]; ok {
		return name
	}
	return "'" + string(c) + "'"
}

func quoteAll(chars string) string {
	var b strings.Builder
	for i, r := range []rune(chars) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(r))
	}
	return b.String()
}
