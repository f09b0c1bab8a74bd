package parsec

import (
	"github.com/npillmayer/pcomb/stream"
)

// Unit is the output of parsers which produce no meaningful value.
type Unit struct{}

// Pure returns a parser which always succeeds with v, consuming nothing.
func Pure[T any](v T) *Parser[T] {
	return NewParser("pure", func(s stream.Stream) Result[T] {
		return Succeed(v, s)
	})
}

// Failing returns a parser which always fails, expecting label.
func Failing[T any](label string) *Parser[T] {
	return NewParser(label, func(s stream.Stream) Result[T] {
		return Fail[T](label, s)
	})
}

// Map returns a parser which transforms the output of p with f.
func Map[T, U any](p *Parser[T], f func(T) U) *Parser[U] {
	return NewParser(p.label, func(s stream.Stream) Result[U] {
		return MapResult(p.Run(s), f)
	})
}

// As returns a parser which replaces the output of p by v.
func As[T, U any](p *Parser[T], v U) *Parser[U] {
	return Map(p, func(T) U { return v })
}

// Bind runs p and feeds its output into f, which selects the parser to run on the
// remainder. This is the monadic composition of parsers.
func Bind[T, U any](p *Parser[T], f func(T) *Parser[U]) *Parser[U] {
	return NewParser(p.label, func(s stream.Stream) Result[U] {
		r := p.Run(s)
		if !r.ok {
			return failed[U](r)
		}
		return f(r.output).Run(r.remainder)
	})
}

// Apply runs pf, which produces a function, then pv, and applies the function to
// the output of pv.
func Apply[T, U any](pf *Parser[func(T) U], pv *Parser[T]) *Parser[U] {
	return NewParser(pf.label, func(s stream.Stream) Result[U] {
		rf := pf.Run(s)
		if !rf.ok {
			return failed[U](rf)
		}
		rv := pv.Run(rf.remainder)
		if !rv.ok {
			return failed[U](rv)
		}
		return Succeed(rf.output(rv.output), rv.remainder)
	})
}

// Sequence runs first, then second on the remainder. The output of first is
// discarded, the output of second is returned.
func Sequence[T, U any](first *Parser[T], second *Parser[U]) *Parser[U] {
	return NewParser(first.label, func(s stream.Stream) Result[U] {
		return ContinueWith(first.Run(s), second)
	})
}

// KeepFirst runs first, then second on the remainder. The output of second is
// discarded, the output of first is returned.
func KeepFirst[T, U any](first *Parser[T], second *Parser[U]) *Parser[T] {
	return NewParser(first.label, func(s stream.Stream) Result[T] {
		r := first.Run(s)
		if !r.ok {
			return r
		}
		r2 := second.Run(r.remainder)
		if !r2.ok {
			return failed[T](r2)
		}
		return Succeed(r.output, r2.remainder)
	})
}

// Either tries left, then right. It is the function form of Parser.Or.
func Either[T any](left, right *Parser[T]) *Parser[T] {
	return left.Or(right)
}

// Emit returns a parser which calls hook with the output of p whenever p succeeds.
// As Or runs its alternatives lazily, hooks of an alternative fire only if
// all alternatives before it have failed.
func Emit[T any](p *Parser[T], hook func(T)) *Parser[T] {
	return NewParser(p.label, func(s stream.Stream) Result[T] {
		r := p.Run(s)
		if r.ok {
			hook(r.output)
		}
		return r
	})
}

// Erase returns a parser producing the output of p as type any. It is used to
// combine parsers of different output types, e.g. with Collect.
func Erase[T any](p *Parser[T]) *Parser[any] {
	return Map(p, func(v T) any { return v })
}

// Collect runs parsers in sequence and collects their outputs.
func Collect(parsers ...*Parser[any]) *Parser[[]any] {
	label := "collect"
	if len(parsers) > 0 {
		label = parsers[0].label
	}
	return NewParser(label, func(s stream.Stream) Result[[]any] {
		out := make([]any, 0, len(parsers))
		for _, p := range parsers {
			r := p.Run(s)
			if !r.ok {
				return failed[[]any](r)
			}
			out = append(out, r.output)
			s = r.remainder
		}
		return Succeed(out, s)
	})
}

// Concat runs string parsers in sequence and concatenates their outputs.
func Concat(parsers ...*Parser[string]) *Parser[string] {
	label := "concat"
	if len(parsers) > 0 {
		label = parsers[0].label
	}
	return NewParser(label, func(s stream.Stream) Result[string] {
		acc := Succeed("", s)
		for _, p := range parsers {
			acc = Append(acc, p.Run(acc.remainder))
			if !acc.ok {
				return acc
			}
		}
		return acc
	})
}

// AsString returns a parser which produces the rune output of p as a string.
func AsString(p *Parser[rune]) *Parser[string] {
	return Map(p, func(r rune) string { return string(r) })
}
