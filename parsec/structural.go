package parsec

import (
	"fmt"

	"github.com/npillmayer/pcomb/stream"
	"github.com/npillmayer/schuko/gconf"
)

// Between parses open, middle and close in sequence and returns the output of middle.
func Between[O, C, T any](open *Parser[O], close *Parser[C], middle *Parser[T]) *Parser[T] {
	return Sequence(open, KeepFirst(middle, close))
}

// Optional tries p. If p fails, Optional succeeds with the zero value of T and
// consumes nothing.
func Optional[T any](p *Parser[T]) *Parser[T] {
	var zero T
	return p.Or(Pure(zero)).Label("optional " + p.label)
}

// Choice tries parsers in order and returns the first success. It panics if
// called without parsers.
func Choice[T any](parsers ...*Parser[T]) *Parser[T] {
	if len(parsers) == 0 {
		panic("Choice requires at least one parser")
	}
	p := parsers[0]
	for _, q := range parsers[1:] {
		p = p.Or(q)
	}
	return p
}

// Many applies p zero or more times and collects the outputs. It always succeeds.
// An application of p which fails after having consumed input is undone.
func Many[T any](p *Parser[T]) *Parser[[]T] {
	return NewParser("many "+p.label, func(s stream.Stream) Result[[]T] {
		out, rest := many(p, s, nil, "Many")
		return Succeed(out, rest)
	})
}

// Some applies p one or more times and collects the outputs.
func Some[T any](p *Parser[T]) *Parser[[]T] {
	return NewParser("some "+p.label, func(s stream.Stream) Result[[]T] {
		r := p.Run(s)
		if !r.ok {
			return failed[[]T](r)
		}
		out, rest := many(p, r.remainder, []T{r.output}, "Some")
		return Succeed(out, rest)
	})
}

// many is the loop of Many and Some, appending outputs to out.
func many[T any](p *Parser[T], s stream.Stream, out []T, name string) ([]T, stream.Stream) {
	if out == nil {
		out = []T{}
	}
	for {
		r := p.Run(s)
		if !r.ok || noProgress(name, p.label, s, r.remainder) {
			return out, s
		}
		out = append(out, r.output)
		s = r.remainder
	}
}

// Repeat applies p exactly n times.
func Repeat[T any](n int, p *Parser[T]) *Parser[[]T] {
	return NewParser(fmt.Sprintf("%d times %s", n, p.label), func(s stream.Stream) Result[[]T] {
		out := make([]T, 0, n)
		for i := 0; i < n; i++ {
			r := p.Run(s)
			if !r.ok {
				return failed[[]T](r)
			}
			out = append(out, r.output)
			s = r.remainder
		}
		return Succeed(out, s)
	})
}

// SepBy parses zero or more occurences of p, separated by sep. It always succeeds.
func SepBy[S, T any](sep *Parser[S], p *Parser[T]) *Parser[[]T] {
	return NewParser(p.label, func(s stream.Stream) Result[[]T] {
		r := sepBy(sep, p, 1, s)
		if !r.ok {
			return Succeed([]T{}, s)
		}
		return r
	})
}

// SepBy1 parses one or more occurences of p, separated by sep.
func SepBy1[S, T any](sep *Parser[S], p *Parser[T]) *Parser[[]T] {
	return NewParser(p.label, func(s stream.Stream) Result[[]T] {
		return sepBy(sep, p, 1, s)
	})
}

// SepBy2 parses two or more occurences of p, separated by sep.
func SepBy2[S, T any](sep *Parser[S], p *Parser[T]) *Parser[[]T] {
	return NewParser(p.label, func(s stream.Stream) Result[[]T] {
		return sepBy(sep, p, 2, s)
	})
}

// sepBy parses at least min occurences of p, separated by sep. A separator not
// followed by an occurence of p is not consumed.
func sepBy[S, T any](sep *Parser[S], p *Parser[T], min int, s stream.Stream) Result[[]T] {
	r := p.Run(s)
	if !r.ok {
		return failed[[]T](r)
	}
	out := []T{r.output}
	s = r.remainder
	for {
		rs := sep.Run(s)
		if !rs.ok {
			break
		}
		rp := p.Run(rs.remainder)
		if !rp.ok {
			if len(out) < min {
				return failed[[]T](rp)
			}
			break
		}
		if noProgress("SepBy", p.label, s, rp.remainder) {
			break
		}
		out = append(out, rp.output)
		s = rp.remainder
	}
	if len(out) < min {
		return Fail[[]T](fmt.Sprintf("%d occurences of %s", min, p.label), s)
	}
	return Succeed(out, s)
}

// NotFollowedBy succeeds without consuming input if p fails at this point, and
// fails if p succeeds. It is used for boundaries, e.g. to tell keyword "print"
// from identifier "printXYZ".
func NotFollowedBy[T any](p *Parser[T]) *Parser[Unit] {
	label := "not followed by " + p.label
	return NewParser(label, func(s stream.Stream) Result[Unit] {
		if r := p.Run(s); r.ok {
			return Fail[Unit](label, s)
		}
		return Succeed(Unit{}, s)
	})
}

// LookAhead runs p without consuming input.
func LookAhead[T any](p *Parser[T]) *Parser[T] {
	return NewParser(p.label, func(s stream.Stream) Result[T] {
		r := p.Run(s)
		if !r.ok {
			return r
		}
		return Succeed(r.output, s)
	})
}

// ---------------------------------------------------------------------------

// noProgress checks if a loop iteration succeeded without consuming input. Such a
// loop would never terminate, thus callers end the loop. If configuration flag
// panic-on-empty-loop is set, noProgress panics instead.
func noProgress(combinator, label string, before, after stream.Stream) bool {
	if before.Position().Before(after.Position()) {
		return false
	}
	msg := fmt.Sprintf("%s: parser %s succeeded without consuming input at %s",
		combinator, label, before.Position())
	tracer().Errorf("%s", msg)
	if gconf.GetBool("panic-on-empty-loop") {
		panic(`Parser loop does not make progress.

Configuration flag panic-on-empty-loop is set to true. It is aimed at helping
to debug a grammar and find a repetition of a parser which accepts empty input.
If you did not expect this to panic, please unset panic-on-empty-loop to its
default (false).

` + msg)
	}
	return true
}
