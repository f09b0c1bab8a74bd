package parsec

import (
	"fmt"

	"github.com/npillmayer/pcomb/stream"
)

// Parser is a re-runnable computation from an input stream to a Result.
// Every parser has a human readable label, which is used in error messages.
//
// Parsers are immutable once constructed (with the exception of the two-phase
// construction of recursive parsers, see Recursive) and may be run concurrently
// on independent streams.
type Parser[T any] struct {
	run       func(stream.Stream) Result[T]
	label     string
	recursive bool
}

// NewParser creates a parser from a function. Clients use it to create their own
// primitives; run must not panic for malformed input, but return a failure.
func NewParser[T any](label string, run func(stream.Stream) Result[T]) *Parser[T] {
	if run == nil {
		panic("cannot create parser without run function")
	}
	return &Parser[T]{run: run, label: label}
}

// Run runs the parser on an input stream.
func (p *Parser[T]) Run(s stream.Stream) Result[T] {
	if p.run == nil {
		if p.recursive {
			panic(fmt.Sprintf("recursive parser %q has not been set up; call Recurse before running it",
				p.label))
		}
		panic("attempt to run an uninitialized parser")
	}
	return p.run(s)
}

// RunString runs the parser on a string.
func (p *Parser[T]) RunString(input string, opts ...stream.Option) Result[T] {
	return p.Run(stream.FromString(input, opts...))
}

// TryParse runs the parser on a string and returns its output. A failure is
// returned as a *ParseError.
func (p *Parser[T]) TryParse(input string, opts ...stream.Option) (T, error) {
	return p.TryParseStream(stream.FromString(input, opts...))
}

// TryParseStream runs the parser on a stream and returns its output. A failure is
// returned as a *ParseError.
func (p *Parser[T]) TryParseStream(s stream.Stream) (T, error) {
	r := p.Run(s)
	if r.IsFail() {
		tracer().Debugf("parse failed at %s: expecting %s", r.got.Position(), r.expected)
		var zero T
		return zero, r.Err()
	}
	return r.output, nil
}

// RunOn runs the parser on a snapshot of a transactional cursor. On success the
// cursor is moved to the remainder, on failure it is left untouched.
func (p *Parser[T]) RunOn(c *stream.Cursor) Result[T] {
	r := p.Run(c.Snapshot())
	if r.IsSuccess() {
		c.AdvanceTo(r.remainder)
	}
	return r
}

// String returns the label of p.
func (p *Parser[T]) String() string {
	return p.label
}

// Label returns a parser which behaves like p, but reports failures as
// expecting text.
func (p *Parser[T]) Label(text string) *Parser[T] {
	return NewParser(text, func(s stream.Stream) Result[T] {
		r := p.Run(s)
		if r.ok {
			return r
		}
		return Fail[T](text, r.got)
	})
}

// Or returns a parser which tries p first and, if p fails, tries other on the
// original input. other is run only if p fails. If both fail, failures are
// combined as described for Alternative.
func (p *Parser[T]) Or(other *Parser[T]) *Parser[T] {
	return NewParser(p.label+" or "+other.label, func(s stream.Stream) Result[T] {
		r := p.Run(s)
		if r.ok {
			return r
		}
		return Alternative(r, other.Run(s))
	})
}

// ThenEOF returns a parser which succeeds only if p succeeds and has consumed
// all of the input.
func (p *Parser[T]) ThenEOF() *Parser[T] {
	return KeepFirst(p, EOF())
}

// --- Recursive parsers -----------------------------------------------------

// Recursive creates a placeholder for a parser which will be set up later
// by calling Recurse. It may be used in combinators right away, which enables
// self-referential grammars. Running it before Recurse has been called panics.
func Recursive[T any]() *Parser[T] {
	return &Parser[T]{label: "<recursive>", recursive: true}
}

// Recurse binds a placeholder created by Recursive to target, returning the
// placeholder. A placeholder may be bound once only; calling Recurse on any other
// parser or a second time panics.
func (p *Parser[T]) Recurse(target *Parser[T]) *Parser[T] {
	if !p.recursive {
		panic("Recurse called on a parser not created by Recursive")
	}
	if p.run != nil {
		panic(fmt.Sprintf("recursive parser %q is already set up", p.label))
	}
	if target == nil {
		panic("recursive parser cannot be bound to nil")
	}
	tracer().Debugf("binding recursive parser to %s", target.label)
	p.label = target.label
	p.run = target.Run
	return p
}
