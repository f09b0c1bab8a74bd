package parsec

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/pcomb/stream"
)

// Result is the outcome of running a parser: either a success with an output
// value and the remaining input, or a failure with a label of what was expected
// and the input at the point of failure.
//
// Reading the output or remainder of a failure, or the expectation of a success,
// is a programming error and panics.
type Result[T any] struct {
	ok        bool
	output    T
	remainder stream.Stream
	expected  string
	got       stream.Stream
}

// Succeed creates a successful result.
func Succeed[T any](output T, remainder stream.Stream) Result[T] {
	return Result[T]{ok: true, output: output, remainder: remainder}
}

// Fail creates a failed result. got is the input at the point of failure.
func Fail[T any](expected string, got stream.Stream) Result[T] {
	return Result[T]{expected: expected, got: got}
}

// failed re-types a failure.
func failed[U, T any](r Result[T]) Result[U] {
	return Result[U]{expected: r.expected, got: r.got}
}

// IsSuccess is true for successful results.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFail is true for failed results.
func (r Result[T]) IsFail() bool {
	return !r.ok
}

// Output returns the output of a success.
func (r Result[T]) Output() T {
	if !r.ok {
		panic("attempt to read output of a failed parse result")
	}
	return r.output
}

// Remainder returns the input left over by a success.
func (r Result[T]) Remainder() stream.Stream {
	if !r.ok {
		panic("attempt to read remainder of a failed parse result")
	}
	return r.remainder
}

// Expected returns the label of what a failure expected.
func (r Result[T]) Expected() string {
	if r.ok {
		panic("attempt to read expectation of a successful parse result")
	}
	return r.expected
}

// Got returns the input at the point of failure.
func (r Result[T]) Got() stream.Stream {
	if r.ok {
		panic("attempt to read failure input of a successful parse result")
	}
	return r.got
}

// Stream returns the remainder of a success or the input at the point of failure.
func (r Result[T]) Stream() stream.Stream {
	if r.ok {
		return r.remainder
	}
	return r.got
}

// Position returns the position of the remainder of a success or the position of
// a failure.
func (r Result[T]) Position() pcomb.Position {
	return r.Stream().Position()
}

// ErrorMessage formats a failure for humans, pointing at the failure position.
// See function ErrorMessage for the format.
func (r Result[T]) ErrorMessage() string {
	if r.ok {
		panic("attempt to create error message for a successful parse result")
	}
	return ErrorMessage(r.expected, r.got)
}

// Err returns nil for a success and a *ParseError for a failure.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return &ParseError{Expected: r.expected, Got: r.got}
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("success(%v) at %s", r.output, r.remainder.Position())
	}
	return fmt.Sprintf("failure(expecting %s) at %s", r.expected, r.got.Position())
}

// --- Result algebra --------------------------------------------------------

// MapResult transforms the output of a success. Failures pass unchanged.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.ok {
		return failed[U](r)
	}
	return Succeed(f(r.output), r.remainder)
}

// Append combines two successes by concatenating their outputs, which must be
// both strings or both slices of the same type. The remainder is the right
// result's remainder. If any of the results is a failure, the leftmost failure is
// returned.
//
// Appending outputs of any other type is a programming error and panics.
func Append[T any](left, right Result[T]) Result[T] {
	if !left.ok {
		return left
	}
	if !right.ok {
		return right
	}
	return Succeed(appendOutputs(left.output, right.output), right.remainder)
}

func appendOutputs[T any](a, b T) T {
	if s, ok := any(a).(string); ok {
		if t, ok := any(b).(string); ok {
			return any(s + t).(T)
		}
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() || va.Type() != vb.Type() {
		panic(fmt.Sprintf("cannot append parse outputs of types %T and %T", a, b))
	}
	switch va.Kind() {
	case reflect.String:
		v := reflect.New(va.Type()).Elem()
		v.SetString(va.String() + vb.String())
		return v.Interface().(T)
	case reflect.Slice:
		v := reflect.MakeSlice(va.Type(), 0, va.Len()+vb.Len())
		v = reflect.AppendSlice(v, va)
		v = reflect.AppendSlice(v, vb)
		return v.Interface().(T)
	}
	panic(fmt.Sprintf("cannot append parse outputs of type %T", a))
}

// Alternative returns the first success of left and right. If both have failed,
// the result is a failure expecting "A or B", located at the failure which got
// further into the input. For failures at the same position, left wins.
func Alternative[T any](left, right Result[T]) Result[T] {
	if left.ok {
		return left
	}
	if right.ok {
		return right
	}
	got := left.got
	if left.got.Position().Before(right.got.Position()) {
		got = right.got
	}
	return Fail[T](left.expected+" or "+right.expected, got)
}

// ContinueWith runs parser p on the remainder of a success. Failures pass unchanged.
func ContinueWith[T, U any](r Result[T], p *Parser[U]) Result[U] {
	if !r.ok {
		return failed[U](r)
	}
	return p.Run(r.remainder)
}

// --- Errors ----------------------------------------------------------------

// ParseError is the error returned for failed parses by TryParse and Result.Err.
// It carries the failure's expectation and input, thus clients may still format
// an error message from it.
type ParseError struct {
	Expected string        // label of what was expected
	Got      stream.Stream // input at the point of failure
}

// Position returns the position of the failure.
func (e *ParseError) Position() pcomb.Position {
	return e.Got.Position()
}

// ErrorMessage returns a multi-line error message pointing at the failure.
func (e *ParseError) ErrorMessage() string {
	return ErrorMessage(e.Expected, e.Got)
}

func (e *ParseError) Error() string {
	return e.ErrorMessage()
}
