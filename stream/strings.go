package stream

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/pcomb"
)

// StringStream is an in-memory stream over a Go string, decoded as UTF-8.
// Create one with FromString.
type StringStream struct {
	input string
	pos   pcomb.Position
}

var _ Stream = StringStream{}

// FromString creates a stream for an input string. Without a Filename option,
// the source is named "<input>".
func FromString(input string, opts ...Option) StringStream {
	o := makeOptions(pcomb.DefaultFilename, opts)
	return StringStream{
		input: input,
		pos:   pcomb.Initial(o.filename),
	}
}

// TakeOne is part of the Stream interface.
func (s StringStream) TakeOne() (rune, Stream, error) {
	if s.IsEOF() {
		return 0, s, ErrEndOfStream
	}
	r, size := utf8.DecodeRuneInString(s.rest())
	return r, s.advance(size), nil
}

// TakeN is part of the Stream interface.
func (s StringStream) TakeN(n int) (string, Stream, error) {
	if n <= 0 {
		return "", s, nil
	}
	if s.IsEOF() {
		return "", s, ErrEndOfStream
	}
	rest := s.rest()
	end := 0
	for i := 0; i < n && end < len(rest); i++ {
		_, size := utf8.DecodeRuneInString(rest[end:])
		end += size
	}
	return rest[:end], s.advance(end), nil
}

// TakeWhile is part of the Stream interface.
func (s StringStream) TakeWhile(pred func(rune) bool) (string, Stream) {
	rest := s.rest()
	end := 0
	for end < len(rest) {
		r, size := utf8.DecodeRuneInString(rest[end:])
		if !pred(r) {
			break
		}
		end += size
	}
	if end == 0 {
		return "", s
	}
	return rest[:end], s.advance(end)
}

// IsEOF is part of the Stream interface.
func (s StringStream) IsEOF() bool {
	return s.pos.Offset >= len(s.input)
}

// Position is part of the Stream interface.
func (s StringStream) Position() pcomb.Position {
	return s.pos
}

// CurrentLine is part of the Stream interface.
func (s StringStream) CurrentLine() string {
	start := s.pos.Offset
	for start > 0 && !isLineBreak(s.input[start-1]) {
		start--
	}
	end := s.pos.Offset
	for end < len(s.input) && !isLineBreak(s.input[end]) {
		end++
	}
	return s.input[start:end]
}

// Rest returns the unconsumed input.
func (s StringStream) Rest() string {
	return s.rest()
}

func (s StringStream) String() string {
	rest := s.rest()
	if len(rest) > 16 {
		rest = rest[:16] + "…"
	}
	return fmt.Sprintf("[%s %q]", s.pos, rest)
}

func (s StringStream) rest() string {
	return s.input[s.pos.Offset:]
}

// advance moves forward by byteCount bytes of input.
func (s StringStream) advance(byteCount int) StringStream {
	off := s.pos.Offset
	s.pos = s.pos.Advance(s.input[off : off+byteCount])
	return s
}
