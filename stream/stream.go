package stream

import (
	"errors"

	"github.com/npillmayer/pcomb"
)

// ErrEndOfStream is returned by stream operations which require input when none is left.
// It is not a parse failure: parsers convert it into one at the point of occurence.
var ErrEndOfStream = errors.New("end of stream")

// Stream is the input type for parsers. Implementations are immutable: every
// consuming operation returns the stream after consumption as a new value.
//
// Characters are runes; the positions reported by a stream count runes for columns
// and bytes for offsets.
//
// Input which is not valid UTF-8 decodes to utf8.RuneError, one per invalid byte.
// TakeOne returns utf8.RuneError for such a byte, and predicates of TakeWhile see
// it as well. Chunks returned by TakeN and TakeWhile are slices of the input, thus
// they keep the invalid bytes as they are. Clients which need valid UTF-8 must
// replace them.
type Stream interface {
	// TakeOne consumes exactly one rune. At end of input it returns ErrEndOfStream
	// and the unchanged stream.
	TakeOne() (rune, Stream, error)
	// TakeN consumes up to n runes. n ≤ 0 returns an empty chunk and the unchanged stream.
	// If fewer than n runes are left, the available runes are returned. ErrEndOfStream
	// is returned only if n > 0 and no input is left.
	TakeN(n int) (string, Stream, error)
	// TakeWhile consumes the longest run of runes satisfying pred. It never fails and
	// may return an empty chunk.
	TakeWhile(pred func(rune) bool) (string, Stream)
	// IsEOF is true if no input is left.
	IsEOF() bool
	// Position is the position of the next rune to consume.
	Position() pcomb.Position
	// CurrentLine is the text of the line containing the current position, without
	// the line terminator. It is used for diagnostics.
	CurrentLine() string
}

// --- Options ---------------------------------------------------------------

type options struct {
	filename string
}

// Option configures a stream.
type Option func(opts *options)

// Filename sets the source name used in positions and error messages.
func Filename(name string) Option {
	return func(opts *options) {
		opts.filename = name
	}
}

func makeOptions(defaultName string, opts []Option) options {
	o := options{filename: defaultName}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// isLineBreak is true for runes which start a new line in positions.
func isLineBreak(b byte) bool {
	return b == '\n' || b == '\r'
}
