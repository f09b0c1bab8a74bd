package stream

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/pcomb"
)

// blockSize is the size of input chunks a FileStream caches.
const blockSize = 4096

// maxLineScan limits how far CurrentLine looks for line boundaries.
const maxLineScan = 4096

// FileStream is a stream reading from a file (or any io.ReaderAt). The read position
// is the byte offset kept in the stream's position, so stream values remain
// independent of each other even though they share a file handle: there is no
// shared file cursor which could get out of sync with the logical position.
//
// Create one with Open or FromReaderAt.
type FileStream struct {
	src *source
	pos pcomb.Position
}

var _ Stream = FileStream{}

// source is the file handle shared by all stream values derived from the
// same FileStream, together with a single-block read cache.
type source struct {
	r      io.ReaderAt
	size   int64
	closer io.Closer
	mx     sync.Mutex
	block  []byte
	bstart int64
}

// Open opens a file for streaming. The file's path is used as source name unless
// a Filename option is given. Clients should call Close when done.
func Open(path string, opts ...Option) (FileStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileStream{}, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return FileStream{}, err
	}
	o := makeOptions(path, opts)
	s := FileStream{
		src: &source{r: f, size: info.Size(), closer: f, bstart: -1},
		pos: pcomb.Initial(o.filename),
	}
	tracer().Debugf("opened file stream %s with %d bytes", o.filename, info.Size())
	return s, nil
}

// FromReaderAt creates a stream for size bytes of input readable from r.
func FromReaderAt(r io.ReaderAt, size int64, opts ...Option) FileStream {
	o := makeOptions(pcomb.DefaultFilename, opts)
	return FileStream{
		src: &source{r: r, size: size, bstart: -1},
		pos: pcomb.Initial(o.filename),
	}
}

// Close closes the underlying file, if the stream has been created by Open.
// All stream values derived from the same origin are invalid afterwards.
func (s FileStream) Close() error {
	if s.src == nil || s.src.closer == nil {
		return nil
	}
	return s.src.closer.Close()
}

// TakeOne is part of the Stream interface.
func (s FileStream) TakeOne() (rune, Stream, error) {
	if s.IsEOF() {
		return 0, s, ErrEndOfStream
	}
	r, size, err := s.src.runeAt(int64(s.pos.Offset))
	if err != nil {
		return 0, s, err
	}
	next, err := s.advance(size)
	if err != nil {
		return 0, s, err
	}
	return r, next, nil
}

// TakeN is part of the Stream interface.
func (s FileStream) TakeN(n int) (string, Stream, error) {
	if n <= 0 {
		return "", s, nil
	}
	if s.IsEOF() {
		return "", s, ErrEndOfStream
	}
	off := int64(s.pos.Offset)
	end := off
	for i := 0; i < n && end < s.src.size; i++ {
		_, size, err := s.src.runeAt(end)
		if err != nil {
			return "", s, err
		}
		end += int64(size)
	}
	chunk, err := s.src.slice(off, end)
	if err != nil {
		return "", s, err
	}
	s.pos = s.pos.Advance(chunk)
	return chunk, s, nil
}

// TakeWhile is part of the Stream interface. A read error ends the run, as does
// the end of input.
func (s FileStream) TakeWhile(pred func(rune) bool) (string, Stream) {
	off := int64(s.pos.Offset)
	end := off
	for end < s.src.size {
		r, size, err := s.src.runeAt(end)
		if err != nil {
			tracer().Errorf("stream %s: %v", s.pos.Filename, err)
			break
		}
		if !pred(r) {
			break
		}
		end += int64(size)
	}
	if end == off {
		return "", s
	}
	chunk, err := s.src.slice(off, end)
	if err != nil {
		tracer().Errorf("stream %s: %v", s.pos.Filename, err)
		return "", s
	}
	s.pos = s.pos.Advance(chunk)
	return chunk, s
}

// IsEOF is part of the Stream interface.
func (s FileStream) IsEOF() bool {
	return s.src == nil || int64(s.pos.Offset) >= s.src.size
}

// Position is part of the Stream interface.
func (s FileStream) Position() pcomb.Position {
	return s.pos
}

// CurrentLine is part of the Stream interface. Lines are searched for at most
// 4096 bytes in either direction.
func (s FileStream) CurrentLine() string {
	if s.src == nil {
		return ""
	}
	off := int64(s.pos.Offset)
	from := off - maxLineScan
	if from < 0 {
		from = 0
	}
	to := off + maxLineScan
	if to > s.src.size {
		to = s.src.size
	}
	before, err := s.src.slice(from, off)
	if err != nil {
		return ""
	}
	after, err := s.src.slice(off, to)
	if err != nil {
		return ""
	}
	if i := strings.LastIndexAny(before, "\n\r"); i >= 0 {
		before = before[i+1:]
	}
	if i := strings.IndexAny(after, "\n\r"); i >= 0 {
		after = after[:i]
	}
	return before + after
}

func (s FileStream) String() string {
	return fmt.Sprintf("[%s file stream]", s.pos)
}

func (s FileStream) advance(byteCount int) (FileStream, error) {
	off := int64(s.pos.Offset)
	chunk, err := s.src.slice(off, off+int64(byteCount))
	if err != nil {
		return s, err
	}
	s.pos = s.pos.Advance(chunk)
	return s, nil
}

// --- Reading ---------------------------------------------------------------

// runeAt decodes the rune starting at byte offset off.
func (src *source) runeAt(off int64) (rune, int, error) {
	end := off + utf8.UTFMax
	if end > src.size {
		end = src.size
	}
	chunk, err := src.slice(off, end)
	if err != nil {
		return 0, 0, err
	}
	if len(chunk) == 0 {
		return 0, 0, ErrEndOfStream
	}
	r, size := utf8.DecodeRuneInString(chunk)
	return r, size, nil
}

// slice reads the input bytes [from…to).
func (src *source) slice(from, to int64) (string, error) {
	if from >= to {
		return "", nil
	}
	src.mx.Lock()
	defer src.mx.Unlock()
	if src.bstart >= 0 && from >= src.bstart && to <= src.bstart+int64(len(src.block)) {
		return string(src.block[from-src.bstart : to-src.bstart]), nil
	}
	if to-from > blockSize {
		buf := make([]byte, to-from)
		if err := src.readAt(buf, from); err != nil {
			return "", err
		}
		return string(buf), nil
	}
	size := int64(blockSize)
	if from+size > src.size {
		size = src.size - from
	}
	if src.block == nil {
		src.block = make([]byte, blockSize)
	}
	src.block = src.block[:size]
	if err := src.readAt(src.block, from); err != nil {
		src.bstart = -1
		return "", err
	}
	src.bstart = from
	return string(src.block[:to-from]), nil
}

func (src *source) readAt(buf []byte, off int64) error {
	n, err := src.r.ReadAt(buf, off)
	if n == len(buf) {
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return fmt.Errorf("short read at offset %d: %w", off+int64(n), ErrEndOfStream)
	}
	return fmt.Errorf("read at offset %d: %w", off, err)
}
