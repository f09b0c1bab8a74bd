package stream

import (
	"fmt"
	"unicode/utf8"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/pcomb"
)

// Cursor is a mutable read position over a string, supporting nested transactions.
//
//	c := stream.NewCursor("abc")
//	c.Begin()
//	c.TakeN(2)      // "ab"
//	c.Rollback()    // back at "abc"
//
// Every consuming operation is counted by the innermost open transaction.
// Commit finalizes the consumption of the innermost transaction (adding it to the
// enclosing one), Rollback rewinds the cursor to where the innermost transaction began.
//
// A Cursor is not a Stream. Parsers operate on immutable snapshots (see Snapshot),
// and a cursor may be moved forward to a stream derived from one of its snapshots
// (see AdvanceTo). Mutations of the cursor thus never become visible to streams
// held by parsers.
type Cursor struct {
	input string
	pos   pcomb.Position
	marks *arraystack.Stack // of *mark
}

// mark is a transaction checkpoint.
type mark struct {
	consumed int            // runes consumed since Begin
	pos      pcomb.Position // position at Begin
}

// NewCursor creates a cursor at the start of input.
func NewCursor(input string, opts ...Option) *Cursor {
	o := makeOptions(pcomb.DefaultFilename, opts)
	return &Cursor{
		input: input,
		pos:   pcomb.Initial(o.filename),
		marks: arraystack.New(),
	}
}

// Begin opens a (possibly nested) transaction.
func (c *Cursor) Begin() {
	c.marks.Push(&mark{pos: c.pos})
}

// Commit closes the innermost transaction, keeping its consumption.
// It panics if no transaction is open.
func (c *Cursor) Commit() {
	m := c.pop("commit")
	if top, ok := c.marks.Peek(); ok {
		top.(*mark).consumed += m.consumed
	}
}

// Rollback closes the innermost transaction, rewinding the cursor to where the
// transaction began. It panics if no transaction is open.
func (c *Cursor) Rollback() {
	m := c.pop("rollback")
	tracer().Debugf("rollback of %d runes to %s", m.consumed, m.pos)
	c.pos = m.pos
}

// Depth returns the number of open transactions.
func (c *Cursor) Depth() int {
	return c.marks.Size()
}

// Pending returns the number of runes consumed within the innermost open transaction,
// or 0 if no transaction is open.
func (c *Cursor) Pending() int {
	if top, ok := c.marks.Peek(); ok {
		return top.(*mark).consumed
	}
	return 0
}

func (c *Cursor) pop(op string) *mark {
	m, ok := c.marks.Pop()
	if !ok {
		panic(fmt.Sprintf("attempt to %s cursor without open transaction", op))
	}
	return m.(*mark)
}

// TakeOne consumes a single rune.
func (c *Cursor) TakeOne() (rune, error) {
	r, next, err := c.Snapshot().TakeOne()
	if err != nil {
		return 0, err
	}
	c.moveTo(next.(StringStream), 1)
	return r, nil
}

// TakeN consumes up to n runes, with the semantics of Stream.TakeN.
func (c *Cursor) TakeN(n int) (string, error) {
	chunk, next, err := c.Snapshot().TakeN(n)
	if err != nil {
		return "", err
	}
	c.moveTo(next.(StringStream), utf8.RuneCountInString(chunk))
	return chunk, nil
}

// TakeWhile consumes the longest run of runes satisfying pred.
func (c *Cursor) TakeWhile(pred func(rune) bool) string {
	chunk, next := c.Snapshot().TakeWhile(pred)
	c.moveTo(next.(StringStream), utf8.RuneCountInString(chunk))
	return chunk
}

// IsEOF is true if no input is left.
func (c *Cursor) IsEOF() bool {
	return c.pos.Offset >= len(c.input)
}

// Position returns the current position of the cursor.
func (c *Cursor) Position() pcomb.Position {
	return c.pos
}

// Snapshot returns an immutable stream at the cursor's current position.
func (c *Cursor) Snapshot() Stream {
	return StringStream{input: c.input, pos: c.pos}
}

// AdvanceTo moves the cursor forward to the position of s, counting the runes in
// between as consumed. s must have been derived from a snapshot of c and must not be
// located before the cursor; otherwise AdvanceTo panics.
func (c *Cursor) AdvanceTo(s Stream) {
	ss, ok := s.(StringStream)
	if !ok || ss.input != c.input {
		panic("attempt to advance cursor to a foreign stream")
	}
	if ss.pos.Before(c.pos) {
		panic(fmt.Sprintf("attempt to move cursor backwards from %s to %s", c.pos, ss.pos))
	}
	n := utf8.RuneCountInString(c.input[c.pos.Offset:ss.pos.Offset])
	c.moveTo(ss, n)
}

func (c *Cursor) moveTo(s StringStream, runeCount int) {
	c.pos = s.pos
	if top, ok := c.marks.Peek(); ok {
		top.(*mark).consumed += runeCount
	}
}
