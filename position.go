package pcomb

import "fmt"

// DefaultFilename is the source name used for input which does not stem from a file.
const DefaultFilename = "<input>"

// tabWidth is the column grid tabs advance to.
const tabWidth = 4

// --- Positions -------------------------------------------------------------

// Position is a location within an input source. Line and column are 1-based,
// offset is a 0-based byte offset. The filename is used for diagnostics only.
//
// Positions are immutable: advancing a position returns a new one.
//
//	pos := pcomb.Initial("config.json")   // config.json:1:1
//	pos = pos.Advance("{\n\t")           // config.json:2:5
type Position struct {
	Filename string
	Line     int
	Column   int
	Offset   int
}

// Initial returns the start position for a source. An empty filename is replaced
// by DefaultFilename.
func Initial(filename string) Position {
	if filename == "" {
		filename = DefaultFilename
	}
	return Position{
		Filename: filename,
		Line:     1,
		Column:   1,
		Offset:   0,
	}
}

// Advance returns the position after having consumed text.
//
// Newlines and carriage returns start a new line, tabs advance the column to the
// next multiple of 4 (plus 1), every other rune advances the column by one.
func (p Position) Advance(consumed string) Position {
	for _, r := range consumed {
		p = p.advanceRune(r)
	}
	p.Offset += len(consumed)
	return p
}

func (p Position) advanceRune(r rune) Position {
	switch r {
	case '\n', '\r':
		p.Line++
		p.Column = 1
	case '\t':
		p.Column = NextTabStop(p.Column)
	default:
		p.Column++
	}
	return p
}

// NextTabStop returns the column a tab at column col advances to.
func NextTabStop(col int) int {
	return ((col-1)/tabWidth+1)*tabWidth + 1
}

// Pretty formats a position as "filename:line:column".
func (p Position) Pretty() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (p Position) String() string {
	return p.Pretty()
}

// Before is true if p is located before other. Positions are compared by their
// offset only.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}
