package parsec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/pcomb/stream"
)

// maxWindow is the maximum number of columns of source text shown in error messages.
const maxWindow = 80

// ErrorMessage formats a parse failure for humans. got is the input at the point
// of failure. The message looks like this:
//
//	<input>:1:5
//	  |
//	1 | let 9x = 1
//	  |     ^— column 5
//	Unexpected '9'
//	Expecting identifier
//
// Tabs in the source line are expanded to the column grid of positions, thus
// the caret points at the offending column. Lines wider than 80 columns are
// clipped around the position, with clipped parts shown as "...".
func ErrorMessage(expected string, got stream.Stream) string {
	pos := got.Position()
	lineNo := strconv.Itoa(pos.Line)
	pad := strings.Repeat(" ", len(lineNo)+1)
	window, caret := sourceWindow(got.CurrentLine(), pos.Column-1)
	var b strings.Builder
	b.WriteString(pos.Pretty())
	b.WriteString("\n" + pad + "|\n")
	b.WriteString(lineNo + " | " + window + "\n")
	b.WriteString(pad + "| " + strings.Repeat(" ", caret))
	fmt.Fprintf(&b, "^— column %d\n", pos.Column)
	b.WriteString("Unexpected " + unexpected(got) + "\n")
	b.WriteString("Expecting " + expected)
	return b.String()
}

// unexpected names the next rune of s, or <EOF>.
func unexpected(s stream.Stream) string {
	r, _, err := s.TakeOne()
	if err != nil {
		return "<EOF>"
	}
	return PrintableName(r)
}

// sourceWindow renders a source line as it is displayed in error messages, and
// moves caret, a zero-based column, to match the rendering.
func sourceWindow(line string, caret int) (string, int) {
	cols := make([]rune, 0, len(line))
	for _, r := range line {
		switch {
		case r == '\t':
			next := pcomb.NextTabStop(len(cols) + 1)
			for len(cols) < next-1 {
				cols = append(cols, ' ')
			}
		case IsControl(r) || inRange(r, 128, 159):
			cols = append(cols, '·')
		default:
			cols = append(cols, r)
		}
	}
	if caret > len(cols) {
		caret = len(cols)
	}
	if len(cols) <= maxWindow {
		return string(cols), caret
	}
	start, prefix := 0, ""
	if caret > maxWindow*3/4 {
		start = caret - maxWindow/2
		prefix = "..."
	}
	end, suffix := start+maxWindow, "..."
	if end >= len(cols) {
		end, suffix = len(cols), ""
	}
	return prefix + string(cols[start:end]) + suffix, caret - start + len(prefix)
}

// PrintableName returns a printable representation of r for error messages:
// control characters, spaces and other invisible characters are named in
// angle brackets, all other runes are quoted.
func PrintableName(r rune) string {
	return quote(r)
}

// controlNames names the runes which cannot be shown as they are.
var controlNames = map[rune]string{
	0: "<null>", 1: "<start of heading>", 2: "<start of text>", 3: "<end of text>",
	4: "<end of transmission>", 5: "<enquiry>", 6: "<acknowledge>", 7: "<bell>",
	8: "<backspace>", 9: "<horizontal tab>", 10: "<line feed>", 11: "<vertical tab>",
	12: "<form feed>", 13: "<carriage return>", 14: "<shift out>", 15: "<shift in>",
	16: "<data link escape>", 17: "<device control one>", 18: "<device control two>",
	19: "<device control three>", 20: "<device control four>", 21: "<negative acknowledge>",
	22: "<synchronous idle>", 23: "<end of transmission block>", 24: "<cancel>",
	25: "<end of medium>", 26: "<substitute>", 27: "<escape>", 28: "<file separator>",
	29: "<group separator>", 30: "<record separator>", 31: "<unit separator>",
	32:  "<space>",
	127: "<delete>",
	128: "<padding character>", 129: "<high octet preset>", 130: "<break permitted here>",
	131: "<no break here>", 132: "<index>", 133: "<next line>", 134: "<start of selected area>",
	135: "<end of selected area>", 136: "<character tabulation set>",
	137: "<character tabulation with justification>", 138: "<line tabulation set>",
	139: "<partial line forward>", 140: "<partial line backward>", 141: "<reverse line feed>",
	142: "<single shift two>", 143: "<single shift three>", 144: "<device control string>",
	145: "<private use one>", 146: "<private use two>", 147: "<set transmit state>",
	148: "<cancel character>", 149: "<message waiting>", 150: "<start of guarded area>",
	151: "<end of guarded area>", 152: "<start of string>", 153: "<single graphic character introducer>",
	154: "<single character introducer>", 155: "<control sequence introducer>",
	156: "<string terminator>", 157: "<operating system command>", 158: "<privacy message>",
	159: "<application program command>",
	160: "<non-breaking space>",
	173: "<soft hyphen>",
}
