package parsec

// --- Predicates ------------------------------------------------------------

// Predicates are defined on code point ranges of the ASCII character set.
// They may be used with Satisfy and the TakeWhile family.

// IsEqual returns a predicate which is true for c only.
func IsEqual(c rune) func(rune) bool {
	return func(r rune) bool {
		return r == c
	}
}

func inRange(r, from, to rune) bool {
	return r >= from && r <= to
}

// IsDigit is true for 0…9.
func IsDigit(r rune) bool {
	return inRange(r, '0', '9')
}

// IsUpper is true for A…Z.
func IsUpper(r rune) bool {
	return inRange(r, 'A', 'Z')
}

// IsLower is true for a…z.
func IsLower(r rune) bool {
	return inRange(r, 'a', 'z')
}

// IsAlpha is true for A…Z and a…z.
func IsAlpha(r rune) bool {
	return IsUpper(r) || IsLower(r)
}

// IsAlphaNum is true for letters and digits.
func IsAlphaNum(r rune) bool {
	return IsAlpha(r) || IsDigit(r)
}

// IsHexDigit is true for 0…9, a…f and A…F.
func IsHexDigit(r rune) bool {
	return IsDigit(r) || inRange(r, 'a', 'f') || inRange(r, 'A', 'F')
}

// IsOctDigit is true for 0…7.
func IsOctDigit(r rune) bool {
	return inRange(r, '0', '7')
}

// IsBinDigit is true for 0 and 1.
func IsBinDigit(r rune) bool {
	return r == '0' || r == '1'
}

// IsControl is true for the control characters 0…31 and 127.
func IsControl(r rune) bool {
	return inRange(r, 0, 31) || r == 127
}

// IsPrintable is true for the printable characters 32…126.
func IsPrintable(r rune) bool {
	return inRange(r, 32, 126)
}

// IsPunctuation is true for ASCII punctuation: !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
func IsPunctuation(r rune) bool {
	return inRange(r, 33, 47) || inRange(r, 58, 64) || inRange(r, 91, 96) || inRange(r, 123, 126)
}

// IsSpace is true for space, tab, line feed, carriage return, vertical tab and form feed.
func IsSpace(r rune) bool {
	return r == ' ' || inRange(r, '\t', '\r')
}

// IsHSpace is true for horizontal whitespace: space and tab.
func IsHSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// AndPred returns a predicate which is true if all of preds are true.
func AndPred(preds ...func(rune) bool) func(rune) bool {
	return func(r rune) bool {
		for _, pred := range preds {
			if !pred(r) {
				return false
			}
		}
		return true
	}
}

// OrPred returns a predicate which is true if any of preds is true.
func OrPred(preds ...func(rune) bool) func(rune) bool {
	return func(r rune) bool {
		for _, pred := range preds {
			if pred(r) {
				return true
			}
		}
		return false
	}
}

// NotPred negates a predicate.
func NotPred(pred func(rune) bool) func(rune) bool {
	return func(r rune) bool {
		return !pred(r)
	}
}

// --- Character class parsers -----------------------------------------------

// Digit parses a single digit.
func Digit() *Parser[rune] { return satisfy(IsDigit, "digit") }

// Alpha parses a single letter.
func Alpha() *Parser[rune] { return satisfy(IsAlpha, "letter") }

// AlphaNum parses a single letter or digit.
func AlphaNum() *Parser[rune] { return satisfy(IsAlphaNum, "letter or digit") }

// HexDigit parses a single hexadecimal digit.
func HexDigit() *Parser[rune] { return satisfy(IsHexDigit, "hexadecimal digit") }

// OctDigit parses a single octal digit.
func OctDigit() *Parser[rune] { return satisfy(IsOctDigit, "octal digit") }

// BinDigit parses a single binary digit.
func BinDigit() *Parser[rune] { return satisfy(IsBinDigit, "binary digit") }

// Upper parses a single upper case letter.
func Upper() *Parser[rune] { return satisfy(IsUpper, "uppercase letter") }

// Lower parses a single lower case letter.
func Lower() *Parser[rune] { return satisfy(IsLower, "lowercase letter") }

// Control parses a single control character.
func Control() *Parser[rune] { return satisfy(IsControl, "control character") }

// Printable parses a single printable character.
func Printable() *Parser[rune] { return satisfy(IsPrintable, "printable character") }

// Punctuation parses a single punctuation character.
func Punctuation() *Parser[rune] { return satisfy(IsPunctuation, "punctuation") }

// Space parses a single whitespace character.
func Space() *Parser[rune] { return satisfy(IsSpace, "whitespace") }

// HSpace parses a single space or tab.
func HSpace() *Parser[rune] { return satisfy(IsHSpace, "horizontal whitespace") }

// --- Whitespace and line ends ----------------------------------------------

// Newline parses a line feed.
func Newline() *Parser[string] {
	return AsString(Char('\n'))
}

// CRLF parses a carriage return followed by a line feed.
func CRLF() *Parser[string] {
	return String("\r\n").Label("<carriage return><line feed>")
}

// EOL parses a line end, either a line feed or CRLF.
func EOL() *Parser[string] {
	return Newline().Or(CRLF()).Label("end of line")
}

// SkipSpace skips zero or more whitespace characters.
func SkipSpace() *Parser[Unit] {
	return SkipWhile(IsSpace).Label("whitespace")
}

// SkipHSpace skips zero or more spaces and tabs.
func SkipHSpace() *Parser[Unit] {
	return SkipWhile(IsHSpace).Label("horizontal whitespace")
}

// Token returns a parser for p, skipping any whitespace following it.
func Token[T any](p *Parser[T]) *Parser[T] {
	return KeepFirst(p, SkipSpace())
}
