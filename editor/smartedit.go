package editor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
)

// SmartBackspaceWidth decides how many runes a backspace should remove when
// the cursor sits at the given column of lineText. It returns a value larger
// than zero only when the cursor is at the first non-whitespace column and
// everything before it is indentation ending with the configured unit: in
// that case one indent unit is removed, or the remainder when the leading
// whitespace is not a whole multiple of the unit. Zero means the caller
// should fall back to a plain single-character delete.
func SmartBackspaceWidth(lineText string, column int, unit string) int {
	if unit == "" || column == 0 {
		return 0
	}
	runes := []rune(lineText)
	if column > len(runes) {
		return 0
	}
	before := string(runes[:column])
	indentLen := len(runes) - len([]rune(strings.TrimLeft(lineText, " \t")))
	if !strings.HasSuffix(before, unit) || indentLen != column {
		return 0
	}
	remove := len([]rune(before)) % len([]rune(unit))
	if remove == 0 {
		remove = len([]rune(unit))
	}
	return remove
}

// HomeColumn computes the target column for a Home key press at the given
// column. First press from inside the text goes to the first non-whitespace
// column; pressing there goes to column 0; pressing at column 0 returns to
// the first non-whitespace column. A column strictly inside the indentation
// stays where it is.
func HomeColumn(lineText string, column int) int {
	indent := len([]rune(lineText)) - len([]rune(strings.TrimLeft(lineText, " \t")))
	switch {
	case column == indent:
		return 0
	case column == 0:
		return indent
	case column > indent:
		return indent
	}
	return column
}

// isWordRune reports whether r belongs to an identifier-like word.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// WordAt returns the identifier-like word containing the given rune offset
// of text, along with its span. Segmentation follows Unicode word
// boundaries; offsets falling on whitespace or punctuation yield ("",
// zero-span, false).
func WordAt(text string, offset int) (string, Span, bool) {
	if offset < 0 {
		return "", Span{}, false
	}
	tokens := words.FromString(text)
	runeOff := 0
	for tokens.Next() {
		tok := tokens.Value()
		n := utf8.RuneCountInString(tok)
		if offset >= runeOff && offset < runeOff+n {
			r, _ := utf8.DecodeRuneInString(tok)
			if !isWordRune(r) {
				return "", Span{}, false
			}
			return tok, Span{Start: runeOff, End: runeOff + n}, true
		}
		runeOff += n
	}
	// Offset at end of text: the cursor sits just past the last rune, still
	// "on" a trailing word for selection purposes.
	if offset == runeOff && runeOff > 0 {
		return WordAt(text, offset-1)
	}
	return "", Span{}, false
}
