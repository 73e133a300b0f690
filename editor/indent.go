package editor

import "strings"

// Indenter owns the indent unit of one editor view and the indentation
// rules applied on paragraph-separator and Tab key events.
type Indenter struct {
	unit string
	lang string
}

// NewIndenter creates an indenter for a language using its configured unit.
func NewIndenter(language string, languages *Languages) *Indenter {
	if languages == nil {
		languages = DefaultLanguages()
	}
	return &Indenter{unit: languages.IndentUnit(language), lang: language}
}

// Unit returns the indent unit string (spaces or a tab).
func (in *Indenter) Unit() string {
	return in.unit
}

// SetUnit replaces the indent unit. Empty units are ignored.
func (in *Indenter) SetUnit(unit string) {
	if unit != "" {
		in.unit = unit
	}
}

// Width returns the indent unit width in columns, counting a tab as one
// configured stop.
func (in *Indenter) Width() int {
	if in.unit == "\t" {
		return 4
	}
	return len([]rune(in.unit))
}

// Detect inspects existing text and adopts its indentation style: the
// predominant of tabs versus spaces, with the smallest leading space run as
// the unit width. Text without indentation keeps the current unit.
func (in *Indenter) Detect(text string) {
	tabs, spaces, minRun := 0, 0, 0
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		switch line[0] {
		case '\t':
			tabs++
		case ' ':
			spaces++
			run := len(line) - len(strings.TrimLeft(line, " "))
			if run > 0 && (minRun == 0 || run < minRun) {
				minRun = run
			}
		}
	}
	if spaces > tabs && minRun > 0 {
		in.unit = strings.Repeat(" ", minRun)
	} else if tabs > spaces {
		in.unit = "\t"
	}
}

// AutoIndent returns the indentation for a new line opened below line. The
// existing indent is copied and grows one unit after an opening bracket, or
// after a trailing colon in colon-block languages.
func (in *Indenter) AutoIndent(line string) string {
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	trimmed := strings.TrimRight(line, " \t")
	if trimmed == "" {
		return indent
	}
	switch trimmed[len(trimmed)-1] {
	case '{', '(', '[':
		return indent + in.unit
	case ':':
		if in.lang == "python" {
			return indent + in.unit
		}
	}
	return indent
}

// IndentLines prepends one indent unit to each line in [first, last] of doc
// as a single transaction. Blank lines are skipped.
func (in *Indenter) IndentLines(doc *Document, first, last int) {
	doc.BeginEdit()
	for i := first; i <= last && i < doc.LineCount(); i++ {
		if strings.TrimSpace(doc.Line(i)) == "" {
			continue
		}
		doc.Insert(doc.LineStart(i), in.unit)
	}
	doc.EndEdit()
}

// UnindentLines removes up to one indent unit from the start of each line in
// [first, last] of doc as a single transaction.
func (in *Indenter) UnindentLines(doc *Document, first, last int) {
	doc.BeginEdit()
	for i := first; i <= last && i < doc.LineCount(); i++ {
		line := doc.Line(i)
		if strings.HasPrefix(line, in.unit) {
			doc.Remove(doc.LineStart(i), len([]rune(in.unit)))
			continue
		}
		// Partial indent: strip what leading whitespace there is, at most
		// one unit's width.
		ws := len(line) - len(strings.TrimLeft(line, " \t"))
		if ws > in.Width() {
			ws = in.Width()
		}
		if ws > 0 {
			doc.Remove(doc.LineStart(i), ws)
		}
	}
	doc.EndEdit()
}
