package editor

import "strings"

// commentScan is the first pass over a block: shared minimum indent and
// whether the block should be commented or uncommented.
type commentScan struct {
	minIndent int
	comment   bool // true = comment, false = uncomment
	markerLen int  // runes to remove per line when uncommenting
	nonBlank  int
	commented int
}

// scanCommentBlock inspects the non-blank lines of a block. A line counts as
// commented when its text after leading whitespace starts with the marker,
// either exactly or with the marker's trailing space stripped. Any mix of
// commented and uncommented lines resolves to commenting; only a fully
// commented block uncomments.
func scanCommentBlock(lines []string, marker string) commentScan {
	scan := commentScan{minIndent: -1, comment: true, markerLen: len([]rune(marker))}
	stripped := strings.TrimRight(marker, " ")
	for _, line := range lines {
		text := strings.TrimLeft(line, " \t")
		if text == "" {
			continue
		}
		scan.nonBlank++
		indent := len([]rune(line)) - len([]rune(text))
		if scan.minIndent < 0 || indent < scan.minIndent {
			scan.minIndent = indent
		}
		switch {
		case strings.HasPrefix(text, marker):
			scan.commented++
			scan.comment = false
		case strings.HasPrefix(text, stripped):
			// Trailing-space variant: remove one rune less.
			scan.commented++
			scan.comment = false
			scan.markerLen = len([]rune(stripped))
		default:
			scan.comment = true
		}
	}
	if scan.commented > 0 && scan.commented != scan.nonBlank {
		scan.comment = true
	}
	if scan.minIndent < 0 {
		scan.minIndent = 0
	}
	return scan
}

// ToggleCommentBlock comments or uncomments a block of lines with the given
// line-comment marker and returns the new lines plus whether the block was
// commented. Commenting inserts the marker after the shared minimum indent
// of every non-blank line; uncommenting removes the marker from that same
// column. Blank lines pass through untouched.
func ToggleCommentBlock(lines []string, marker string) ([]string, bool) {
	scan := scanCommentBlock(lines, marker)
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimLeft(line, " \t") == "" {
			out[i] = line
			continue
		}
		runes := []rune(line)
		col := scan.minIndent
		if scan.comment {
			out[i] = string(runes[:col]) + marker + string(runes[col:])
		} else {
			end := col + scan.markerLen
			if end > len(runes) {
				end = len(runes)
			}
			out[i] = string(runes[:col]) + string(runes[end:])
		}
	}
	return out, scan.comment
}

// ToggleComment comments or uncomments the lines spanned by the current
// selection, or the current line without one, using the language's
// configured line-comment marker. The whole edit is one undo transaction.
// Without a selection the cursor advances one line afterwards.
func (e *Editor) ToggleComment() {
	marker := e.languages.Marker(e.editable.Language())
	if marker == "" {
		return
	}
	hadSelection := e.cursor.HasSelection()
	start, end := e.cursor.SelectionRange()
	firstLine := e.doc.LineAt(start)
	lastLine := e.doc.LineAt(end)

	lines := make([]string, 0, lastLine-firstLine+1)
	for i := firstLine; i <= lastLine; i++ {
		lines = append(lines, e.doc.Line(i))
	}
	toggled, _ := ToggleCommentBlock(lines, marker)

	e.doc.BeginEdit()
	for i, line := range toggled {
		if line == lines[i] {
			continue
		}
		lineNo := firstLine + i
		e.doc.Replace(e.doc.LineStart(lineNo),
			e.doc.LineEnd(lineNo)-e.doc.LineStart(lineNo), line)
	}
	e.doc.EndEdit()

	if !hadSelection {
		line := e.cursor.Line()
		if line+1 < e.doc.LineCount() {
			e.cursor.MoveToLineColumn(line+1, e.cursor.Column(), false)
		}
	}
	e.cursorMoved()
}
