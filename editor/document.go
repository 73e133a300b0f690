package editor

import "strings"

// Change describes a single applied edit.
type Change struct {
	Offset   int // rune offset of the edit
	Removed  string
	Inserted string
}

// editOp records a single edit for undo/redo support.
type editOp struct {
	offset  int
	oldText string
	newText string
}

// editGroup is a sequence of ops undone and redone as one unit.
type editGroup []editOp

// Document is an in-memory rich-text model addressed by rune offsets.
// It supplies line iteration, edits with undo/redo, and grouped edit
// transactions so a multi-line operation reverts atomically. A Document can
// be shared by several editor views of the same file.
type Document struct {
	content   []rune
	savedText string
	version   uint64

	undoStack []editGroup
	redoStack []editGroup

	// Open transaction, nil when no transaction is active.
	pending editGroup
	depth   int

	watchers []func(Change)
}

// NewDocument creates a document holding the given text.
func NewDocument(text string) *Document {
	return &Document{content: []rune(text), savedText: text}
}

// Text returns the full document content.
func (d *Document) Text() string {
	return string(d.content)
}

// SetText replaces the content and resets the undo history.
// Used when (re)loading a file, not for user edits.
func (d *Document) SetText(text string) {
	old := string(d.content)
	d.content = []rune(text)
	d.savedText = text
	d.undoStack = nil
	d.redoStack = nil
	d.pending = nil
	d.depth = 0
	d.version++
	d.notify(Change{Offset: 0, Removed: old, Inserted: text})
}

// Len returns the content length in runes.
func (d *Document) Len() int {
	return len(d.content)
}

// Version is incremented on every content mutation.
func (d *Document) Version() uint64 {
	return d.version
}

// Modified reports whether the content differs from the last saved text.
func (d *Document) Modified() bool {
	return string(d.content) != d.savedText
}

// MarkSaved records the current content as the saved state.
func (d *Document) MarkSaved() {
	d.savedText = string(d.content)
}

// Watch registers fn to be called after every applied edit.
func (d *Document) Watch(fn func(Change)) {
	d.watchers = append(d.watchers, fn)
}

func (d *Document) notify(c Change) {
	for _, fn := range d.watchers {
		fn(c)
	}
}

// clamp bounds offset to [0, len].
func (d *Document) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(d.content) {
		return len(d.content)
	}
	return offset
}

// Insert inserts text at the given rune offset.
func (d *Document) Insert(offset int, text string) {
	if text == "" {
		return
	}
	offset = d.clamp(offset)
	d.apply(editOp{offset: offset, newText: text})
}

// Remove deletes length runes starting at offset.
func (d *Document) Remove(offset, length int) {
	offset = d.clamp(offset)
	end := d.clamp(offset + length)
	if end <= offset {
		return
	}
	d.apply(editOp{offset: offset, oldText: string(d.content[offset:end])})
}

// Replace substitutes length runes at offset with text.
func (d *Document) Replace(offset, length int, text string) {
	offset = d.clamp(offset)
	end := d.clamp(offset + length)
	if end == offset && text == "" {
		return
	}
	d.apply(editOp{offset: offset, oldText: string(d.content[offset:end]), newText: text})
}

// apply performs op, records it for undo and drops the redo history.
func (d *Document) apply(op editOp) {
	d.applyOp(op)
	d.redoStack = nil
	if d.depth > 0 {
		d.pending = append(d.pending, op)
		return
	}
	d.undoStack = append(d.undoStack, editGroup{op})
}

// applyOp mutates the content without touching the history.
func (d *Document) applyOp(op editOp) {
	oldLen := len([]rune(op.oldText))
	rest := append([]rune(op.newText), d.content[op.offset+oldLen:]...)
	d.content = append(d.content[:op.offset:op.offset], rest...)
	d.version++
	d.notify(Change{Offset: op.offset, Removed: op.oldText, Inserted: op.newText})
}

// BeginEdit opens an edit transaction. Transactions nest; only the
// outermost EndEdit closes the group.
func (d *Document) BeginEdit() {
	d.depth++
}

// EndEdit closes the current transaction level. When the outermost level
// closes, all ops recorded since BeginEdit become one undo unit.
func (d *Document) EndEdit() {
	if d.depth == 0 {
		return
	}
	d.depth--
	if d.depth == 0 && len(d.pending) > 0 {
		d.undoStack = append(d.undoStack, d.pending)
		d.pending = nil
	}
}

// Undo reverts the most recent edit group. Reports whether anything changed.
func (d *Document) Undo() bool {
	if d.depth > 0 || len(d.undoStack) == 0 {
		return false
	}
	group := d.undoStack[len(d.undoStack)-1]
	d.undoStack = d.undoStack[:len(d.undoStack)-1]
	for i := len(group) - 1; i >= 0; i-- {
		op := group[i]
		d.applyOp(editOp{offset: op.offset, oldText: op.newText, newText: op.oldText})
	}
	d.redoStack = append(d.redoStack, group)
	return true
}

// Redo re-applies the most recently undone edit group.
func (d *Document) Redo() bool {
	if d.depth > 0 || len(d.redoStack) == 0 {
		return false
	}
	group := d.redoStack[len(d.redoStack)-1]
	d.redoStack = d.redoStack[:len(d.redoStack)-1]
	for _, op := range group {
		d.applyOp(op)
	}
	d.undoStack = append(d.undoStack, group)
	return true
}

// LineCount returns the number of lines. An empty document has 1 line.
func (d *Document) LineCount() int {
	n := 1
	for _, r := range d.content {
		if r == '\n' {
			n++
		}
	}
	return n
}

// LineStart returns the rune offset of the first character of line
// (0-based). Out-of-range lines clamp to the nearest valid offset.
func (d *Document) LineStart(line int) int {
	if line <= 0 {
		return 0
	}
	for i, r := range d.content {
		if r == '\n' {
			line--
			if line == 0 {
				return i + 1
			}
		}
	}
	return len(d.content)
}

// LineEnd returns the rune offset one past the last character of line,
// excluding the newline.
func (d *Document) LineEnd(line int) int {
	start := d.LineStart(line)
	for i := start; i < len(d.content); i++ {
		if d.content[i] == '\n' {
			return i
		}
	}
	return len(d.content)
}

// Line returns the text of the given 0-based line without its newline.
func (d *Document) Line(line int) string {
	return string(d.content[d.LineStart(line):d.LineEnd(line)])
}

// LineAt returns the 0-based line containing the given rune offset.
func (d *Document) LineAt(offset int) int {
	offset = d.clamp(offset)
	line := 0
	for i := 0; i < offset; i++ {
		if d.content[i] == '\n' {
			line++
		}
	}
	return line
}

// LineIndent returns the number of leading whitespace runes on a line.
func (d *Document) LineIndent(line int) int {
	text := d.Line(line)
	return len(text) - len(strings.TrimLeft(text, " \t"))
}

// TextRange returns the content between two rune offsets.
func (d *Document) TextRange(start, end int) string {
	start = d.clamp(start)
	end = d.clamp(end)
	if end < start {
		start, end = end, start
	}
	return string(d.content[start:end])
}
