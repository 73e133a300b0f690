package editor

// Cursor is an editing position with an optional selection over a Document.
// Position and Anchor are rune offsets; when they differ a selection is
// active, with Anchor marking where the selection started.
type Cursor struct {
	doc      *Document
	position int
	anchor   int
}

// NewCursor creates a cursor at offset 0 of doc.
func NewCursor(doc *Document) *Cursor {
	return &Cursor{doc: doc}
}

// Position returns the current rune offset.
func (c *Cursor) Position() int {
	return c.position
}

// Anchor returns the selection anchor offset.
func (c *Cursor) Anchor() int {
	return c.anchor
}

// MoveTo places the cursor at offset. When extend is true the anchor stays
// put and the selection grows; otherwise the selection collapses.
func (c *Cursor) MoveTo(offset int, extend bool) {
	c.position = c.doc.clamp(offset)
	if !extend {
		c.anchor = c.position
	}
}

// HasSelection reports whether a non-empty selection is active.
func (c *Cursor) HasSelection() bool {
	return c.position != c.anchor
}

// SelectionRange returns the selection bounds in ascending order.
func (c *Cursor) SelectionRange() (start, end int) {
	if c.anchor <= c.position {
		return c.anchor, c.position
	}
	return c.position, c.anchor
}

// SelectedText returns the selected substring, or "" without a selection.
func (c *Cursor) SelectedText() string {
	start, end := c.SelectionRange()
	return c.doc.TextRange(start, end)
}

// ClearSelection collapses the selection onto the current position.
func (c *Cursor) ClearSelection() {
	c.anchor = c.position
}

// Line returns the 0-based line the cursor is on.
func (c *Cursor) Line() int {
	return c.doc.LineAt(c.position)
}

// Column returns the rune column within the current line.
func (c *Cursor) Column() int {
	return c.position - c.doc.LineStart(c.Line())
}

// LineText returns the text of the cursor's line.
func (c *Cursor) LineText() string {
	return c.doc.Line(c.Line())
}

// TextBefore returns the text of the current line up to the cursor.
func (c *Cursor) TextBefore() string {
	return c.doc.TextRange(c.doc.LineStart(c.Line()), c.position)
}

// AtLineStart reports whether the cursor sits at column 0.
func (c *Cursor) AtLineStart() bool {
	return c.Column() == 0
}

// MoveToLineColumn places the cursor at (line, column), clamping the column
// to the line length.
func (c *Cursor) MoveToLineColumn(line, column int, extend bool) {
	start := c.doc.LineStart(line)
	end := c.doc.LineEnd(line)
	offset := start + column
	if offset > end {
		offset = end
	}
	c.MoveTo(offset, extend)
}

// DeleteSelection removes the selected text and collapses the cursor to the
// selection start. Reports whether anything was deleted.
func (c *Cursor) DeleteSelection() bool {
	if !c.HasSelection() {
		return false
	}
	start, end := c.SelectionRange()
	c.doc.Remove(start, end-start)
	c.MoveTo(start, false)
	return true
}

// InsertText inserts text at the cursor, replacing any active selection,
// and leaves the cursor after the insertion.
func (c *Cursor) InsertText(text string) {
	if c.HasSelection() {
		start, end := c.SelectionRange()
		c.doc.Replace(start, end-start, text)
		c.MoveTo(start+len([]rune(text)), false)
		return
	}
	c.doc.Insert(c.position, text)
	c.MoveTo(c.position+len([]rune(text)), false)
}
