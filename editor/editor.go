package editor

import (
	"strings"
	"sync/atomic"

	"github.com/alecthomas/chroma/v2"
)

// Editor is one interactive view of an editable file: cursor and selection
// management, highlight layering, smart editing rules and gutter state. A
// file split into several views gets one Editor per view, all sharing the
// same Document.
type Editor struct {
	editable  EditableFile
	doc       *Document
	cursor    *Cursor
	config    *Config
	surface   Surface
	languages *Languages

	indenter   *Indenter
	selections *ExtraSelectionManager
	syntax     *Syntax
	side       *SideArea
	sched      *Scheduler

	extensions map[string]Extension
	extOrder   []Extension

	// Token cache for position classification, keyed by document version.
	tokens        []chroma.Token
	tokensVersion uint64

	lastLine     int
	readOnly     bool
	runCursorGen atomic.Uint64

	// Host callbacks. All optional.
	CursorPositionChanged func(line, col int)
	CurrentLineChanged    func(line int)
	GoToDefRequested      func(word string)
}

// Option tweaks editor construction.
type Option func(*Editor)

// WithLanguages supplies a custom language table.
func WithLanguages(languages *Languages) Option {
	return func(e *Editor) { e.languages = languages }
}

// WithDispatch routes timer callbacks through fn, letting a GUI host post
// them back onto its event-dispatch thread.
func WithDispatch(fn func(func())) Option {
	return func(e *Editor) { e.sched = NewScheduler(fn) }
}

// New creates an editor view over editable, pushing its visual state to
// surface. A nil config uses DefaultConfig; a nil surface renders headlessly.
func New(editable EditableFile, config *Config, surface Surface, opts ...Option) (*Editor, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if surface == nil {
		surface = NopSurface{}
	}
	e := &Editor{
		editable:   editable,
		doc:        editable.Document(),
		config:     config,
		surface:    surface,
		extensions: make(map[string]Extension),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.languages == nil {
		e.languages = DefaultLanguages()
	}
	if e.sched == nil {
		e.sched = NewScheduler(nil)
	}
	e.cursor = NewCursor(e.doc)
	e.selections = NewExtraSelectionManager(surface)
	e.side = NewSideArea(surface)
	e.indenter = NewIndenter(editable.Language(), e.languages)
	e.indenter.Detect(e.doc.Text())
	e.syntax = NewSyntax(editable.Language(), config.ColorScheme)

	stock := []Extension{
		&SymbolHighlighter{},
		&CurrentLineHighlighter{},
		&RightMargin{},
		&IndentationGuide{},
		&AutocompleteBraces{},
		&AutocompleteQuotes{},
	}
	for _, ext := range stock {
		if _, err := e.RegisterExtension(ext); err != nil {
			return nil, err
		}
	}
	e.SetBraceMatching(config.BraceMatching)
	e.SetHighlightCurrentLine(config.HighlightCurrentLine)
	e.SetShowMarginLine(config.ShowMarginLine)
	e.SetShowIndentationGuides(config.ShowIndentationGuides)
	e.SetAutocompleteBraces(config.AutocompleteBraces)
	e.SetAutocompleteQuotes(config.AutocompleteQuotes)
	e.SetShowLineNumbers(config.ShowLineNumbers)
	e.SetShowTextChanges(config.ShowTextChanges)

	e.doc.Watch(func(c Change) {
		if e.config.ShowTextChanges {
			e.side.RecordChange(e.doc, c)
		}
	})
	e.side.RefreshFolds(e.doc.Text(), editable.Language())
	return e, nil
}

// Editable returns the file this view edits.
func (e *Editor) Editable() EditableFile {
	return e.editable
}

// Document returns the shared document model.
func (e *Editor) Document() *Document {
	return e.doc
}

// Cursor returns the view's cursor.
func (e *Editor) Cursor() *Cursor {
	return e.cursor
}

// Config returns the live configuration.
func (e *Editor) Config() *Config {
	return e.config
}

// ExtraSelections exposes the highlight layering manager.
func (e *Editor) ExtraSelections() *ExtraSelectionManager {
	return e.selections
}

// SideArea exposes the gutter state.
func (e *Editor) SideArea() *SideArea {
	return e.side
}

// Indenter exposes the indentation settings of this view.
func (e *Editor) Indenter() *Indenter {
	return e.indenter
}

// SetReadOnly blocks editing key events.
func (e *Editor) SetReadOnly(v bool) {
	e.readOnly = v
}

// Close releases the view's timers. The document stays with the file.
func (e *Editor) Close() {
	e.sched.Stop()
}

// cursorMoved runs the bookkeeping after every cursor change: callbacks,
// extension notification, and the debounced occurrence highlight.
func (e *Editor) cursorMoved() {
	line, col := e.cursor.Line(), e.cursor.Column()
	if e.CursorPositionChanged != nil {
		e.CursorPositionChanged(line, col)
	}
	if line != e.lastLine {
		e.lastLine = line
		if e.CurrentLineChanged != nil {
			e.CurrentLineChanged(line)
		}
	}
	e.dispatchCursorMoved()
	e.sched.Debounce("occurrences", e.config.OccurrenceDelay, e.HighlightSelectedWord)
}

// MoveCursor places the cursor at a rune offset and runs the post-move
// bookkeeping.
func (e *Editor) MoveCursor(offset int, extend bool) {
	e.cursor.MoveTo(offset, extend)
	e.cursorMoved()
}

// tokensForText returns cached tokens for the current document content.
func (e *Editor) tokensForText() []chroma.Token {
	if e.tokens == nil || e.tokensVersion != e.doc.Version() {
		e.tokens = e.syntax.Tokens(e.doc.Text())
		e.tokensVersion = e.doc.Version()
	}
	return e.tokens
}

// InsideStringOrComment reports whether the rune offset lies inside a
// comment or string token of the file's language.
func (e *Editor) InsideStringOrComment(offset int) bool {
	pos := 0
	for _, tok := range e.tokensForText() {
		n := len([]rune(tok.Value))
		if offset >= pos && offset < pos+n {
			return matchesCategory(tok.Type, "comment") ||
				matchesCategory(tok.Type, "string")
		}
		pos += n
	}
	return false
}

// WordUnderCursor returns the identifier under the cursor and its span.
func (e *Editor) WordUnderCursor() (string, Span, bool) {
	return WordAt(e.doc.Text(), e.cursor.Position())
}

// HandleKey processes one key press: extensions first, then the editor's
// smart editing rules, then plain insertion. Reports whether the event was
// consumed.
func (e *Editor) HandleKey(ev *KeyEvent) bool {
	if e.readOnly {
		return false
	}
	if e.config.HideMouseCursor {
		e.surface.SetPointerShape(PointerHidden)
	}
	e.dispatchKeyPressed(ev)
	if !ev.Accepted() {
		switch ev.Key {
		case KeyEnter:
			e.insertParagraphSeparator()
			ev.Accept()
		case KeyHome:
			e.handleHome(ev.Mod&ModShift != 0)
			ev.Accept()
		case KeyTab:
			e.handleTab()
			ev.Accept()
		case KeyBacktab:
			start, end := e.cursor.SelectionRange()
			e.indenter.UnindentLines(e.doc, e.doc.LineAt(start), e.doc.LineAt(end))
			ev.Accept()
		case KeyBackspace:
			e.handleBackspace()
			ev.Accept()
		case KeyDelete:
			if !e.cursor.DeleteSelection() && e.cursor.Position() < e.doc.Len() {
				e.doc.Remove(e.cursor.Position(), 1)
			}
			ev.Accept()
		case KeyRune:
			if ev.Rune != 0 {
				e.cursor.InsertText(string(ev.Rune))
				ev.Accept()
			}
		}
	}
	e.dispatchPostKeyPressed(ev)
	if ev.Accepted() {
		e.cursorMoved()
	}
	return ev.Accepted()
}

// KeyReleased handles key releases; releasing Ctrl drops the link overlay.
func (e *Editor) KeyReleased(ev *KeyEvent) {
	if ev.Mod&ModCtrl == 0 {
		e.ClearLink()
	}
}

// insertParagraphSeparator opens a new line with automatic indentation.
func (e *Editor) insertParagraphSeparator() {
	before := e.cursor.TextBefore()
	e.doc.BeginEdit()
	e.cursor.InsertText("\n" + e.indenter.AutoIndent(before))
	e.doc.EndEdit()
}

// handleTab indents the selection as a block, or inserts one unit.
func (e *Editor) handleTab() {
	if e.cursor.HasSelection() {
		start, end := e.cursor.SelectionRange()
		e.indenter.IndentLines(e.doc, e.doc.LineAt(start), e.doc.LineAt(end))
		return
	}
	e.cursor.InsertText(e.indenter.Unit())
}

// handleBackspace applies the smart indentation rule before falling back to
// a single-character delete.
func (e *Editor) handleBackspace() {
	if e.cursor.DeleteSelection() {
		return
	}
	pos := e.cursor.Position()
	if pos == 0 {
		return
	}
	remove := SmartBackspaceWidth(e.cursor.LineText(), e.cursor.Column(), e.indenter.Unit())
	if remove == 0 {
		remove = 1
	}
	e.doc.Remove(pos-remove, remove)
	e.cursor.MoveTo(pos-remove, false)
}

// handleHome applies the three-state Home navigation, extending the
// selection when shift is held.
func (e *Editor) handleHome(extend bool) {
	col := HomeColumn(e.cursor.LineText(), e.cursor.Column())
	e.cursor.MoveToLineColumn(e.cursor.Line(), col, extend)
}

// HighlightSelectedWord recomputes the occurrence highlight for the word
// under the cursor. An active find session suppresses it so the two
// overlays never stack.
func (e *Editor) HighlightSelectedWord() {
	e.selections.Remove(CategoryOccurrences)
	if len(e.selections.Get(CategoryFind)) > 0 {
		return
	}
	word, _, ok := e.WordUnderCursor()
	if !ok || word == "" {
		return
	}
	_, spans := FindWithIndex(e.doc.Text(), word, e.cursor.Position(), false, true)
	// Cap rendered highlights so huge files stay responsive; the find
	// widget still reports the true count.
	if len(spans) > occurrenceRenderCap {
		spans = spans[:occurrenceRenderCap]
	}
	color := e.config.Scheme("editor.occurrence")
	sels := make([]ExtraSelection, 0, len(spans))
	for _, span := range spans {
		sel := NewSelection(span.Start, span.End)
		sel.Background = color
		sel.Priority = PriorityOccurrence
		sels = append(sels, sel)
	}
	e.selections.Add(CategoryOccurrences, sels...)
}

// occurrenceRenderCap bounds how many occurrence highlights are pushed to
// the surface at once.
const occurrenceRenderCap = 500

// HighlightFoundResults highlights every match of a find/replace query and
// returns the cursor's position among them plus the total count. With
// highlight false only the counts are computed.
func (e *Editor) HighlightFoundResults(expr string, caseSensitive, wholeWord, highlight bool) (int, int) {
	index, spans := FindWithIndex(e.doc.Text(), expr, e.cursor.Position(), caseSensitive, wholeWord)
	if expr == "" {
		e.selections.Remove(CategoryFind)
		return 0, 0
	}
	if highlight {
		background := e.config.Scheme("editor.search.result")
		foreground := InvertedColor(background)
		sels := make([]ExtraSelection, 0, len(spans))
		for _, span := range spans {
			sel := NewSelection(span.Start, span.End)
			sel.Background = background
			sel.Foreground = foreground
			sel.Priority = PriorityFind
			sels = append(sels, sel)
		}
		e.selections.Add(CategoryFind, sels...)
	}
	return index, len(spans)
}

// ClearFindResults ends a find session, dropping its highlights.
func (e *Editor) ClearFindResults() {
	e.selections.Remove(CategoryFind)
}

// ReplaceNext substitutes the first match of expr at or after the cursor,
// wrapping to the top when none follows, and moves the cursor past the
// replacement. Reports whether a replacement happened.
func (e *Editor) ReplaceNext(expr, replacement string, caseSensitive, wholeWord bool) bool {
	spans := FindAll(e.doc.Text(), expr, caseSensitive, wholeWord)
	if len(spans) == 0 {
		return false
	}
	target := spans[0]
	for _, s := range spans {
		if s.Start >= e.cursor.Position() {
			target = s
			break
		}
	}
	e.doc.Replace(target.Start, target.End-target.Start, replacement)
	e.cursor.MoveTo(target.Start+len([]rune(replacement)), false)
	e.cursorMoved()
	return true
}

// ReplaceAll substitutes every match of expr with replacement in one undo
// transaction and returns the number of replacements.
func (e *Editor) ReplaceAll(expr, replacement string, caseSensitive, wholeWord bool) int {
	spans := FindAll(e.doc.Text(), expr, caseSensitive, wholeWord)
	if len(spans) == 0 {
		return 0
	}
	e.doc.BeginEdit()
	for i := len(spans) - 1; i >= 0; i-- {
		e.doc.Replace(spans[i].Start, spans[i].End-spans[i].Start, replacement)
	}
	e.doc.EndEdit()
	e.cursorMoved()
	return len(spans)
}

// ShowRunCursor flashes the current selection, or the current line, to mark
// the code just sent to an interpreter. The flash clears itself after the
// configured delay; a newer flash survives the older one's removal.
func (e *Editor) ShowRunCursor() {
	var start, end int
	if e.cursor.HasSelection() {
		start, end = e.cursor.SelectionRange()
	} else {
		line := e.cursor.Line()
		start, end = e.doc.LineStart(line), e.doc.LineEnd(line)
	}
	sel := NewSelection(start, end)
	sel.Background = e.config.Scheme("editor.run.cursor")
	sel.Priority = PriorityRunCursor
	e.selections.Add(CategoryRunCursor, sel)
	e.cursor.ClearSelection()

	gen := e.runCursorGen.Add(1)
	e.sched.Once(e.config.RunCursorDelay, func() {
		// Idempotent removal: only the flash that scheduled this cleanup
		// may clear the category.
		if e.runCursorGen.Load() == gen {
			e.selections.Remove(CategoryRunCursor)
		}
	})
}

// HandleMouseMove reacts to pointer motion over (line, col): with Ctrl held
// it underlines the word under the pointer as a navigable link; otherwise
// any link overlay clears. The returned string is the checker message under
// the pointer, for the host to show as a tooltip ("" for none).
func (e *Editor) HandleMouseMove(line, col int, mod Modifier) string {
	offset := e.doc.LineStart(line) + col
	if mod&ModCtrl != 0 {
		word, span, ok := WordAt(e.doc.Text(), offset)
		if ok && word != "" && !e.syntax.IsKeyword(e.doc.Text(), offset) &&
			!e.InsideStringOrComment(offset) {
			color := e.config.Scheme("editor.link.navigate")
			sel := NewSelection(span.Start, span.End)
			sel.Foreground = color
			sel.Underline = color
			sel.UnderStyle = UnderlineSolid
			sel.Priority = PriorityLink
			e.selections.Add(CategoryLink, sel)
			e.surface.SetPointerShape(PointerHand)
		}
	} else {
		e.ClearLink()
	}
	return e.CheckerMessageAt(line, col)
}

// HandleMouseRelease fires go-to-definition on Ctrl+click over a word
// outside strings and comments.
func (e *Editor) HandleMouseRelease(line, col int, mod Modifier) {
	if mod&ModCtrl == 0 {
		return
	}
	offset := e.doc.LineStart(line) + col
	word, _, ok := WordAt(e.doc.Text(), offset)
	if ok && word != "" && !e.InsideStringOrComment(offset) && e.GoToDefRequested != nil {
		e.GoToDefRequested(word)
	}
}

// ClearLink removes the go-to-definition link overlay and restores the
// text pointer.
func (e *Editor) ClearLink() {
	e.selections.Remove(CategoryLink)
	e.surface.SetPointerShape(PointerText)
}

// Link snapshots this view's state into a clone sharing the same document:
// cursor position plus every extra-selection category. A one-time copy, not
// an ongoing relationship.
func (e *Editor) Link(clone *Editor) {
	clone.cursor.MoveTo(e.cursor.Position(), false)
	for _, group := range e.selections.Items() {
		clone.selections.Add(group.Category, group.Selections...)
	}
	clone.cursorMoved()
}

// Undo reverts the last edit transaction and reclamps the cursor.
func (e *Editor) Undo() bool {
	ok := e.doc.Undo()
	if ok {
		e.cursor.MoveTo(e.cursor.Position(), e.cursor.HasSelection())
		e.cursorMoved()
	}
	return ok
}

// Redo re-applies the last undone transaction.
func (e *Editor) Redo() bool {
	ok := e.doc.Redo()
	if ok {
		e.cursor.MoveTo(e.cursor.Position(), e.cursor.HasSelection())
		e.cursorMoved()
	}
	return ok
}

// LineIndentColumn returns the first non-whitespace column of a line.
func (e *Editor) LineIndentColumn(line int) int {
	text := e.doc.Line(line)
	return len(text) - len(strings.TrimLeft(text, " \t"))
}
