package editor

// AutocompleteQuotes doubles a typed quote character and places the cursor
// between the pair. Typing a quote directly before an identical one skips
// over it instead, and no completion happens inside strings or comments.
type AutocompleteQuotes struct {
	ExtensionBase
	editor *Editor
}

func (a *AutocompleteQuotes) Name() string { return "autocomplete_quotes" }

func (a *AutocompleteQuotes) Initialize(e *Editor) { a.editor = e }

func (a *AutocompleteQuotes) KeyPressed(ev *KeyEvent) {
	if ev.Key != KeyRune || (ev.Rune != '"' && ev.Rune != '\'') {
		return
	}
	e := a.editor
	pos := e.cursor.Position()

	// Skip over a matching quote already sitting at the cursor.
	if !e.cursor.HasSelection() && pos < e.doc.Len() &&
		[]rune(e.doc.TextRange(pos, pos+1))[0] == ev.Rune {
		e.cursor.MoveTo(pos+1, false)
		ev.Accept()
		return
	}
	if e.cursor.HasSelection() || e.InsideStringOrComment(pos) {
		return
	}
	e.cursor.InsertText(string(ev.Rune) + string(ev.Rune))
	e.cursor.MoveTo(e.cursor.Position()-1, false)
	ev.Accept()
}
