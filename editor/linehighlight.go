package editor

// CurrentLineHighlighter keeps a full-width background highlight on the
// cursor's line.
type CurrentLineHighlighter struct {
	ExtensionBase
	editor *Editor
}

func (h *CurrentLineHighlighter) Name() string { return "line_highlighter" }

func (h *CurrentLineHighlighter) Initialize(e *Editor) { h.editor = e }

func (h *CurrentLineHighlighter) CursorMoved() {
	e := h.editor
	line := e.cursor.Line()
	sel := NewSelection(e.doc.LineStart(line), e.doc.LineEnd(line))
	sel.Background = e.config.Scheme("editor.line.highlight")
	sel.FullWidth = true
	sel.Priority = PriorityCurrentLine
	e.selections.Add(CategoryCurrentLine, sel)
}

// SetActive clears the highlight when the extension is switched off.
func (h *CurrentLineHighlighter) SetActive(active bool) {
	h.ExtensionBase.SetActive(active)
	if h.editor == nil {
		return
	}
	if active {
		h.CursorMoved()
	} else {
		h.editor.selections.Remove(CategoryCurrentLine)
	}
}
