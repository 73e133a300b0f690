package editor

import "strings"

// IndentationGuide marks each indent stop of every indented line so nesting
// depth stays visible.
type IndentationGuide struct {
	ExtensionBase
	editor *Editor
}

func (g *IndentationGuide) Name() string { return "indentation_guides" }

func (g *IndentationGuide) Initialize(e *Editor) { g.editor = e }

func (g *IndentationGuide) Overlays() []Overlay {
	e := g.editor
	width := e.indenter.Width()
	if width == 0 {
		return nil
	}
	color := e.config.Scheme("editor.indent.guide")
	var overlays []Overlay
	for line := 0; line < e.doc.LineCount(); line++ {
		text := e.doc.Line(line)
		indent := len(text) - len(strings.TrimLeft(text, " \t"))
		for col := width; col <= indent; col += width {
			overlays = append(overlays, Overlay{
				Kind:   OverlayIndentGuide,
				Line:   line,
				Column: col,
				Color:  color,
			})
		}
	}
	return overlays
}
