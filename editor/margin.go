package editor

// RightMargin draws a vertical guide at the configured margin column.
type RightMargin struct {
	ExtensionBase
	editor *Editor
}

func (m *RightMargin) Name() string { return "margin_line" }

func (m *RightMargin) Initialize(e *Editor) { m.editor = e }

func (m *RightMargin) Overlays() []Overlay {
	cfg := m.editor.config
	return []Overlay{{
		Kind:   OverlayMarginLine,
		Column: cfg.MarginLinePosition,
		Color:  cfg.MarginLineColor,
	}}
}
