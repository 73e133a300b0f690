package editor

import "time"

// Config carries the editor's behavior toggles and visual parameters. It is
// passed at construction; later changes go through the typed setters on
// Editor so they take immediate visual effect.
type Config struct {
	FontFamily string
	FontSize   int
	Encoding   string

	IndentWidth int

	BraceMatching         bool
	HighlightCurrentLine  bool
	ShowMarginLine        bool
	MarginLinePosition    int
	MarginLineColor       string
	ShowIndentationGuides bool
	AutocompleteBraces    bool
	AutocompleteQuotes    bool
	ShowLineNumbers       bool
	ShowTextChanges       bool
	HideMouseCursor       bool

	// OccurrenceDelay is the pause after cursor motion before occurrences
	// of the word under the cursor get highlighted.
	OccurrenceDelay time.Duration
	// RunCursorDelay is how long the transient run-cursor flash stays up.
	RunCursorDelay time.Duration

	ColorScheme string
	// SchemeColors overrides individual named scheme colors.
	SchemeColors map[string]string
}

// defaultSchemeColors back the Scheme lookups not overridden by the host.
var defaultSchemeColors = map[string]string{
	"editor.occurrence":     "#3b514b",
	"editor.search.result":  "#6f5a26",
	"editor.link.navigate":  "#4a90d9",
	"editor.line.highlight": "#2c2c34",
	"editor.brace.matched":  "#3d5a78",
	"editor.run.cursor":     "#808080",
	"editor.indent.guide":   "#3a3a42",
}

// DefaultConfig mirrors the stock IDE preferences.
func DefaultConfig() *Config {
	return &Config{
		FontFamily:           "monospace",
		FontSize:             12,
		Encoding:             "utf-8",
		IndentWidth:          4,
		BraceMatching:        true,
		HighlightCurrentLine: true,
		ShowMarginLine:       true,
		MarginLinePosition:   79,
		MarginLineColor:      "#3c3c44",
		AutocompleteBraces:   true,
		AutocompleteQuotes:   true,
		ShowLineNumbers:      true,
		ShowTextChanges:      true,
		OccurrenceDelay:      time.Second,
		RunCursorDelay:       300 * time.Millisecond,
		ColorScheme:          "monokai",
	}
}

// Scheme resolves a named scheme color, preferring host overrides.
func (c *Config) Scheme(name string) string {
	if c.SchemeColors != nil {
		if color, ok := c.SchemeColors[name]; ok {
			return color
		}
	}
	return defaultSchemeColors[name]
}

// Typed setters with immediate effect.

// SetBraceMatching toggles the matched-bracket highlight.
func (e *Editor) SetBraceMatching(v bool) {
	e.config.BraceMatching = v
	e.setExtensionActive("symbol_highlighter", v)
	if !v {
		e.selections.Remove(CategoryBraceMatching)
	}
}

// SetHighlightCurrentLine toggles the current-line background.
func (e *Editor) SetHighlightCurrentLine(v bool) {
	e.config.HighlightCurrentLine = v
	e.setExtensionActive("line_highlighter", v)
}

// SetShowMarginLine toggles the right-margin guide.
func (e *Editor) SetShowMarginLine(v bool) {
	e.config.ShowMarginLine = v
	e.setExtensionActive("margin_line", v)
}

// SetMarginLinePosition moves the right-margin guide.
func (e *Editor) SetMarginLinePosition(col int) {
	e.config.MarginLinePosition = col
}

// SetShowIndentationGuides toggles indent depth marks.
func (e *Editor) SetShowIndentationGuides(v bool) {
	e.config.ShowIndentationGuides = v
	e.setExtensionActive("indentation_guides", v)
}

// SetAutocompleteBraces toggles bracket-pair completion.
func (e *Editor) SetAutocompleteBraces(v bool) {
	e.config.AutocompleteBraces = v
	e.setExtensionActive("autocomplete_braces", v)
}

// SetAutocompleteQuotes toggles quote-pair completion.
func (e *Editor) SetAutocompleteQuotes(v bool) {
	e.config.AutocompleteQuotes = v
	e.setExtensionActive("autocomplete_quotes", v)
}

// SetShowLineNumbers toggles the line-number gutter.
func (e *Editor) SetShowLineNumbers(v bool) {
	e.config.ShowLineNumbers = v
	e.side.SetLineNumbers(v)
}

// SetShowTextChanges toggles the changed-line gutter indicators.
func (e *Editor) SetShowTextChanges(v bool) {
	e.config.ShowTextChanges = v
	e.side.SetTextChanges(v)
}

// SetHideMouseCursor controls whether the pointer hides while typing.
func (e *Editor) SetHideMouseCursor(v bool) {
	e.config.HideMouseCursor = v
}

// SetIndentWidth changes the indent unit width for space-indented files.
func (e *Editor) SetIndentWidth(w int) {
	if w <= 0 {
		return
	}
	e.config.IndentWidth = w
	if e.indenter.Unit() != "\t" {
		e.indenter.SetUnit(spaces(w))
	}
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func (e *Editor) setExtensionActive(name string, v bool) {
	if ext := e.extensions[name]; ext != nil {
		ext.SetActive(v)
	}
}
