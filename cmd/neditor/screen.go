package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/ninja-ide/neditor/editor"
)

// view renders one editor over a tcell screen and implements editor.Surface.
// The editor pushes extra selections and gutter state into it; the render
// pass combines them with chroma syntax styles.
type view struct {
	screen tcell.Screen
	ed     *editor.Editor
	syntax *editor.Syntax

	selections []editor.ExtraSelection
	side       editor.SideAreaState

	topLine int // first visible document line
	width   int
	height  int
}

func newView(screen tcell.Screen) *view {
	return &view{screen: screen}
}

// ApplySelections implements editor.Surface.
func (v *view) ApplySelections(selections []editor.ExtraSelection) {
	v.selections = selections
}

// UpdateSideArea implements editor.Surface.
func (v *view) UpdateSideArea(state editor.SideAreaState) {
	v.side = state
}

// SetPointerShape implements editor.Surface. Terminals have no pointer to
// change, so only the hidden state matters (tcell hides it with the cursor).
func (v *view) SetPointerShape(editor.PointerShape) {}

// attach switches the view to another editor (tab change).
func (v *view) attach(ed *editor.Editor, language, scheme string) {
	v.ed = ed
	v.syntax = editor.NewSyntax(language, scheme)
	v.selections = nil
	v.side = ed.SideArea().Snapshot()
}

// gutterWidth is the width of the line-number column incl. marker cell.
func (v *view) gutterWidth(doc *editor.Document) int {
	if !v.side.LineNumbers {
		return 2
	}
	digits := len(fmt.Sprintf("%d", doc.LineCount()))
	return digits + 3
}

// scrollTo keeps the cursor line inside the viewport.
func (v *view) scrollTo(cursorLine int) {
	if cursorLine < v.topLine {
		v.topLine = cursorLine
	}
	if cursorLine >= v.topLine+v.height-1 {
		v.topLine = cursorLine - v.height + 2
	}
	if v.topLine < 0 {
		v.topLine = 0
	}
}

// render draws the whole frame: gutter, text with syntax colors, extra
// selections and overlays, in that order.
func (v *view) render() {
	v.width, v.height = v.screen.Size()
	doc := v.ed.Document()
	cursor := v.ed.Cursor()
	v.scrollTo(cursor.Line())
	v.screen.Clear()

	gutter := v.gutterWidth(doc)
	visible := v.ed.SideArea().Folds().VisibleLines(doc.LineCount())
	styles := v.lineStyles(doc)
	overlays := v.ed.Overlays()

	row := 0
	for _, line := range visible {
		if line < v.topLine {
			continue
		}
		if row >= v.height-1 {
			break
		}
		v.drawGutter(row, line, gutter)
		v.drawLine(row, line, gutter, doc, styles)
		row++
	}
	v.drawOverlays(overlays, gutter, visible)
	v.drawStatus()

	cx := gutter + displayWidth(cursor.LineText(), cursor.Column())
	v.screen.ShowCursor(cx, cursor.Line()-v.topLine)
	v.screen.Show()
}

// lineStyles resolves a tcell style per rune offset from syntax tokens and
// the extra-selection layers.
func (v *view) lineStyles(doc *editor.Document) map[int]tcell.Style {
	styles := make(map[int]tcell.Style)
	text := doc.Text()
	pos := 0
	for _, tok := range v.syntax.Tokens(text) {
		style := styleFromFormat(v.syntax.FormatFor(tok.Type))
		for range tok.Value {
			styles[pos] = style
			pos++
		}
	}
	// Extra selections arrive sorted by ascending priority; later ones
	// paint over earlier ones.
	for _, sel := range v.selections {
		style := tcell.StyleDefault
		if base, ok := styles[sel.Start]; ok {
			style = base
		}
		if sel.Background != "" {
			style = style.Background(tcell.GetColor(sel.Background))
		}
		if sel.Foreground != "" {
			style = style.Foreground(tcell.GetColor(sel.Foreground))
		}
		if sel.Underline != "" {
			style = style.Underline(true)
		}
		for i := sel.Start; i < sel.End; i++ {
			styles[i] = style
		}
	}
	return styles
}

func styleFromFormat(f editor.Format) tcell.Style {
	style := tcell.StyleDefault
	if f.Foreground != "" {
		style = style.Foreground(tcell.GetColor(f.Foreground))
	}
	if f.Background != "" {
		style = style.Background(tcell.GetColor(f.Background))
	}
	if f.Bold {
		style = style.Bold(true)
	}
	if f.Italic {
		style = style.Italic(true)
	}
	if f.Underline {
		style = style.Underline(true)
	}
	return style
}

func (v *view) drawGutter(row, line, gutter int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if v.side.LineNumbers {
		num := fmt.Sprintf("%*d", gutter-3, line+1)
		for i, r := range num {
			v.screen.SetContent(i, row, r, nil, style)
		}
	}
	markerCol := gutter - 2
	for _, m := range v.side.Markers {
		if m.Line != line {
			continue
		}
		r := '●'
		s := style
		switch m.Kind {
		case editor.MarkerBookmark:
			r = '◆'
		case editor.MarkerChecker:
			r = '!'
			if m.Color != "" {
				s = s.Foreground(tcell.GetColor(m.Color))
			}
		}
		v.screen.SetContent(markerCol, row, r, nil, s)
	}
	if v.side.TextChanges {
		if kind, ok := v.side.Changes[line]; ok && kind != editor.ChangeNone {
			s := style.Foreground(tcell.ColorGreen)
			if kind == editor.ChangeUnsaved {
				s = style.Foreground(tcell.ColorYellow)
			}
			v.screen.SetContent(gutter-1, row, '│', nil, s)
		}
	}
}

func (v *view) drawLine(row, line, gutter int, doc *editor.Document, styles map[int]tcell.Style) {
	start := doc.LineStart(line)
	x := gutter
	for i, r := range []rune(doc.Line(line)) {
		style, ok := styles[start+i]
		if !ok {
			style = tcell.StyleDefault
		}
		v.screen.SetContent(x, row, r, nil, style)
		if r == '\t' {
			x += 4
			continue
		}
		x += runewidth.RuneWidth(r)
	}
	// Full-width backgrounds (current line) extend past the text.
	for _, sel := range v.selections {
		if !sel.FullWidth || sel.Start > start+len([]rune(doc.Line(line))) ||
			sel.End < start {
			continue
		}
		bg := tcell.StyleDefault.Background(tcell.GetColor(sel.Background))
		for fx := x; fx < v.width; fx++ {
			v.screen.SetContent(fx, row, ' ', nil, bg)
		}
	}
}

func (v *view) drawOverlays(overlays []editor.Overlay, gutter int, visible []int) {
	rowOf := make(map[int]int, len(visible))
	row := 0
	for _, line := range visible {
		if line < v.topLine {
			continue
		}
		rowOf[line] = row
		row++
	}
	for _, ov := range overlays {
		style := tcell.StyleDefault.Foreground(tcell.GetColor(ov.Color))
		switch ov.Kind {
		case editor.OverlayMarginLine:
			x := gutter + ov.Column
			if x >= v.width {
				continue
			}
			for y := 0; y < v.height-1; y++ {
				r, _, cur, _ := v.screen.GetContent(x, y)
				if r == ' ' {
					v.screen.SetContent(x, y, '│', nil, cur.Foreground(tcell.GetColor(ov.Color)))
				}
			}
		case editor.OverlayIndentGuide:
			y, ok := rowOf[ov.Line]
			if !ok {
				continue
			}
			x := gutter + ov.Column
			r, _, _, _ := v.screen.GetContent(x, y)
			if r == ' ' {
				v.screen.SetContent(x, y, '┊', nil, style)
			}
		}
	}
}

func (v *view) drawStatus() {
	cursor := v.ed.Cursor()
	status := fmt.Sprintf(" %d:%d ", cursor.Line()+1, cursor.Column()+1)
	style := tcell.StyleDefault.Reverse(true)
	y := v.height - 1
	for x := 0; x < v.width; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
	for i, r := range status {
		v.screen.SetContent(i, y, r, nil, style)
	}
}

// displayWidth converts a rune column to a screen column, expanding tabs.
func displayWidth(line string, col int) int {
	w := 0
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		if r == '\t' {
			w += 4
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}

// message shows a transient note centered on the status row.
func (v *view) message(text string) {
	y := v.height - 1
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(strings.TrimSpace(text)) {
		v.screen.SetContent(v.width/2+i-len(text)/2, y, r, nil, style)
	}
	v.screen.Show()
}
