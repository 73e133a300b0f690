package editor

// bracketPair describes one bracket character: its partner and whether it
// opens a pair.
type bracketPair struct {
	partner rune
	open    bool
}

var bracketTable = map[rune]bracketPair{
	'(': {')', true},
	')': {'(', false},
	'{': {'}', true},
	'}': {'{', false},
	'[': {']', true},
	']': {'[', false},
}

// MatchingBracket finds the partner of the bracket at the given rune
// position of text, scanning forward for opening and backward for closing
// brackets while tracking nesting depth. The second result is false when
// the position is not a bracket or no partner exists.
func MatchingBracket(text string, pos int) (int, bool) {
	runes := []rune(text)
	if pos < 0 || pos >= len(runes) {
		return 0, false
	}
	pair, ok := bracketTable[runes[pos]]
	if !ok {
		return 0, false
	}
	step := 1
	if !pair.open {
		step = -1
	}
	depth := 1
	for i := pos + step; i >= 0 && i < len(runes); i += step {
		switch runes[i] {
		case runes[pos]:
			depth++
		case pair.partner:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// SymbolHighlighter highlights the bracket pair around the cursor.
type SymbolHighlighter struct {
	ExtensionBase
	editor *Editor
}

func (s *SymbolHighlighter) Name() string { return "symbol_highlighter" }

func (s *SymbolHighlighter) Initialize(e *Editor) { s.editor = e }

// CursorMoved recomputes the matched-pair highlight. A bracket directly at
// or just before the cursor gets highlighted with its partner; anything
// else clears the category.
func (s *SymbolHighlighter) CursorMoved() {
	e := s.editor
	e.selections.Remove(CategoryBraceMatching)
	text := e.doc.Text()
	runes := []rune(text)

	pos := e.cursor.Position()
	candidate := -1
	if pos < len(runes) {
		if _, ok := bracketTable[runes[pos]]; ok {
			candidate = pos
		}
	}
	if candidate < 0 && pos > 0 {
		if _, ok := bracketTable[runes[pos-1]]; ok {
			candidate = pos - 1
		}
	}
	if candidate < 0 {
		return
	}
	match, ok := MatchingBracket(text, candidate)
	if !ok {
		return
	}
	color := e.config.Scheme("editor.brace.matched")
	sels := make([]ExtraSelection, 0, 2)
	for _, p := range []int{candidate, match} {
		sel := NewSelection(p, p+1)
		sel.Background = color
		sel.Priority = PriorityBrace
		sels = append(sels, sel)
	}
	e.selections.Add(CategoryBraceMatching, sels...)
}

// AutocompleteBraces completes bracket pairs while typing: an opening
// bracket inserts its partner after the cursor (or wraps the selection),
// and typing a closing bracket just before an identical one skips over it.
type AutocompleteBraces struct {
	ExtensionBase
	editor *Editor
}

func (a *AutocompleteBraces) Name() string { return "autocomplete_braces" }

func (a *AutocompleteBraces) Initialize(e *Editor) { a.editor = e }

func (a *AutocompleteBraces) KeyPressed(ev *KeyEvent) {
	if ev.Key != KeyRune {
		return
	}
	pair, ok := bracketTable[ev.Rune]
	if !ok {
		return
	}
	e := a.editor
	if pair.open {
		if e.cursor.HasSelection() {
			// Wrap the selection in the pair.
			start, end := e.cursor.SelectionRange()
			e.doc.BeginEdit()
			e.doc.Insert(end, string(pair.partner))
			e.doc.Insert(start, string(ev.Rune))
			e.doc.EndEdit()
			e.cursor.MoveTo(end+2, false)
		} else {
			e.cursor.InsertText(string(ev.Rune) + string(pair.partner))
			e.cursor.MoveTo(e.cursor.Position()-1, false)
		}
		ev.Accept()
		return
	}
	// Skip over an already-present closing bracket.
	pos := e.cursor.Position()
	if !e.cursor.HasSelection() && pos < e.doc.Len() &&
		[]rune(e.doc.TextRange(pos, pos+1))[0] == ev.Rune {
		e.cursor.MoveTo(pos+1, false)
		ev.Accept()
	}
}
