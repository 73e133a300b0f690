package editor

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Well-known extra-selection categories.
const (
	CategoryFind          = "find"
	CategoryOccurrences   = "occurrences"
	CategoryChecker       = "checker"
	CategoryLink          = "link"
	CategoryRunCursor     = "run_cursor"
	CategoryCurrentLine   = "current_line"
	CategoryBraceMatching = "brace_matching"
)

// Rendering priorities for the stock categories. Selections are painted in
// ascending priority order, so higher values end up on top.
const (
	PriorityCurrentLine = 0
	PriorityOccurrence  = 10
	PriorityFind        = 20
	PriorityChecker     = 30
	PriorityBrace       = 40
	PriorityLink        = 50
	PriorityRunCursor   = 60
)

// UnderlineStyle selects how an ExtraSelection underline is drawn.
type UnderlineStyle int

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSolid
	UnderlineWave
)

// Span is a half-open [Start, End) rune-offset range.
type Span struct {
	Start, End int
}

// ExtraSelection is a styled, non-persistent highlight range layered over
// the base syntax highlighting.
type ExtraSelection struct {
	Span
	Foreground string
	Background string
	Underline  string
	UnderStyle UnderlineStyle
	// FullWidth extends the background to the viewport edge (used by the
	// current-line highlight).
	FullWidth bool
	Priority  int
}

// NewSelection creates an unstyled selection over [start, end).
func NewSelection(start, end int) ExtraSelection {
	return ExtraSelection{Span: Span{Start: start, End: end}}
}

// NewLineSelection creates a selection covering [colStart, colEnd) on the
// given 0-based line of doc. A negative colEnd, or one past the line end,
// clamps to the end of the line.
func NewLineSelection(doc *Document, line, colStart, colEnd int) ExtraSelection {
	start := doc.LineStart(line)
	end := doc.LineEnd(line)
	s := start + colStart
	e := start + colEnd
	if s > end {
		s = end
	}
	if e > end || colEnd < 0 {
		e = end
	}
	if e < s {
		s, e = e, s
	}
	return NewSelection(s, e)
}

// CategoryGroup pairs a category name with its current selections.
type CategoryGroup struct {
	Category   string
	Selections []ExtraSelection
}

// ExtraSelectionManager layers highlight ranges partitioned into named
// categories. Replacing a category's contents fully replaces its highlights;
// categories are independent of each other. Every mutation pushes the
// flattened, priority-sorted set to the surface.
type ExtraSelectionManager struct {
	surface    Surface
	categories *orderedmap.OrderedMap[string, []ExtraSelection]
}

// NewExtraSelectionManager creates a manager pushing to surface.
func NewExtraSelectionManager(surface Surface) *ExtraSelectionManager {
	if surface == nil {
		surface = NopSurface{}
	}
	return &ExtraSelectionManager{
		surface:    surface,
		categories: orderedmap.New[string, []ExtraSelection](),
	}
}

// Len returns the number of known categories.
func (m *ExtraSelectionManager) Len() int {
	return m.categories.Len()
}

// Get returns the selections currently held by a category.
func (m *ExtraSelectionManager) Get(category string) []ExtraSelection {
	sels, _ := m.categories.Get(category)
	return sels
}

// Add replaces all selections for the category with the given list.
func (m *ExtraSelectionManager) Add(category string, selections ...ExtraSelection) {
	m.categories.Set(category, selections)
	m.update()
}

// Remove clears the category's selections.
func (m *ExtraSelectionManager) Remove(category string) {
	if _, ok := m.categories.Get(category); ok {
		m.categories.Set(category, nil)
		m.update()
	}
}

// RemoveAll clears every category.
func (m *ExtraSelectionManager) RemoveAll() {
	for pair := m.categories.Oldest(); pair != nil; pair = pair.Next() {
		m.categories.Set(pair.Key, nil)
	}
	m.update()
}

// Items returns a snapshot of all categories in insertion order, for
// copying into a linked clone view.
func (m *ExtraSelectionManager) Items() []CategoryGroup {
	items := make([]CategoryGroup, 0, m.categories.Len())
	for pair := m.categories.Oldest(); pair != nil; pair = pair.Next() {
		sels := make([]ExtraSelection, len(pair.Value))
		copy(sels, pair.Value)
		items = append(items, CategoryGroup{Category: pair.Key, Selections: sels})
	}
	return items
}

// update flattens all categories into a single ascending-priority list and
// pushes it to the surface. Equal priorities keep insertion order.
func (m *ExtraSelectionManager) update() {
	var flat []ExtraSelection
	for pair := m.categories.Oldest(); pair != nil; pair = pair.Next() {
		flat = append(flat, pair.Value...)
	}
	sort.SliceStable(flat, func(i, j int) bool {
		return flat[i].Priority < flat[j].Priority
	})
	m.surface.ApplySelections(flat)
}
