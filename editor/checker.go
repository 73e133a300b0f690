package editor

// CheckerIssue is one diagnostic on a line: a column range plus a message.
type CheckerIssue struct {
	ColStart int
	ColEnd   int
	Message  string
}

// Checker produces per-line diagnostics for a file. Implementations run
// externally (linters, style checkers); the editor only consumes their
// results and never mutates them.
type Checker interface {
	// Checks returns the current issues keyed by 0-based line number.
	Checks() map[int][]CheckerIssue
}

// CheckerEntry pairs a checker with its overlay color and ordering priority.
type CheckerEntry struct {
	Checker  Checker
	Color    string
	Priority int
}

// buildCheckerSelections translates checker results into underline
// selections and side-area markers. Lines out of range or with no issues
// contribute nothing.
func buildCheckerSelections(doc *Document, entries []CheckerEntry) ([]ExtraSelection, []Marker) {
	var selections []ExtraSelection
	var markers []Marker
	for _, entry := range entries {
		if entry.Checker == nil {
			continue
		}
		for line, issues := range entry.Checker.Checks() {
			if line < 0 || line >= doc.LineCount() || len(issues) == 0 {
				continue
			}
			markers = append(markers, Marker{
				Line:     line,
				Kind:     MarkerChecker,
				Color:    entry.Color,
				Priority: entry.Priority,
			})
			for _, issue := range issues {
				sel := NewLineSelection(doc, line, issue.ColStart, issue.ColEnd)
				sel.Underline = entry.Color
				sel.UnderStyle = UnderlineWave
				sel.Priority = PriorityChecker
				selections = append(selections, sel)
			}
		}
	}
	return selections, markers
}

// HighlightCheckers rebuilds the checker overlay from the editable's sorted
// checkers, replacing the previous one.
func (e *Editor) HighlightCheckers() {
	e.selections.Remove(CategoryChecker)
	e.side.RemoveMarkers(MarkerChecker)
	selections, markers := buildCheckerSelections(e.doc, e.editable.SortedCheckers())
	e.selections.Add(CategoryChecker, selections...)
	e.side.AddMarkers(markers)
}

// CheckerMessageAt returns the diagnostic message covering (line, col), or
// "" when none applies. Used by hosts to show tooltips under the mouse.
func (e *Editor) CheckerMessageAt(line, col int) string {
	for _, entry := range e.editable.SortedCheckers() {
		if entry.Checker == nil {
			continue
		}
		for _, issue := range entry.Checker.Checks()[line] {
			if col >= issue.ColStart && col <= issue.ColEnd {
				return issue.Message
			}
		}
	}
	return ""
}
