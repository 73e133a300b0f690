package editor

import "sort"

// MarkerKind classifies a gutter marker.
type MarkerKind int

const (
	MarkerBookmark MarkerKind = iota
	MarkerBreakpoint
	MarkerChecker
)

// Marker is one gutter decoration on a line.
type Marker struct {
	Line     int
	Kind     MarkerKind
	Color    string
	Priority int
}

// ChangeKind is the state of a line's text-change indicator.
type ChangeKind int

const (
	ChangeNone ChangeKind = iota
	// ChangeUnsaved marks a line edited since the last save.
	ChangeUnsaved
	// ChangeSaved marks a line edited earlier in the session and saved.
	ChangeSaved
)

// SideArea manages the gutter decorations of one editor view: line numbers,
// bookmark/breakpoint/checker markers, text-change indicators and code
// folding. Every mutation pushes a fresh snapshot to the surface.
type SideArea struct {
	surface Surface

	lineNumbers bool
	textChanges bool
	markers     []Marker
	changes     map[int]ChangeKind
	folds       *FoldState
}

// NewSideArea creates a side area pushing to surface.
func NewSideArea(surface Surface) *SideArea {
	if surface == nil {
		surface = NopSurface{}
	}
	return &SideArea{
		surface: surface,
		changes: make(map[int]ChangeKind),
		folds:   NewFoldState(),
	}
}

// SetLineNumbers toggles the line-number column.
func (s *SideArea) SetLineNumbers(v bool) {
	s.lineNumbers = v
	s.push()
}

// SetTextChanges toggles the changed-line indicators.
func (s *SideArea) SetTextChanges(v bool) {
	s.textChanges = v
	s.push()
}

// Folds exposes the fold state.
func (s *SideArea) Folds() *FoldState {
	return s.folds
}

// RefreshFolds re-detects fold regions for the given text, keeping folded
// regions collapsed where they survive.
func (s *SideArea) RefreshFolds(text, language string) {
	s.folds.SetRegions(DetectFoldRegions(text, language))
	s.push()
}

// ToggleFold folds or unfolds the region starting at line.
func (s *SideArea) ToggleFold(line int) bool {
	ok := s.folds.Toggle(line)
	if ok {
		s.push()
	}
	return ok
}

// ToggleBookmark adds or removes a bookmark on line.
func (s *SideArea) ToggleBookmark(line int) {
	s.toggleMarker(line, MarkerBookmark)
}

// ToggleBreakpoint adds or removes a breakpoint on line.
func (s *SideArea) ToggleBreakpoint(line int) {
	s.toggleMarker(line, MarkerBreakpoint)
}

func (s *SideArea) toggleMarker(line int, kind MarkerKind) {
	for i, m := range s.markers {
		if m.Line == line && m.Kind == kind {
			s.markers = append(s.markers[:i], s.markers[i+1:]...)
			s.push()
			return
		}
	}
	s.markers = append(s.markers, Marker{Line: line, Kind: kind})
	s.push()
}

// AddMarkers appends externally produced markers (checker results).
func (s *SideArea) AddMarkers(markers []Marker) {
	s.markers = append(s.markers, markers...)
	s.push()
}

// RemoveMarkers drops every marker of the given kind.
func (s *SideArea) RemoveMarkers(kind MarkerKind) {
	kept := s.markers[:0]
	for _, m := range s.markers {
		if m.Kind != kind {
			kept = append(kept, m)
		}
	}
	s.markers = kept
	s.push()
}

// NextBookmark returns the first bookmarked line after the given one,
// wrapping around. The second result is false with no bookmarks set.
func (s *SideArea) NextBookmark(after int) (int, bool) {
	lines := s.bookmarkLines()
	if len(lines) == 0 {
		return 0, false
	}
	for _, l := range lines {
		if l > after {
			return l, true
		}
	}
	return lines[0], true
}

// PreviousBookmark returns the last bookmarked line before the given one,
// wrapping around.
func (s *SideArea) PreviousBookmark(before int) (int, bool) {
	lines := s.bookmarkLines()
	if len(lines) == 0 {
		return 0, false
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i] < before {
			return lines[i], true
		}
	}
	return lines[len(lines)-1], true
}

func (s *SideArea) bookmarkLines() []int {
	var lines []int
	for _, m := range s.markers {
		if m.Kind == MarkerBookmark {
			lines = append(lines, m.Line)
		}
	}
	sort.Ints(lines)
	return lines
}

// RecordChange marks the lines touched by an edit as unsaved.
func (s *SideArea) RecordChange(doc *Document, c Change) {
	first := doc.LineAt(c.Offset)
	last := first
	for _, r := range c.Inserted {
		if r == '\n' {
			last++
		}
	}
	for line := first; line <= last; line++ {
		s.changes[line] = ChangeUnsaved
	}
	s.push()
}

// MarkSaved flips all unsaved-change indicators to saved.
func (s *SideArea) MarkSaved() {
	for line, kind := range s.changes {
		if kind == ChangeUnsaved {
			s.changes[line] = ChangeSaved
		}
	}
	s.push()
}

// Snapshot builds the current gutter state.
func (s *SideArea) Snapshot() SideAreaState {
	changes := make(map[int]ChangeKind, len(s.changes))
	for line, kind := range s.changes {
		changes[line] = kind
	}
	markers := make([]Marker, len(s.markers))
	copy(markers, s.markers)
	return SideAreaState{
		LineNumbers: s.lineNumbers,
		TextChanges: s.textChanges,
		Markers:     markers,
		Changes:     changes,
		Folds:       s.folds.Regions(),
	}
}

func (s *SideArea) push() {
	s.surface.UpdateSideArea(s.Snapshot())
}
