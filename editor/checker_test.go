package editor

import "testing"

// stubChecker serves a fixed result set.
type stubChecker struct {
	issues map[int][]CheckerIssue
}

func (s *stubChecker) Checks() map[int][]CheckerIssue { return s.issues }

func TestHighlightCheckers(t *testing.T) {
	e := newTestEditor(t, "import os\nx=1\ny = 2")
	file := e.Editable().(*File)
	file.RegisterChecker(CheckerEntry{
		Checker: &stubChecker{issues: map[int][]CheckerIssue{
			0: {{ColStart: 7, ColEnd: 9, Message: "unused import"}},
			1: {{ColStart: 1, ColEnd: 2, Message: "missing spaces around operator"}},
		}},
		Color:    "#ff0000",
		Priority: 10,
	})
	e.HighlightCheckers()

	sels := e.ExtraSelections().Get(CategoryChecker)
	if len(sels) != 2 {
		t.Fatalf("checker selections = %d, want 2", len(sels))
	}
	for _, sel := range sels {
		if sel.UnderStyle != UnderlineWave {
			t.Errorf("checker underline style = %v, want UnderlineWave", sel.UnderStyle)
		}
		if sel.Underline != "#ff0000" {
			t.Errorf("checker underline color = %q, want #ff0000", sel.Underline)
		}
	}

	markers := 0
	for _, m := range e.SideArea().Snapshot().Markers {
		if m.Kind == MarkerChecker {
			markers++
		}
	}
	if markers != 2 {
		t.Errorf("checker markers = %d, want 2", markers)
	}
}

func TestHighlightCheckersReplacesPrevious(t *testing.T) {
	e := newTestEditor(t, "a\nb")
	file := e.Editable().(*File)
	chk := &stubChecker{issues: map[int][]CheckerIssue{
		0: {{ColStart: 0, ColEnd: 1, Message: "first"}},
	}}
	file.RegisterChecker(CheckerEntry{Checker: chk, Color: "#ff0000"})
	e.HighlightCheckers()

	chk.issues = map[int][]CheckerIssue{
		1: {{ColStart: 0, ColEnd: 1, Message: "second"}},
	}
	e.HighlightCheckers()

	sels := e.ExtraSelections().Get(CategoryChecker)
	if len(sels) != 1 {
		t.Fatalf("checker selections = %d after rebuild, want 1", len(sels))
	}
	if got := e.CheckerMessageAt(1, 0); got != "second" {
		t.Errorf("CheckerMessageAt(1, 0) = %q, want %q", got, "second")
	}
	if got := e.CheckerMessageAt(0, 0); got != "" {
		t.Errorf("CheckerMessageAt(0, 0) = %q, want empty", got)
	}
}

func TestBuildCheckerSelectionsSkipsOutOfRange(t *testing.T) {
	d := NewDocument("only line")
	entries := []CheckerEntry{{
		Checker: &stubChecker{issues: map[int][]CheckerIssue{
			5:  {{ColStart: 0, ColEnd: 1, Message: "gone"}},
			-1: {{ColStart: 0, ColEnd: 1, Message: "negative"}},
			0:  {{ColStart: 0, ColEnd: 4, Message: "kept"}},
		}},
		Color: "#00ff00",
	}}
	sels, markers := buildCheckerSelections(d, entries)
	if len(sels) != 1 || len(markers) != 1 {
		t.Errorf("selections = %d, markers = %d, want 1, 1", len(sels), len(markers))
	}
}

func TestCheckerMessageAtColumnRange(t *testing.T) {
	e := newTestEditor(t, "x=1")
	file := e.Editable().(*File)
	file.RegisterChecker(CheckerEntry{
		Checker: &stubChecker{issues: map[int][]CheckerIssue{
			0: {{ColStart: 1, ColEnd: 2, Message: "spacing"}},
		}},
	})
	if got := e.CheckerMessageAt(0, 1); got != "spacing" {
		t.Errorf("message inside range = %q, want %q", got, "spacing")
	}
	if got := e.CheckerMessageAt(0, 3); got != "" {
		t.Errorf("message outside range = %q, want empty", got)
	}
}
