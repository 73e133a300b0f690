package editor

import "testing"

// recordingSurface captures what the editor pushes to the toolkit so
// tests can assert on paint output without a real screen.
type recordingSurface struct {
	applied   [][]ExtraSelection
	sideAreas []SideAreaState
	pointer   PointerShape
}

func (s *recordingSurface) ApplySelections(sels []ExtraSelection) {
	s.applied = append(s.applied, sels)
}

func (s *recordingSurface) UpdateSideArea(state SideAreaState) {
	s.sideAreas = append(s.sideAreas, state)
}

func (s *recordingSurface) SetPointerShape(shape PointerShape) {
	s.pointer = shape
}

func (s *recordingSurface) last() []ExtraSelection {
	if len(s.applied) == 0 {
		return nil
	}
	return s.applied[len(s.applied)-1]
}

func TestSelectionManagerAddReplacesCategory(t *testing.T) {
	m := NewExtraSelectionManager(NopSurface{})
	m.Add(CategoryFind, NewSelection(0, 3), NewSelection(5, 8))
	m.Add(CategoryFind, NewSelection(10, 12))
	got := m.Get(CategoryFind)
	if len(got) != 1 {
		t.Fatalf("Get(find) = %d selections, want 1", len(got))
	}
	if got[0].Start != 10 || got[0].End != 12 {
		t.Errorf("selection = (%d, %d), want (10, 12)", got[0].Start, got[0].End)
	}
}

func TestSelectionManagerRemove(t *testing.T) {
	m := NewExtraSelectionManager(NopSurface{})
	m.Add(CategoryOccurrences, NewSelection(0, 3))
	m.Remove(CategoryOccurrences)
	if got := m.Get(CategoryOccurrences); len(got) != 0 {
		t.Errorf("Get after Remove = %d selections, want 0", len(got))
	}
}

func TestSelectionManagerPreservesInsertionOrder(t *testing.T) {
	m := NewExtraSelectionManager(NopSurface{})
	m.Add(CategoryChecker, NewSelection(0, 1))
	m.Add(CategoryFind, NewSelection(2, 3))
	m.Add(CategoryChecker, NewSelection(4, 5))

	items := m.Items()
	if len(items) != 2 {
		t.Fatalf("Items = %d groups, want 2", len(items))
	}
	if items[0].Category != CategoryChecker || items[1].Category != CategoryFind {
		t.Errorf("category order = [%s, %s], want [checker, find]",
			items[0].Category, items[1].Category)
	}
}

func TestSelectionManagerPushesSortedByPriority(t *testing.T) {
	surf := &recordingSurface{}
	m := NewExtraSelectionManager(surf)
	run := NewSelection(0, 1)
	run.Priority = PriorityRunCursor
	line := NewSelection(0, 1)
	line.Priority = PriorityCurrentLine
	m.Add(CategoryRunCursor, run)
	m.Add(CategoryCurrentLine, line)

	got := surf.last()
	if len(got) != 2 {
		t.Fatalf("surface received %d selections, want 2", len(got))
	}
	if got[0].Priority != PriorityCurrentLine || got[1].Priority != PriorityRunCursor {
		t.Errorf("paint order = [%d, %d], want low priority first",
			got[0].Priority, got[1].Priority)
	}
}

func TestSelectionManagerPushesOnMutation(t *testing.T) {
	surf := &recordingSurface{}
	m := NewExtraSelectionManager(surf)
	m.Add(CategoryFind, NewSelection(0, 1))
	m.Remove(CategoryFind)
	if len(surf.applied) != 2 {
		t.Errorf("surface updated %d times, want 2", len(surf.applied))
	}
	if len(surf.last()) != 0 {
		t.Errorf("final push has %d selections, want 0", len(surf.last()))
	}
}

func TestSelectionManagerRemoveAll(t *testing.T) {
	m := NewExtraSelectionManager(NopSurface{})
	m.Add(CategoryFind, NewSelection(0, 1))
	m.Add(CategoryChecker, NewSelection(2, 3))
	m.RemoveAll()
	if got := m.Get(CategoryFind); len(got) != 0 {
		t.Errorf("Get(find) after RemoveAll = %d selections, want 0", len(got))
	}
	if got := m.Get(CategoryChecker); len(got) != 0 {
		t.Errorf("Get(checker) after RemoveAll = %d selections, want 0", len(got))
	}
}

func TestNewLineSelection(t *testing.T) {
	d := NewDocument("abc\ndefgh\nxyz")
	sel := NewLineSelection(d, 1, 1, 4)
	if sel.Start != 5 || sel.End != 8 {
		t.Errorf("NewLineSelection span = (%d, %d), want (5, 8)", sel.Start, sel.End)
	}
}
