package editor

import (
	"reflect"
	"testing"
)

func TestFoldToggle(t *testing.T) {
	fs := NewFoldState()
	fs.SetRegions([]FoldRegion{{StartLine: 0, EndLine: 3}})
	if !fs.Toggle(0) {
		t.Fatal("Toggle(0) should find the region")
	}
	if !fs.Regions()[0].Folded {
		t.Error("region should be folded after Toggle")
	}
	if fs.Toggle(5) {
		t.Error("Toggle on a non-region line should return false")
	}
}

func TestFoldHidesInnerLines(t *testing.T) {
	fs := NewFoldState()
	fs.SetRegions([]FoldRegion{{StartLine: 1, EndLine: 3}})
	fs.Toggle(1)

	if fs.IsLineHidden(1) {
		t.Error("fold start line should stay visible")
	}
	for _, line := range []int{2, 3} {
		if !fs.IsLineHidden(line) {
			t.Errorf("line %d should be hidden", line)
		}
	}
	if fs.IsLineHidden(4) {
		t.Error("line after the region should be visible")
	}

	got := fs.VisibleLines(5)
	want := []int{0, 1, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("VisibleLines = %v, want %v", got, want)
	}
}

func TestSetRegionsKeepsFoldedState(t *testing.T) {
	fs := NewFoldState()
	fs.SetRegions([]FoldRegion{{StartLine: 2, EndLine: 5}})
	fs.Toggle(2)
	fs.SetRegions([]FoldRegion{
		{StartLine: 0, EndLine: 1},
		{StartLine: 2, EndLine: 6},
	})
	regions := fs.Regions()
	if regions[0].Folded {
		t.Error("new region should not inherit a fold")
	}
	if !regions[1].Folded {
		t.Error("region still starting at line 2 should stay folded")
	}
}

func TestDetectFoldRegionsBraces(t *testing.T) {
	text := "func f() {\n\ta()\n\tb()\n}\nx := 1"
	got := DetectFoldRegions(text, "go")
	want := []FoldRegion{{StartLine: 0, EndLine: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectFoldRegions = %v, want %v", got, want)
	}
}

func TestDetectFoldRegionsSkipsShortBlocks(t *testing.T) {
	text := "if x {\n}"
	if got := DetectFoldRegions(text, "go"); len(got) != 0 {
		t.Errorf("DetectFoldRegions = %v, want none for a two-line block", got)
	}
}

func TestDetectFoldRegionsPython(t *testing.T) {
	text := "def f():\n    a()\n    b()\n\nx = 1"
	got := DetectFoldRegions(text, "python")
	want := []FoldRegion{{StartLine: 0, EndLine: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectFoldRegions = %v, want %v", got, want)
	}
}

func TestDetectFoldRegionsNested(t *testing.T) {
	text := "class C:\n    def m(self):\n        pass\n        more()"
	got := DetectFoldRegions(text, "python")
	want := []FoldRegion{
		{StartLine: 0, EndLine: 3},
		{StartLine: 1, EndLine: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectFoldRegions = %v, want %v", got, want)
	}
}
