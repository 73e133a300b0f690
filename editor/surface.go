package editor

// PointerShape selects the mouse pointer shape over the editor viewport.
type PointerShape int

const (
	PointerText PointerShape = iota
	PointerHand
	PointerHidden
)

// OverlayKind identifies a paint-layer decoration produced by an extension.
type OverlayKind int

const (
	// OverlayMarginLine is a vertical line at a fixed column spanning the
	// whole viewport height. Line is ignored.
	OverlayMarginLine OverlayKind = iota
	// OverlayIndentGuide is a one-cell guide mark at (Line, Column).
	OverlayIndentGuide
)

// Overlay is a decoration drawn by the host on top of the text layer.
type Overlay struct {
	Kind   OverlayKind
	Line   int
	Column int
	Color  string
}

// SideAreaState is a snapshot of everything the gutter should display.
type SideAreaState struct {
	LineNumbers bool
	TextChanges bool
	Markers     []Marker
	Changes     map[int]ChangeKind
	Folds       []FoldRegion
}

// Surface is the rendering target an Editor pushes its visual state to.
// A GUI host implements it over its text widget; tests use NopSurface or a
// recording fake.
type Surface interface {
	// ApplySelections replaces the full set of styled ranges layered over
	// the base syntax highlighting, already sorted by ascending priority.
	ApplySelections(selections []ExtraSelection)
	// UpdateSideArea replaces the gutter snapshot.
	UpdateSideArea(state SideAreaState)
	// SetPointerShape changes the mouse pointer over the viewport.
	SetPointerShape(shape PointerShape)
}

// NopSurface discards everything pushed to it.
type NopSurface struct{}

func (NopSurface) ApplySelections([]ExtraSelection) {}
func (NopSurface) UpdateSideArea(SideAreaState)     {}
func (NopSurface) SetPointerShape(PointerShape)     {}
