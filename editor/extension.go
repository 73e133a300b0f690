package editor

import "fmt"

// Key identifies a non-character key the editor reacts to.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// Modifier is a bitmask of held modifier keys.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// KeyEvent is one key press delivered to the editor and its extensions.
// An extension that fully handles the event calls Accept so the default
// editing behavior is skipped.
type KeyEvent struct {
	Key      Key
	Rune     rune
	Mod      Modifier
	accepted bool
}

// Accept marks the event as handled.
func (ev *KeyEvent) Accept() {
	ev.accepted = true
}

// Accepted reports whether some handler claimed the event.
func (ev *KeyEvent) Accepted() bool {
	return ev.accepted
}

// Extension is a named, independently toggleable editor behavior. Extensions
// observe editor events through the optional observer interfaces below; the
// editor never depends on their internals.
type Extension interface {
	Name() string
	// Initialize binds the extension to its editor. Called once, at
	// registration.
	Initialize(e *Editor)
	Active() bool
	SetActive(active bool)
}

// KeyObserver receives key presses before the editor's default handling.
type KeyObserver interface {
	KeyPressed(ev *KeyEvent)
}

// PostKeyObserver receives key presses after the default handling ran.
type PostKeyObserver interface {
	PostKeyPressed(ev *KeyEvent)
}

// CursorObserver is notified after every cursor move.
type CursorObserver interface {
	CursorMoved()
}

// PaintObserver contributes paint-layer overlays collected on each frame.
type PaintObserver interface {
	Overlays() []Overlay
}

// ExtensionBase carries the active flag; embed it to satisfy the flag part
// of Extension.
type ExtensionBase struct {
	active bool
}

// Active reports whether the extension currently reacts to events.
func (b *ExtensionBase) Active() bool {
	return b.active
}

// SetActive toggles the extension.
func (b *ExtensionBase) SetActive(active bool) {
	b.active = active
}

// RegisterExtension adds ext to the editor's registry and initializes it.
// Registering a second extension under an already-taken name is an error;
// the existing instance stays registered.
func (e *Editor) RegisterExtension(ext Extension) (Extension, error) {
	name := ext.Name()
	if _, exists := e.extensions[name]; exists {
		return nil, fmt.Errorf("extension %q already registered", name)
	}
	e.extensions[name] = ext
	e.extOrder = append(e.extOrder, ext)
	ext.Initialize(e)
	return ext, nil
}

// ExtensionByName returns a registered extension, or nil.
func (e *Editor) ExtensionByName(name string) Extension {
	return e.extensions[name]
}

// dispatchKeyPressed offers ev to every active key-observing extension.
func (e *Editor) dispatchKeyPressed(ev *KeyEvent) {
	for _, ext := range e.extOrder {
		if !ext.Active() {
			continue
		}
		if obs, ok := ext.(KeyObserver); ok {
			obs.KeyPressed(ev)
			if ev.Accepted() {
				return
			}
		}
	}
}

// dispatchPostKeyPressed notifies active extensions after default handling.
func (e *Editor) dispatchPostKeyPressed(ev *KeyEvent) {
	for _, ext := range e.extOrder {
		if !ext.Active() {
			continue
		}
		if obs, ok := ext.(PostKeyObserver); ok {
			obs.PostKeyPressed(ev)
		}
	}
}

// dispatchCursorMoved notifies active cursor-observing extensions.
func (e *Editor) dispatchCursorMoved() {
	for _, ext := range e.extOrder {
		if !ext.Active() {
			continue
		}
		if obs, ok := ext.(CursorObserver); ok {
			obs.CursorMoved()
		}
	}
}

// Overlays collects the paint-layer decorations of all active extensions.
// Hosts call it during their paint pass.
func (e *Editor) Overlays() []Overlay {
	var overlays []Overlay
	for _, ext := range e.extOrder {
		if !ext.Active() {
			continue
		}
		if obs, ok := ext.(PaintObserver); ok {
			overlays = append(overlays, obs.Overlays()...)
		}
	}
	return overlays
}
