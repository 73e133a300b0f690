package editor

import "path/filepath"

// TabManager tracks the open files of a host and which one is active.
// Pure data management, no UI widget dependency.
type TabManager struct {
	files     []*File
	active    int // index of active tab, or -1 if none
	languages *Languages
}

// NewTabManager creates a TabManager with no open files.
func NewTabManager(languages *Languages) *TabManager {
	if languages == nil {
		languages = DefaultLanguages()
	}
	return &TabManager{active: -1, languages: languages}
}

// Count returns the number of open files.
func (tm *TabManager) Count() int {
	return len(tm.files)
}

// Active returns the index of the active tab, or -1 with no open files.
func (tm *TabManager) Active() int {
	return tm.active
}

// ActiveFile returns the currently active file, or nil with no open files.
func (tm *TabManager) ActiveFile() *File {
	if tm.active < 0 || tm.active >= len(tm.files) {
		return nil
	}
	return tm.files[tm.active]
}

// File returns the file at the given tab index, or nil out of range.
func (tm *TabManager) File(index int) *File {
	if index < 0 || index >= len(tm.files) {
		return nil
	}
	return tm.files[index]
}

// Files returns all open files in tab order.
func (tm *TabManager) Files() []*File {
	return tm.files
}

// NewUntitled opens a fresh untitled file as the active tab and returns its
// index.
func (tm *TabManager) NewUntitled() int {
	tm.files = append(tm.files, NewFile(tm.languages))
	tm.active = len(tm.files) - 1
	return tm.active
}

// Open opens the file at path, or switches to it when the same absolute
// path is already open. The tab becomes active.
func (tm *TabManager) Open(path string) (int, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return -1, err
	}
	for i, f := range tm.files {
		if f.Path() == absPath {
			tm.active = i
			return i, nil
		}
	}
	f, err := OpenFile(absPath, tm.languages)
	if err != nil {
		return -1, err
	}
	tm.files = append(tm.files, f)
	tm.active = len(tm.files) - 1
	return tm.active, nil
}

// SetActive switches the active tab. Out-of-range indices are a no-op.
func (tm *TabManager) SetActive(index int) {
	if index >= 0 && index < len(tm.files) {
		tm.active = index
	}
}

// Close removes the tab at index, clamping the active tab to the nearest
// surviving neighbor.
func (tm *TabManager) Close(index int) {
	if index < 0 || index >= len(tm.files) {
		return
	}
	tm.files = append(tm.files[:index], tm.files[index+1:]...)
	switch {
	case len(tm.files) == 0:
		tm.active = -1
	case index < tm.active:
		tm.active--
	case tm.active >= len(tm.files):
		tm.active = len(tm.files) - 1
	}
}
