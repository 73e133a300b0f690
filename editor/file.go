package editor

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
)

// EditableFile is the external model object owning persisted document state,
// independent of any view. Editors consume it through this interface only.
type EditableFile interface {
	Language() string
	Document() *Document
	// SortedCheckers returns the file's diagnostic producers ordered by
	// descending priority.
	SortedCheckers() []CheckerEntry
}

// File is the standard EditableFile: a path-backed document with registered
// checkers. One File can be shared by several editor views (split views of
// the same file).
type File struct {
	path      string // absolute path, or "" if untitled
	language  string
	encoding  string
	doc       *Document
	checkers  []CheckerEntry
	languages *Languages
}

// NewFile creates an empty, untitled file.
func NewFile(languages *Languages) *File {
	if languages == nil {
		languages = DefaultLanguages()
	}
	return &File{
		language:  "text",
		encoding:  "utf-8",
		doc:       NewDocument(""),
		languages: languages,
	}
}

// OpenFile reads path into a new File, detecting its language from the
// extension.
func OpenFile(path string, languages *Languages) (*File, error) {
	f := NewFile(languages)
	if err := f.Open(path); err != nil {
		return nil, err
	}
	return f, nil
}

// Open loads path into the file, replacing any existing content. The stored
// path is converted to an absolute path.
func (f *File) Open(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return err
	}
	f.path = absPath
	f.language = f.languages.DetectLanguage(absPath)
	f.doc.SetText(string(data))
	return nil
}

// Save writes the document to the stored path and marks it clean.
func (f *File) Save() error {
	if f.path == "" {
		return errors.New("file has no path; use SaveAs")
	}
	if err := os.WriteFile(f.path, []byte(f.doc.Text()), 0644); err != nil {
		return err
	}
	f.doc.MarkSaved()
	return nil
}

// SaveAs writes the document to path, adopts it as the file's path and
// marks the document clean.
func (f *File) SaveAs(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(absPath, []byte(f.doc.Text()), 0644); err != nil {
		return err
	}
	f.path = absPath
	f.language = f.languages.DetectLanguage(absPath)
	f.doc.MarkSaved()
	return nil
}

// Path returns the absolute file path, or "" for an untitled file.
func (f *File) Path() string {
	return f.path
}

// Title returns the base filename, or "untitled" without a path.
func (f *File) Title() string {
	if f.path == "" {
		return "untitled"
	}
	return filepath.Base(f.path)
}

// Language returns the file's language identifier.
func (f *File) Language() string {
	return f.language
}

// SetLanguage overrides the detected language.
func (f *File) SetLanguage(language string) {
	f.language = language
}

// Encoding returns the file's text encoding name.
func (f *File) Encoding() string {
	return f.encoding
}

// Document returns the shared document model.
func (f *File) Document() *Document {
	return f.doc
}

// Dirty reports whether the document differs from the saved state.
func (f *File) Dirty() bool {
	return f.doc.Modified()
}

// RegisterChecker attaches a diagnostics producer with its overlay color
// and priority. Re-registering replaces by identity of the entry's checker.
func (f *File) RegisterChecker(entry CheckerEntry) {
	for i, cur := range f.checkers {
		if cur.Checker == entry.Checker {
			f.checkers[i] = entry
			return
		}
	}
	f.checkers = append(f.checkers, entry)
}

// SortedCheckers returns the checkers ordered by descending priority, so
// higher-priority overlays paint last.
func (f *File) SortedCheckers() []CheckerEntry {
	entries := make([]CheckerEntry, len(f.checkers))
	copy(entries, f.checkers)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority > entries[j].Priority
	})
	return entries
}
