package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// languageSpec is the per-language configuration block.
type languageSpec struct {
	Comment    string `yaml:"comment"`
	IndentUnit string `yaml:"indent_unit"`
}

// Languages maps language identifiers to their editing configuration:
// line-comment marker and indent unit. The built-in table can be extended or
// overridden from a YAML document.
type Languages struct {
	specs map[string]languageSpec
	exts  map[string]string
}

// DefaultLanguages returns the built-in language table.
func DefaultLanguages() *Languages {
	return &Languages{
		specs: map[string]languageSpec{
			"python":     {Comment: "# ", IndentUnit: "    "},
			"go":         {Comment: "// ", IndentUnit: "\t"},
			"c":          {Comment: "// ", IndentUnit: "    "},
			"cpp":        {Comment: "// ", IndentUnit: "    "},
			"java":       {Comment: "// ", IndentUnit: "    "},
			"javascript": {Comment: "// ", IndentUnit: "  "},
			"ruby":       {Comment: "# ", IndentUnit: "  "},
			"shell":      {Comment: "# ", IndentUnit: "    "},
			"yaml":       {Comment: "# ", IndentUnit: "  "},
			"lua":        {Comment: "-- ", IndentUnit: "    "},
			"sql":        {Comment: "-- ", IndentUnit: "    "},
			"rust":       {Comment: "// ", IndentUnit: "    "},
			"html":       {IndentUnit: "  "},
			"text":       {},
		},
		exts: map[string]string{
			".py":   "python",
			".go":   "go",
			".c":    "c",
			".h":    "c",
			".cc":   "cpp",
			".cpp":  "cpp",
			".hpp":  "cpp",
			".java": "java",
			".js":   "javascript",
			".ts":   "javascript",
			".rb":   "ruby",
			".sh":   "shell",
			".yml":  "yaml",
			".yaml": "yaml",
			".lua":  "lua",
			".sql":  "sql",
			".rs":   "rust",
			".html": "html",
			".txt":  "text",
		},
	}
}

// LoadYAML merges language overrides from a YAML document shaped as a map of
// language identifier to {comment, indent_unit}. Unknown languages are
// added; existing ones have their non-empty fields replaced.
func (l *Languages) LoadYAML(data []byte) error {
	var overrides map[string]languageSpec
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parse language config: %w", err)
	}
	for name, spec := range overrides {
		cur := l.specs[name]
		if spec.Comment != "" {
			cur.Comment = spec.Comment
		}
		if spec.IndentUnit != "" {
			cur.IndentUnit = spec.IndentUnit
		}
		l.specs[name] = cur
	}
	return nil
}

// Marker returns the line-comment marker for a language, or "" when the
// language has none.
func (l *Languages) Marker(language string) string {
	return l.specs[language].Comment
}

// IndentUnit returns the configured indent unit for a language, defaulting
// to four spaces.
func (l *Languages) IndentUnit(language string) string {
	if unit := l.specs[language].IndentUnit; unit != "" {
		return unit
	}
	return "    "
}

// DetectLanguage maps a file path to a language identifier by extension,
// defaulting to "text".
func (l *Languages) DetectLanguage(path string) string {
	if lang, ok := l.exts[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return "text"
}
