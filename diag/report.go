// Package diag receives externally produced linter/checker results over a
// WebSocket bridge and adapts them into editor checker overlays.
package diag

import "github.com/ninja-ide/neditor/editor"

// Issue is one diagnostic within a line.
type Issue struct {
	ColStart int    `json:"col_start"`
	ColEnd   int    `json:"col_end"`
	Message  string `json:"message"`
}

// Report is the payload an external checker pushes for one file: every
// issue it currently knows about, keyed by 0-based line number. Each push
// fully replaces the checker's previous report for that file.
type Report struct {
	Path     string          `json:"path"`
	Checker  string          `json:"checker"`
	Color    string          `json:"color"`
	Priority int             `json:"priority"`
	Lines    map[int][]Issue `json:"lines"`
}

// ReportChecker adapts the latest Report of one named checker into the
// editor's Checker interface. It is safe to keep registered on a file while
// reports keep arriving; Update swaps the snapshot.
type ReportChecker struct {
	name   string
	checks map[int][]editor.CheckerIssue
}

// NewReportChecker creates an empty adapter for a named checker.
func NewReportChecker(name string) *ReportChecker {
	return &ReportChecker{name: name, checks: make(map[int][]editor.CheckerIssue)}
}

// Name returns the external checker's name.
func (rc *ReportChecker) Name() string {
	return rc.name
}

// Update replaces the snapshot with the given report's issues.
func (rc *ReportChecker) Update(r Report) {
	checks := make(map[int][]editor.CheckerIssue, len(r.Lines))
	for line, issues := range r.Lines {
		if line < 0 || len(issues) == 0 {
			continue
		}
		mapped := make([]editor.CheckerIssue, 0, len(issues))
		for _, issue := range issues {
			mapped = append(mapped, editor.CheckerIssue{
				ColStart: issue.ColStart,
				ColEnd:   issue.ColEnd,
				Message:  issue.Message,
			})
		}
		checks[line] = mapped
	}
	rc.checks = checks
}

// Checks implements editor.Checker.
func (rc *ReportChecker) Checks() map[int][]editor.CheckerIssue {
	return rc.checks
}
