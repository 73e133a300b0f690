package editor

import "github.com/dlclark/regexp2"

// buildFindPattern compiles a literal search expression. The expression is
// escaped so regex metacharacters match themselves; wholeWord wraps it in
// word-boundary assertions and caseSensitive toggles case folding.
func buildFindPattern(expr string, caseSensitive, wholeWord bool) (*regexp2.Regexp, error) {
	pattern := regexp2.Escape(expr)
	if wholeWord {
		pattern = `\b` + pattern + `\b`
	}
	opts := regexp2.None
	if !caseSensitive {
		opts |= regexp2.IgnoreCase
	}
	return regexp2.Compile(pattern, opts)
}

// FindAll returns the spans of every literal occurrence of expr in text, in
// document order. An empty expression, or a pattern that fails to compile,
// yields no matches.
func FindAll(text, expr string, caseSensitive, wholeWord bool) []Span {
	if expr == "" {
		return nil
	}
	re, err := buildFindPattern(expr, caseSensitive, wholeWord)
	if err != nil {
		return nil
	}
	var spans []Span
	m, err := re.FindStringMatch(text)
	for err == nil && m != nil {
		spans = append(spans, Span{Start: m.Index, End: m.Index + m.Length})
		m, err = re.FindNextMatch(m)
	}
	return spans
}

// FindWithIndex runs FindAll and additionally reports how many matches start
// before the given cursor offset, for "N of M" style feedback.
func FindWithIndex(text, expr string, cursor int, caseSensitive, wholeWord bool) (int, []Span) {
	spans := FindAll(text, expr, caseSensitive, wholeWord)
	index := 0
	for _, s := range spans {
		if s.Start < cursor {
			index++
		}
	}
	return index, spans
}
