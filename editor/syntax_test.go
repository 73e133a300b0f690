package editor

import "testing"

func TestSyntaxInsideStringOrComment(t *testing.T) {
	s := NewSyntax("python", "monokai")
	text := `x = "literal"  # trailing note`
	tests := []struct {
		name   string
		offset int
		want   bool
	}{
		{"identifier", 0, false},
		{"inside string", 6, true},
		{"inside comment", 18, true},
		{"whitespace after string", 13, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.InsideStringOrComment(text, tt.offset); got != tt.want {
				t.Errorf("InsideStringOrComment(%d) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestSyntaxIsKeyword(t *testing.T) {
	s := NewSyntax("python", "monokai")
	text := "def handler(): pass"
	if !s.IsKeyword(text, 0) {
		t.Error("offset 0 (def) should be a keyword")
	}
	if s.IsKeyword(text, 4) {
		t.Error("offset 4 (handler) should not be a keyword")
	}
}

func TestSyntaxUnknownLanguageFallsBack(t *testing.T) {
	s := NewSyntax("no-such-language", "no-such-scheme")
	text := "arbitrary text"
	if got := s.InsideStringOrComment(text, 3); got {
		t.Error("plaintext fallback should classify nothing as string or comment")
	}
	if toks := s.Tokens(text); len(toks) == 0 {
		t.Error("fallback lexer produced no tokens")
	}
}

func TestSyntaxTokensCoverText(t *testing.T) {
	s := NewSyntax("go", "monokai")
	text := "package main\n\nfunc main() {}\n"
	total := 0
	for _, tok := range s.Tokens(text) {
		total += len(tok.Value)
	}
	if total != len(text) {
		t.Errorf("token values cover %d bytes, want %d", total, len(text))
	}
}

func TestFormatForKeyword(t *testing.T) {
	s := NewSyntax("python", "monokai")
	tt := s.TokenTypeAt("def f(): pass", 0)
	f := s.FormatFor(tt)
	if f.Foreground == "" {
		t.Error("keyword format should carry a foreground color in monokai")
	}
}

func TestInvertedColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#000000", "#ffffff"},
		{"#ffffff", "#000000"},
		{"not-a-color", "#000000"},
	}
	for _, tt := range tests {
		if got := InvertedColor(tt.in); got != tt.want {
			t.Errorf("InvertedColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
