package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Format is the visual style of one token kind.
type Format struct {
	Foreground string
	Background string
	Bold       bool
	Italic     bool
	Underline  bool
}

// Syntax supplies per-token-kind color formats for a language and answers
// position queries such as whether an offset lies inside a comment or
// string. Tokenization is cached per document version by the Editor.
type Syntax struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// NewSyntax builds a syntax service for a language identifier and color
// scheme name. Unknown languages fall back to the plaintext lexer, unknown
// schemes to the default style.
func NewSyntax(language, scheme string) *Syntax {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	style := styles.Get(scheme)
	if style == nil {
		style = styles.Fallback
	}
	return &Syntax{lexer: chroma.Coalesce(lexer), style: style}
}

// Tokens lexes text into chroma tokens. Lexer errors degrade to a single
// unstyled token covering the whole text.
func (s *Syntax) Tokens(text string) []chroma.Token {
	it, err := s.lexer.Tokenise(nil, text)
	if err != nil {
		return []chroma.Token{{Type: chroma.Text, Value: text}}
	}
	return it.Tokens()
}

// TokenTypeAt returns the token kind covering the given rune offset.
func (s *Syntax) TokenTypeAt(text string, offset int) chroma.TokenType {
	pos := 0
	for _, tok := range s.Tokens(text) {
		n := utf8.RuneCountInString(tok.Value)
		if offset >= pos && offset < pos+n {
			return tok.Type
		}
		pos += n
	}
	return chroma.None
}

// FormatFor resolves the style of a token kind against the color scheme.
func (s *Syntax) FormatFor(tt chroma.TokenType) Format {
	entry := s.style.Get(tt)
	f := Format{Bold: entry.Bold == chroma.Yes, Italic: entry.Italic == chroma.Yes,
		Underline: entry.Underline == chroma.Yes}
	if entry.Colour.IsSet() {
		f.Foreground = entry.Colour.String()
	}
	if entry.Background.IsSet() {
		f.Background = entry.Background.String()
	}
	return f
}

// matchesCategory reports whether a token kind belongs to the named
// category ("comment", "string"), matching by name prefix the way the
// highlighter's formats are keyed.
func matchesCategory(tt chroma.TokenType, category string) bool {
	switch category {
	case "comment":
		return tt.InCategory(chroma.Comment)
	case "string":
		return tt.InCategory(chroma.LiteralString)
	}
	return strings.HasPrefix(strings.ToLower(tt.String()), category)
}

// InsideStringOrComment reports whether the rune offset of text lies inside
// a comment or string token.
func (s *Syntax) InsideStringOrComment(text string, offset int) bool {
	tt := s.TokenTypeAt(text, offset)
	return matchesCategory(tt, "comment") || matchesCategory(tt, "string")
}

// IsKeyword reports whether the token at the rune offset is a language
// keyword. Used to suppress go-to-definition link emulation on keywords.
func (s *Syntax) IsKeyword(text string, offset int) bool {
	return s.TokenTypeAt(text, offset).InCategory(chroma.Keyword)
}
