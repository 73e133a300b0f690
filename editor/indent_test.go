package editor

import "testing"

func TestAutoIndent(t *testing.T) {
	tests := []struct {
		name string
		lang string
		line string
		want string
	}{
		{"no indent", "go", "hello", ""},
		{"preserve tab indent", "go", "\thello", "\t"},
		{"preserve space indent", "python", "    hello", "    "},
		{"increase after brace", "go", "if x {", "\t"},
		{"increase after paren", "python", "call(", "    "},
		{"increase after bracket", "python", "items = [", "    "},
		{"colon in python", "python", "def f():", "    "},
		{"colon elsewhere ignored", "go", "case 1:", ""},
		{"nested colon", "python", "    if x:", "        "},
		{"blank line", "python", "   ", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewIndenter(tt.lang, DefaultLanguages())
			got := in.AutoIndent(tt.line)
			if got != tt.want {
				t.Errorf("AutoIndent(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestIndenterDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"two space indent", "def f():\n  x = 1\n  y = 2", "  "},
		{"four space indent", "def f():\n    x = 1", "    "},
		{"tab indent", "func f() {\n\tx := 1\n\ty := 2\n}", "\t"},
		{"no indentation keeps default", "a\nb\nc", "    "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewIndenter("python", DefaultLanguages())
			in.Detect(tt.text)
			if got := in.Unit(); got != tt.want {
				t.Errorf("unit after Detect = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIndentLines(t *testing.T) {
	d := NewDocument("a\n\nb")
	in := NewIndenter("python", DefaultLanguages())
	in.IndentLines(d, 0, 2)
	if got := d.Text(); got != "    a\n\n    b" {
		t.Errorf("IndentLines = %q, blank line should be skipped", got)
	}
}

func TestUnindentLines(t *testing.T) {
	d := NewDocument("    a\n  b\nc")
	in := NewIndenter("python", DefaultLanguages())
	in.UnindentLines(d, 0, 2)
	if got := d.Text(); got != "a\nb\nc" {
		t.Errorf("UnindentLines = %q, want %q", got, "a\nb\nc")
	}
}

func TestIndentUnindentSingleUndo(t *testing.T) {
	d := NewDocument("a\nb")
	in := NewIndenter("python", DefaultLanguages())
	in.IndentLines(d, 0, 1)
	if !d.Undo() {
		t.Fatal("Undo returned false")
	}
	if got := d.Text(); got != "a\nb" {
		t.Errorf("one undo should revert the whole indent, got %q", got)
	}
}
