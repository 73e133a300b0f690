package editor

import "testing"

func TestDeleteLine(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
		want string
	}{
		{"middle line", "a\nb\nc", 1, "a\nc"},
		{"first line", "a\nb\nc", 0, "b\nc"},
		{"last line takes preceding newline", "a\nb\nc", 2, "a\nb"},
		{"only line", "a", 0, ""},
		{"out of range", "a\nb", 5, "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument(tt.text)
			d.DeleteLine(tt.line)
			if got := d.Text(); got != tt.want {
				t.Errorf("DeleteLine(%d) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestDuplicateLine(t *testing.T) {
	d := NewDocument("a\nb\nc")
	d.DuplicateLine(1)
	if got := d.Text(); got != "a\nb\nb\nc" {
		t.Errorf("DuplicateLine = %q, want %q", got, "a\nb\nb\nc")
	}
}

func TestDuplicateLastLine(t *testing.T) {
	d := NewDocument("a\nb")
	d.DuplicateLine(1)
	if got := d.Text(); got != "a\nb\nb" {
		t.Errorf("DuplicateLine = %q, want %q", got, "a\nb\nb")
	}
}

func TestMoveLine(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		line   int
		delta  int
		want   string
		wantOK bool
	}{
		{"down", "a\nb\nc", 0, 1, "b\na\nc", true},
		{"up", "a\nb\nc", 2, -1, "a\nc\nb", true},
		{"different lengths", "short\nlonger line", 0, 1, "longer line\nshort", true},
		{"past top", "a\nb", 0, -1, "a\nb", false},
		{"past bottom", "a\nb", 1, 1, "a\nb", false},
		{"zero delta", "a\nb", 0, 0, "a\nb", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument(tt.text)
			ok := d.MoveLine(tt.line, tt.delta)
			if ok != tt.wantOK {
				t.Errorf("MoveLine ok = %v, want %v", ok, tt.wantOK)
			}
			if got := d.Text(); got != tt.want {
				t.Errorf("MoveLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoveLineSingleUndo(t *testing.T) {
	d := NewDocument("a\nb")
	d.MoveLine(0, 1)
	if !d.Undo() {
		t.Fatal("Undo returned false")
	}
	if got := d.Text(); got != "a\nb" {
		t.Errorf("one undo should revert the swap, got %q", got)
	}
}
