package editor

import "testing"

func TestFindAll(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expr          string
		caseSensitive bool
		wholeWord     bool
		want          []Span
	}{
		{
			name: "simple matches",
			text: "cat catalog cat",
			expr: "cat",
			want: []Span{{Start: 0, End: 3}, {Start: 4, End: 7}, {Start: 12, End: 15}},
		},
		{
			name:      "whole word excludes prefix matches",
			text:      "cat catalog cat",
			expr:      "cat",
			wholeWord: true,
			want:      []Span{{Start: 0, End: 3}, {Start: 12, End: 15}},
		},
		{
			name: "case insensitive by default",
			text: "Cat CAT cat",
			expr: "cat",
			want: []Span{{Start: 0, End: 3}, {Start: 4, End: 7}, {Start: 8, End: 11}},
		},
		{
			name:          "case sensitive",
			text:          "Cat CAT cat",
			expr:          "cat",
			caseSensitive: true,
			want:          []Span{{Start: 8, End: 11}},
		},
		{
			name: "metacharacters are literal",
			text: "a.b axb a.b",
			expr: "a.b",
			want: []Span{{Start: 0, End: 3}, {Start: 8, End: 11}},
		},
		{
			name: "empty expression",
			text: "anything",
			expr: "",
			want: nil,
		},
		{
			name: "no matches",
			text: "hello world",
			expr: "xyz",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindAll(tt.text, tt.expr, tt.caseSensitive, tt.wholeWord)
			if len(got) != len(tt.want) {
				t.Fatalf("FindAll = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("match %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFindWithIndex(t *testing.T) {
	text := "cat catalog cat"
	tests := []struct {
		name   string
		cursor int
		want   int
	}{
		{"before first", 0, 0},
		{"after first", 3, 1},
		{"after second", 8, 2},
		{"after all", 15, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, spans := FindWithIndex(text, "cat", tt.cursor, false, false)
			if got != tt.want {
				t.Errorf("index = %d, want %d", got, tt.want)
			}
			if len(spans) != 3 {
				t.Errorf("spans = %d, want 3", len(spans))
			}
		})
	}
}
