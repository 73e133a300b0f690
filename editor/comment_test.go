package editor

import "testing"

func TestToggleCommentBlock(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		marker      string
		want        []string
		wantComment bool
	}{
		{
			name:        "comment plain block",
			lines:       []string{"a = 1", "b = 2"},
			marker:      "# ",
			want:        []string{"# a = 1", "# b = 2"},
			wantComment: true,
		},
		{
			name:        "uncomment commented block",
			lines:       []string{"# a = 1", "# b = 2"},
			marker:      "# ",
			want:        []string{"a = 1", "b = 2"},
			wantComment: false,
		},
		{
			name:        "marker inserted at minimum indent",
			lines:       []string{"    if x:", "        y()"},
			marker:      "# ",
			want:        []string{"    # if x:", "    #     y()"},
			wantComment: true,
		},
		{
			name:        "mixed block always comments",
			lines:       []string{"# a = 1", "b = 2"},
			marker:      "# ",
			want:        []string{"# # a = 1", "# b = 2"},
			wantComment: true,
		},
		{
			name:        "blank lines untouched",
			lines:       []string{"a = 1", "", "b = 2"},
			marker:      "# ",
			want:        []string{"# a = 1", "", "# b = 2"},
			wantComment: true,
		},
		{
			name:        "trailing space variant uncommented",
			lines:       []string{"#a = 1", "#b = 2"},
			marker:      "# ",
			want:        []string{"a = 1", "b = 2"},
			wantComment: false,
		},
		{
			name:        "go marker",
			lines:       []string{"x := 1"},
			marker:      "// ",
			want:        []string{"// x := 1"},
			wantComment: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, commented := ToggleCommentBlock(tt.lines, tt.marker)
			if commented != tt.wantComment {
				t.Errorf("commented = %v, want %v", commented, tt.wantComment)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestToggleCommentBlockRoundTrip(t *testing.T) {
	lines := []string{"def f():", "    return 1"}
	commented, _ := ToggleCommentBlock(lines, "# ")
	restored, _ := ToggleCommentBlock(commented, "# ")
	for i := range lines {
		if restored[i] != lines[i] {
			t.Errorf("line %d = %q, want %q after round trip", i, restored[i], lines[i])
		}
	}
}
