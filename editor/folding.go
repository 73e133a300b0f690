package editor

import "strings"

// FoldRegion is a collapsible span of lines. The start line stays visible
// when the region folds.
type FoldRegion struct {
	StartLine int
	EndLine   int
	Folded    bool
}

// FoldState tracks the foldable regions of a document and which of them are
// collapsed.
type FoldState struct {
	regions []FoldRegion
}

// NewFoldState creates an empty fold state.
func NewFoldState() *FoldState {
	return &FoldState{}
}

// SetRegions replaces the regions, carrying over the folded flag of regions
// that still start on the same line.
func (fs *FoldState) SetRegions(regions []FoldRegion) {
	folded := make(map[int]bool)
	for _, r := range fs.regions {
		if r.Folded {
			folded[r.StartLine] = true
		}
	}
	for i := range regions {
		if folded[regions[i].StartLine] {
			regions[i].Folded = true
		}
	}
	fs.regions = regions
}

// Regions returns the current regions.
func (fs *FoldState) Regions() []FoldRegion {
	return fs.regions
}

// Toggle flips the region starting at line. Reports whether one existed.
func (fs *FoldState) Toggle(line int) bool {
	for i, r := range fs.regions {
		if r.StartLine == line {
			fs.regions[i].Folded = !r.Folded
			return true
		}
	}
	return false
}

// IsLineHidden reports whether line sits inside a folded region.
func (fs *FoldState) IsLineHidden(line int) bool {
	for _, r := range fs.regions {
		if r.Folded && line > r.StartLine && line <= r.EndLine {
			return true
		}
	}
	return false
}

// VisibleLines lists the line indices still visible after folding.
func (fs *FoldState) VisibleLines(total int) []int {
	visible := make([]int, 0, total)
	for i := 0; i < total; i++ {
		if !fs.IsLineHidden(i) {
			visible = append(visible, i)
		}
	}
	return visible
}

// DetectFoldRegions finds foldable blocks in text: brace-delimited blocks,
// plus indentation blocks under lines ending in a colon for colon-block
// languages such as Python. A heuristic; folding never needs to be exact.
func DetectFoldRegions(text, language string) []FoldRegion {
	lines := strings.Split(text, "\n")
	var regions []FoldRegion

	var stack []int
	for i, line := range lines {
		for _, ch := range line {
			switch ch {
			case '{':
				stack = append(stack, i)
			case '}':
				if len(stack) == 0 {
					continue
				}
				start := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if i-start >= 2 {
					regions = append(regions, FoldRegion{StartLine: start, EndLine: i})
				}
			}
		}
	}

	if language == "python" {
		regions = append(regions, indentFoldRegions(lines)...)
	}
	return regions
}

// indentFoldRegions folds the indented block following each line that ends
// with a colon.
func indentFoldRegions(lines []string) []FoldRegion {
	var regions []FoldRegion
	for i, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if !strings.HasSuffix(trimmed, ":") {
			continue
		}
		indent := leadingWhitespace(line)
		end := i
		for j := i + 1; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == "" {
				continue
			}
			if leadingWhitespace(lines[j]) <= indent {
				break
			}
			end = j
		}
		if end > i {
			regions = append(regions, FoldRegion{StartLine: i, EndLine: end})
		}
	}
	return regions
}

func leadingWhitespace(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
