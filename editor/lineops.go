package editor

// DeleteLine removes the 0-based line from the document, including its
// trailing newline. Out-of-range lines are a no-op.
func (d *Document) DeleteLine(line int) {
	if line < 0 || line >= d.LineCount() {
		return
	}
	start := d.LineStart(line)
	end := d.LineEnd(line)
	if end < d.Len() {
		end++ // take the newline
	} else if start > 0 {
		start-- // last line: take the preceding newline instead
	}
	d.Remove(start, end-start)
}

// DuplicateLine inserts a copy of the 0-based line directly below it.
func (d *Document) DuplicateLine(line int) {
	if line < 0 || line >= d.LineCount() {
		return
	}
	text := d.Line(line)
	d.Insert(d.LineEnd(line), "\n"+text)
}

// MoveLine swaps the 0-based line with its neighbor (+1 = down, -1 = up).
// Reports whether the move happened; moves past either edge do nothing.
func (d *Document) MoveLine(line, delta int) bool {
	target := line + delta
	if delta == 0 || line < 0 || target < 0 ||
		line >= d.LineCount() || target >= d.LineCount() {
		return false
	}
	first, second := line, target
	if second < first {
		first, second = second, first
	}
	a, b := d.Line(first), d.Line(second)
	d.BeginEdit()
	d.Replace(d.LineStart(first), d.LineEnd(first)-d.LineStart(first), b)
	d.Replace(d.LineStart(second), d.LineEnd(second)-d.LineStart(second), a)
	d.EndEdit()
	return true
}
