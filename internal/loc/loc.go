package loc

import "sort"

type Loc struct {
	// This is the 0-based index of this location from the start of the file, in bytes
	Start int
}

type Range struct {
	Loc Loc
	Len int
}

func (r Range) End() int {
	return r.Loc.Start + r.Len
}

// Span is a range of bytes in the component source. The start is inclusive,
// the end is exclusive.
type Span struct {
	Start, End int
}

// Locator resolves byte offsets into line/column pairs by binary search
// over a precomputed table of line-start offsets. It replaces the
// sourcemap chunk-building some compilers use for this purpose; this
// module never emits source maps, only line/column positions for
// diagnostics.
type Locator struct {
	filename    string
	lineStarts  []int
	sourceLen   int
}

// NewLocator scans source once for newlines and records where each line
// begins, so later lookups are O(log n) instead of O(n).
func NewLocator(filename string, source string) *Locator {
	lineStarts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &Locator{
		filename:   filename,
		lineStarts: lineStarts,
		sourceLen:  len(source),
	}
}

// Locate returns the 1-based line, 1-based column (counted in bytes), and
// a Length taken from the given Range, clamped to the recorded source
// length so an off-by-one span at EOF doesn't panic.
func (l *Locator) Locate(r Range) DiagnosticLocation {
	offset := r.Loc.Start
	if offset < 0 {
		offset = 0
	}
	if offset > l.sourceLen {
		offset = l.sourceLen
	}

	line := sort.Search(len(l.lineStarts), func(i int) bool {
		return l.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}

	return DiagnosticLocation{
		File:   l.filename,
		Line:   line + 1,
		Column: offset - l.lineStarts[line] + 1,
		Length: r.Len,
	}
}
