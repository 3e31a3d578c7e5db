package mathlayout

// Alignment specifies how cells are placed horizontally within their
// column.
type Alignment int

const (
	// AlignLeft places cells flush with the column's left edge.
	AlignLeft Alignment = iota
	// AlignCenter centers cells within the column width.
	AlignCenter
	// AlignRight places cells flush with the column's right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// AlignmentResult is the merged set of alignment-point offsets for one
// column of cells, plus the resulting column width.
type AlignmentResult struct {
	// Points are the merged split offsets from the column's left edge.
	// Empty when no cell in the column declares an alignment point.
	Points []float64

	// Width is the column's final width: the maximum extent any cell
	// occupies once its segments sit at the merged points.
	Width float64
}

// alignments merges the alignment points of a column of cells.
//
// For every segment index the merged segment width is the maximum over all
// cells, and the merged points are the running sums of those widths. The
// result depends only on the cells' segment widths, not on their order, and
// widening any one cell can only widen (or keep) the column.
func alignments(cells []Cell) AlignmentResult {
	maxSegs := 0
	for _, c := range cells {
		if n := len(c.segments); n > maxSegs {
			maxSegs = n
		}
	}
	if maxSegs == 0 {
		return AlignmentResult{}
	}

	segWidths := make([]float64, maxSegs)
	for _, c := range cells {
		for i, seg := range c.segments {
			if w := seg.Width(); w > segWidths[i] {
				segWidths[i] = w
			}
		}
	}

	var points []float64
	if maxSegs > 1 {
		points = make([]float64, 0, maxSegs-1)
	}
	width := 0.0
	for i, w := range segWidths {
		width += w
		if i < maxSegs-1 {
			points = append(points, width)
		}
	}
	return AlignmentResult{Points: points, Width: width}
}
