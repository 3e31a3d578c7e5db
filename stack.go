package mathlayout

// stackCells lays a column of cells top to bottom with a fixed gap between
// consecutive cells, merging their alignment points first. The resulting
// frame's baseline is taken from the cell at baselineIndex. An empty column
// yields a zero-size frame.
func stackCells(cells []Cell, align Alignment, gap float64, baselineIndex int) *Frame {
	if len(cells) == 0 {
		return NewFrame(Size{})
	}

	res := alignments(cells)

	realized := make([]*Frame, len(cells))
	height := gap * float64(len(cells)-1)
	for i, c := range cells {
		realized[i] = c.realize(res, align)
		height += realized[i].Height()
	}

	out := NewFrame(Size{Width: res.Width, Height: height})
	y := 0.0
	for i, f := range realized {
		if i == baselineIndex {
			out.setBaseline(y + f.Baseline())
		}
		out.pushFrame(Pt(0, y), f)
		y += f.Height() + gap
	}
	return out
}
