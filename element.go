package mathlayout

// Layout gap and padding constants, as fractions of the current em.
const (
	// rowGapEm is the vertical gap between consecutive rows.
	rowGapEm = 0.5

	// colGapEm is the horizontal gap between consecutive columns.
	colGapEm = 0.5

	// verticalPadding is the extra height a delimiter stretches over,
	// relative to the body height.
	verticalPadding = 0.1

	// delimShortFallEm reduces a delimiter's stretch target so the glyph
	// does not overshoot the visual target.
	delimShortFallEm = 0.1
)

// Element is a layoutable math element. Laying it out pushes one or more
// fragments into the context's output stream, or fails without pushing
// anything.
type Element interface {
	Content

	// Layout lays the element out under the context's current style.
	Layout(ctx *Context) error
}

// layoutVecBody lays out a single column of cells under the reduced
// denominator style and stacks them with a fixed row gap. The gap is scaled
// at the enclosing style, not the reduced one.
func layoutVecBody(ctx *Context, column []Content, align Alignment) (*Frame, error) {
	gap := rowGapEm * ctx.Em()

	restore := ctx.PushStyle(ctx.Style().ForDenominator())
	defer restore()

	cells := make([]Cell, 0, len(column))
	for _, child := range column {
		cell, err := ctx.layoutCell(child)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
	return stackCells(cells, align, gap, 0), nil
}

// layoutMatBody arranges a rectangular grid of cells. Row bands come from
// the per-row maximum ascent and descent; column widths and split offsets
// come from merging each column's alignment points.
func layoutMatBody(ctx *Context, rows [][]Content) (*Frame, error) {
	rowGap := rowGapEm * ctx.Em()
	colGap := colGapEm * ctx.Em()

	nrows := len(rows)
	ncols := 0
	if nrows > 0 {
		ncols = len(rows[0])
	}
	if nrows == 0 || ncols == 0 {
		return NewFrame(Size{}), nil
	}

	type band struct {
		ascent, descent float64
	}
	heights := make([]band, nrows)

	// Single pass per axis: one layout pass records row bands and collects
	// columns, then each column is aligned and placed.
	cols := make([][]Cell, ncols)
	err := func() error {
		restore := ctx.PushStyle(ctx.Style().ForDenominator())
		defer restore()
		for i, row := range rows {
			for j, content := range row {
				cell, err := ctx.layoutCell(content)
				if err != nil {
					return err
				}
				if a := cell.Ascent(); a > heights[i].ascent {
					heights[i].ascent = a
				}
				if d := cell.Descent(); d > heights[i].descent {
					heights[i].descent = d
				}
				cols[j] = append(cols[j], cell)
			}
		}
		return nil
	}()
	if err != nil {
		return nil, err
	}

	totalHeight := rowGap * float64(nrows-1)
	for _, band := range heights {
		totalHeight += band.ascent + band.descent
	}

	frame := NewFrame(Size{Height: totalHeight})
	x := 0.0
	for _, col := range cols {
		res := alignments(col)
		y := 0.0
		for i, cell := range col {
			placed := cell.realize(res, AlignCenter)
			frame.pushFrame(Pt(x, y+heights[i].ascent-placed.Ascent()), placed)
			y += heights[i].ascent + heights[i].descent + rowGap
		}
		x += res.Width + colGap
	}
	frame.size.Width = x - colGap

	Logger().Debug("matrix body laid out",
		"rows", nrows, "cols", ncols,
		"width", frame.Width(), "height", frame.Height())

	return frame, nil
}

// layoutDelimiters wraps a finished body frame with optional stretched
// delimiter glyphs and emits the pieces into the output stream: left glyph,
// body, right glyph. The body is re-baselined so it centers on the math
// axis; each glyph stretches to the padded target height, reduced by the
// short-fall, and is centered on the same axis. A char of 0 omits that
// side.
func layoutDelimiters(ctx *Context, body *Frame, left, right rune, span Span) error {
	axis := ctx.AxisHeight()
	shortFall := delimShortFallEm * ctx.Em()
	height := body.Height()
	target := height * (1 + verticalPadding)
	body.setBaseline(height/2 + axis)

	// Assemble before pushing so a missing glyph emits nothing at all.
	frags := make([]Fragment, 0, 3)
	if left != 0 {
		glyph, err := NewGlyphFragment(ctx, left, span)
		if err != nil {
			return err
		}
		glyph.StretchVertical(target, shortFall)
		glyph.CenterOnAxis(axis)
		frags = append(frags, glyph)
	}

	frags = append(frags, NewFrameFragment(body))

	if right != 0 {
		glyph, err := NewGlyphFragment(ctx, right, span)
		if err != nil {
			return err
		}
		glyph.StretchVertical(target, shortFall)
		glyph.CenterOnAxis(axis)
		frags = append(frags, glyph)
	}

	for _, f := range frags {
		ctx.Push(f)
	}
	return nil
}
