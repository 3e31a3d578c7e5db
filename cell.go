package mathlayout

// Cell is one laid-out cell: its content split into per-segment frames at
// explicit alignment markers. A cell without markers has a single segment;
// an empty cell has a single zero-size segment.
type Cell struct {
	segments []*Frame
	span     Span
}

// Width returns the cell's natural width: the sum of its segment widths.
func (c Cell) Width() float64 {
	w := 0.0
	for _, seg := range c.segments {
		w += seg.Width()
	}
	return w
}

// Ascent returns the cell's extent above the baseline.
func (c Cell) Ascent() float64 {
	a := 0.0
	for _, seg := range c.segments {
		if s := seg.Ascent(); s > a {
			a = s
		}
	}
	return a
}

// Descent returns the cell's extent below the baseline.
func (c Cell) Descent() float64 {
	d := 0.0
	for _, seg := range c.segments {
		if s := seg.Descent(); s > d {
			d = s
		}
	}
	return d
}

// Height returns the cell's total vertical extent.
func (c Cell) Height() float64 {
	return c.Ascent() + c.Descent()
}

// naturalFrame concatenates the cell's segments at their natural widths.
func (c Cell) naturalFrame() *Frame {
	if len(c.segments) == 1 {
		return c.segments[0]
	}
	return hcat(c.segments)
}

// realize places the cell into a frame of the column's final width.
//
// When the column declared alignment points, the cell's segments sit at the
// merged offsets and the cell is flush with the column's left edge.
// Otherwise the whole cell is positioned within the column width per the
// alignment policy.
func (c Cell) realize(res AlignmentResult, align Alignment) *Frame {
	if len(res.Points) > 0 {
		ascent := c.Ascent()
		out := NewFrame(Size{Width: res.Width, Height: c.Height()})
		out.setBaseline(ascent)
		for i, seg := range c.segments {
			x := 0.0
			if i > 0 {
				x = res.Points[i-1]
			}
			out.pushFrame(Pt(x, ascent-seg.Ascent()), seg)
		}
		return out
	}

	natural := c.naturalFrame()
	x := 0.0
	switch align {
	case AlignCenter:
		x = (res.Width - natural.Width()) / 2
	case AlignRight:
		x = res.Width - natural.Width()
	}
	out := NewFrame(Size{Width: res.Width, Height: natural.Height()})
	out.setBaseline(natural.Baseline())
	out.pushFrame(Pt(x, 0), natural)
	return out
}

// layoutCell lays out one content cell under the current style and splits
// it into segments at explicit alignment markers. The first failure aborts
// the cell; the originating error is tagged with the failing node's span
// and propagates unchanged through enclosing cells.
func (ctx *Context) layoutCell(content Content) (Cell, error) {
	segments := [][]*Frame{nil}

	var walk func(c Content) error
	walk = func(c Content) error {
		switch node := c.(type) {
		case *TextContent:
			if node.Text() == "" {
				return nil
			}
			face := ctx.Face()
			run, err := face.Shape(node.Text())
			if err != nil {
				return &LayoutError{Span: node.Span(), Err: err}
			}
			f := NewFrame(Size{Width: run.Advance, Height: run.Ascent + run.Descent})
			f.setBaseline(run.Ascent)
			f.push(Item{Text: &TextRun{Text: node.Text(), Size: face.Size(), Glyphs: run.Glyphs}})
			last := len(segments) - 1
			segments[last] = append(segments[last], f)
			return nil

		case *AlignPointContent:
			segments = append(segments, nil)
			return nil

		case *SequenceContent:
			for _, child := range node.Children() {
				if err := walk(child); err != nil {
					return err
				}
			}
			return nil

		case *EmptyContent:
			return nil

		case Element:
			f, err := ctx.collectFrame(node)
			if err != nil {
				// Already tagged at the inner failing cell.
				return err
			}
			last := len(segments) - 1
			segments[last] = append(segments[last], f)
			return nil

		default:
			return &LayoutError{Span: c.Span(), Err: ErrUnsupportedContent}
		}
	}

	if err := walk(content); err != nil {
		return Cell{}, err
	}

	frames := make([]*Frame, len(segments))
	for i, parts := range segments {
		frames[i] = hcat(parts)
	}
	return Cell{segments: frames, span: content.Span()}, nil
}
