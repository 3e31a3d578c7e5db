package mathlayout

// Arg is one positional argument to NewMat: either a scalar cell or an
// array of cells. The distinction drives the row/column normalization rule.
type Arg struct {
	isArray bool
	cells   []Content
}

// Scalar creates a scalar matrix argument. A nil cell becomes empty
// content.
func Scalar(c Content) Arg {
	if c == nil {
		c = NewEmpty()
	}
	return Arg{cells: []Content{c}}
}

// Array creates an array matrix argument. Nil cells become empty content.
func Array(cells ...Content) Arg {
	return Arg{isArray: true, cells: sanitize(cells)}
}

// MatElem is a matrix: a rectangular grid of cells. Content in cells that
// share a column can be aligned with explicit alignment markers.
type MatElem struct {
	delim Delimiter
	rows  [][]Content
	span  Span
}

// NewMat creates a matrix from positional arguments, normalizing them into
// rows once at construction:
//
//   - If any argument is an array, every argument forms one row. Each
//     element of an array argument becomes one cell; a scalar argument
//     becomes a single-cell row.
//   - If no argument is an array, all arguments collectively form a single
//     row.
//
// After classification, every row is right-padded with empty cells to the
// width of the longest row, so the grid is rectangular for the element's
// lifetime. The default delimiter is parentheses.
func NewMat(args []Arg, opts ...Option) *MatElem {
	cfg := applyOptions(DelimParen, opts)

	anyArray := false
	for _, arg := range args {
		if arg.isArray {
			anyArray = true
			break
		}
	}

	var rows [][]Content
	width := 0
	if anyArray {
		rows = make([][]Content, 0, len(args))
		for _, arg := range args {
			row := make([]Content, len(arg.cells))
			copy(row, arg.cells)
			if len(row) > width {
				width = len(row)
			}
			rows = append(rows, row)
		}
	} else if len(args) > 0 {
		row := make([]Content, 0, len(args))
		for _, arg := range args {
			row = append(row, arg.cells...)
		}
		width = len(row)
		rows = [][]Content{row}
	}

	for i, row := range rows {
		for len(row) < width {
			row = append(row, NewEmpty())
		}
		rows[i] = row
	}

	return &MatElem{delim: cfg.delim, rows: rows, span: cfg.span}
}

// NewMatRows creates a matrix directly from pre-built rows, applying the
// same right-padding normalization as NewMat.
func NewMatRows(rows [][]Content, opts ...Option) *MatElem {
	args := make([]Arg, len(rows))
	for i, row := range rows {
		args[i] = Array(row...)
	}
	return NewMat(args, opts...)
}

// Delim returns the configured delimiter.
func (e *MatElem) Delim() Delimiter { return e.delim }

// Rows returns the normalized rectangular grid. The returned slices are
// owned by the element and must not be modified.
func (e *MatElem) Rows() [][]Content { return e.rows }

// Span implements Content.Span.
func (e *MatElem) Span() Span { return e.span }

func (e *MatElem) isContent() {}

// Layout implements Element.Layout: the grid body wrapped in the configured
// delimiter pair. A matrix with zero rows or columns yields a zero-size
// body.
func (e *MatElem) Layout(ctx *Context) error {
	body, err := layoutMatBody(ctx, e.rows)
	if err != nil {
		return err
	}
	return layoutDelimiters(ctx, body, e.delim.Open(), e.delim.Close(), e.span)
}
