package mathlayout

import "github.com/gogpu/mathlayout/font"

// Context carries the ambient state of one layout pass: the font source,
// the base size, the rendering-style stack, and the output fragment stream.
//
// A Context is bound to one logical thread of execution through the layout
// tree; it is not safe for concurrent use.
type Context struct {
	source   *font.FontSource
	baseSize float64
	styles   []Style
	frags    []Fragment
}

// ContextOption configures a Context during creation.
type ContextOption func(*Context)

// WithStyle sets the initial rendering style. The default is an uncramped
// display style.
func WithStyle(s Style) ContextOption {
	return func(c *Context) {
		c.styles[0] = s
	}
}

// NewContext creates a layout context for the given font source and base
// font size (in points).
// Panics if source is nil (e.g. when a font.NewFontSource error was ignored).
func NewContext(source *font.FontSource, size float64, opts ...ContextOption) *Context {
	if source == nil {
		panic("mathlayout: font source is nil — did you check the error from font.NewFontSource?")
	}
	ctx := &Context{
		source:   source,
		baseSize: size,
		styles:   []Style{{Size: SizeDisplay}},
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// Style returns the current rendering style.
func (ctx *Context) Style() Style {
	return ctx.styles[len(ctx.styles)-1]
}

// PushStyle pushes a rendering style and returns the function that restores
// the previous style. Callers defer the restore so the stack is rewound on
// every exit path, including failures:
//
//	restore := ctx.PushStyle(ctx.Style().ForDenominator())
//	defer restore()
func (ctx *Context) PushStyle(s Style) (restore func()) {
	ctx.styles = append(ctx.styles, s)
	depth := len(ctx.styles) - 1
	return func() {
		ctx.styles = ctx.styles[:depth]
	}
}

// Em returns the current em length: the base size scaled by the current
// style.
func (ctx *Context) Em() float64 {
	return ctx.baseSize * ctx.Style().Size.Scale()
}

// Face returns a font face at the current scaled size.
func (ctx *Context) Face() font.Face {
	return ctx.source.Face(ctx.Em())
}

// AxisHeight returns the math axis height at the current scaled size.
func (ctx *Context) AxisHeight() float64 {
	return ctx.Face().Metrics().AxisHeight
}

// Push appends a fragment to the output stream.
func (ctx *Context) Push(f Fragment) {
	ctx.frags = append(ctx.frags, f)
}

// TakeFragments returns the accumulated output fragments and resets the
// stream.
func (ctx *Context) TakeFragments() []Fragment {
	frags := ctx.frags
	ctx.frags = nil
	return frags
}

// collectFrame lays out a nested element into a private stream and
// collapses its fragments into a single frame, leaving the surrounding
// stream untouched. On failure the surrounding stream is restored and no
// partial output leaks.
func (ctx *Context) collectFrame(e Element) (*Frame, error) {
	saved := ctx.frags
	ctx.frags = nil
	err := e.Layout(ctx)
	frags := ctx.frags
	ctx.frags = saved
	if err != nil {
		return nil, err
	}
	return fragmentsToFrame(frags), nil
}
