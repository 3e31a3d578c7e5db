package mathlayout

import "github.com/gogpu/mathlayout/font"

// GlyphFragment is a single stretchable glyph, used for delimiters. Its
// metrics start at the glyph's natural ink extents and are adjusted by
// StretchVertical and CenterOnAxis before the fragment is emitted.
type GlyphFragment struct {
	// Char is the glyph's source character.
	Char rune

	// GID is the glyph index in the font.
	GID font.GlyphID

	size    float64
	width   float64
	ascent  float64
	descent float64
	stretch float64
	span    Span
}

// NewGlyphFragment looks up the glyph for a character at the context's
// current scaled size. Returns a GlyphError if the font has no glyph for
// the character.
func NewGlyphFragment(ctx *Context, char rune, span Span) (*GlyphFragment, error) {
	face := ctx.Face()
	gid, ok := face.GlyphIndex(char)
	if !ok {
		return nil, &GlyphError{Char: char, Font: face.Source().Name(), Span: span}
	}
	bounds, _ := face.GlyphBounds(char)
	return &GlyphFragment{
		Char:    char,
		GID:     gid,
		size:    face.Size(),
		width:   face.GlyphAdvance(char),
		ascent:  bounds.Ascent(),
		descent: bounds.Descent(),
		stretch: 1,
		span:    span,
	}, nil
}

// Width implements Fragment.Width.
func (g *GlyphFragment) Width() float64 {
	return g.width
}

// Ascent implements Fragment.Ascent.
func (g *GlyphFragment) Ascent() float64 {
	return g.ascent
}

// Descent implements Fragment.Descent.
func (g *GlyphFragment) Descent() float64 {
	return g.descent
}

// Height returns the glyph's total vertical extent.
func (g *GlyphFragment) Height() float64 {
	return g.ascent + g.descent
}

// Stretch returns the vertical scale applied to the glyph's natural extent.
func (g *GlyphFragment) Stretch() float64 {
	return g.stretch
}

// StretchVertical stretches the glyph to the target height reduced by the
// short-fall. The glyph never shrinks below its natural extent.
func (g *GlyphFragment) StretchVertical(target, shortFall float64) {
	short := target - shortFall
	height := g.ascent + g.descent
	if short <= height || height <= 0 {
		return
	}
	ratio := short / height
	g.ascent *= ratio
	g.descent *= ratio
	g.stretch *= ratio
}

// CenterOnAxis re-baselines the glyph so its vertical center sits on the
// math axis. The glyph's extent is unchanged.
func (g *GlyphFragment) CenterOnAxis(axis float64) {
	h := g.ascent + g.descent
	g.ascent = h/2 + axis
	g.descent = h/2 - axis
}

// Frame implements Fragment.Frame.
func (g *GlyphFragment) Frame() *Frame {
	f := NewFrame(Size{Width: g.width, Height: g.ascent + g.descent})
	f.setBaseline(g.ascent)
	f.push(Item{
		Pos: Pt(0, 0),
		Glyph: &GlyphItem{
			Char:    g.Char,
			GID:     g.GID,
			Size:    g.size,
			Stretch: g.stretch,
		},
	})
	return f
}
