package mathlayout

import "github.com/gogpu/mathlayout/font"

// Frame is a sized composite of laid-out children. A frame's size and
// children never change once the frame has been returned to a caller;
// further composition wraps frames in a new parent instead of mutating
// them. The one sanctioned exception is the baseline, which the delimiter
// wrapper re-assigns on a body frame it still owns.
type Frame struct {
	size        Size
	baseline    float64
	hasBaseline bool
	items       []Item
}

// Item is one positioned child of a frame. Exactly one of Frame, Text, and
// Glyph is non-nil. Pos is the child's top-left corner relative to the
// parent's top-left corner, y-down.
type Item struct {
	Pos   Point
	Frame *Frame
	Text  *TextRun
	Glyph *GlyphItem
}

// TextRun is a leaf item holding one shaped run of text.
type TextRun struct {
	// Text is the source text of the run.
	Text string

	// Size is the font size the run was shaped at.
	Size float64

	// Glyphs are the positioned glyphs, relative to the run origin on the
	// baseline.
	Glyphs []font.ShapedGlyph
}

// GlyphItem is a leaf item holding one delimiter glyph.
type GlyphItem struct {
	// Char is the delimiter character.
	Char rune

	// GID is the glyph index in the font.
	GID font.GlyphID

	// Size is the font size the glyph was selected at.
	Size float64

	// Stretch is the vertical scale applied to the glyph's natural extent
	// to reach its target height. 1 means unstretched.
	Stretch float64
}

// NewFrame creates an empty frame of the given size.
func NewFrame(size Size) *Frame {
	return &Frame{size: size}
}

// Size returns the frame's dimensions.
func (f *Frame) Size() Size {
	return f.size
}

// Width returns the frame's width.
func (f *Frame) Width() float64 {
	return f.size.Width
}

// Height returns the frame's height.
func (f *Frame) Height() float64 {
	return f.size.Height
}

// Baseline returns the distance from the frame's top edge to its baseline.
// A frame without an explicit baseline rests entirely above it.
func (f *Frame) Baseline() float64 {
	if !f.hasBaseline {
		return f.size.Height
	}
	return f.baseline
}

// Ascent returns the frame's extent above its baseline.
func (f *Frame) Ascent() float64 {
	return f.Baseline()
}

// Descent returns the frame's extent below its baseline.
func (f *Frame) Descent() float64 {
	return f.size.Height - f.Baseline()
}

// Items returns the frame's positioned children. The returned slice is
// owned by the frame and must not be modified.
func (f *Frame) Items() []Item {
	return f.items
}

// setBaseline assigns the baseline offset from the frame's top edge.
func (f *Frame) setBaseline(b float64) {
	f.baseline = b
	f.hasBaseline = true
}

// push appends a positioned child item.
func (f *Frame) push(item Item) {
	f.items = append(f.items, item)
}

// pushFrame appends a child frame at the given position.
func (f *Frame) pushFrame(pos Point, child *Frame) {
	f.push(Item{Pos: pos, Frame: child})
}

// hcat concatenates frames horizontally on a shared baseline and returns
// the combined frame. An empty input yields a zero-size frame.
func hcat(frames []*Frame) *Frame {
	if len(frames) == 0 {
		return NewFrame(Size{})
	}

	var width, ascent, descent float64
	for _, fr := range frames {
		width += fr.Width()
		if a := fr.Ascent(); a > ascent {
			ascent = a
		}
		if d := fr.Descent(); d > descent {
			descent = d
		}
	}

	out := NewFrame(Size{Width: width, Height: ascent + descent})
	out.setBaseline(ascent)
	x := 0.0
	for _, fr := range frames {
		out.pushFrame(Pt(x, ascent-fr.Ascent()), fr)
		x += fr.Width()
	}
	return out
}
