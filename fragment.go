package mathlayout

// Fragment is one unit in the layout output stream. Laying out an element
// pushes its fragments into the context; the caller's stacking layer places
// sibling fragments adjacently on a shared baseline.
type Fragment interface {
	// Frame realizes the fragment as a frame.
	Frame() *Frame

	// Width returns the fragment's width.
	Width() float64

	// Ascent returns the fragment's extent above the baseline.
	Ascent() float64

	// Descent returns the fragment's extent below the baseline.
	Descent() float64
}

// FrameFragment wraps a finished frame as a fragment.
type FrameFragment struct {
	frame *Frame
}

// NewFrameFragment creates a fragment from a finished frame.
func NewFrameFragment(f *Frame) *FrameFragment {
	return &FrameFragment{frame: f}
}

// Frame implements Fragment.Frame.
func (f *FrameFragment) Frame() *Frame {
	return f.frame
}

// Width implements Fragment.Width.
func (f *FrameFragment) Width() float64 {
	return f.frame.Width()
}

// Ascent implements Fragment.Ascent.
func (f *FrameFragment) Ascent() float64 {
	return f.frame.Ascent()
}

// Descent implements Fragment.Descent.
func (f *FrameFragment) Descent() float64 {
	return f.frame.Descent()
}

// fragmentsToFrame lines fragments up left to right on a shared baseline
// and returns the combined frame. Used when an element is nested inside a
// cell and its output stream must collapse into a single box.
func fragmentsToFrame(frags []Fragment) *Frame {
	if len(frags) == 0 {
		return NewFrame(Size{})
	}

	var width, ascent, descent float64
	for _, fr := range frags {
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
	for _, fr := range frags {
		out.pushFrame(Pt(x, ascent-fr.Ascent()), fr.Frame())
		x += fr.Width()
	}
	return out
}
