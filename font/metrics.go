package font

// Metrics holds face-level metrics at a specific size.
// All values are in the same unit as the face size and describe distances
// from the baseline.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font
	// (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font.
	// Stored as a positive value, unlike the raw sfnt metric.
	Descent float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64

	// AxisHeight is the height of the mathematical axis above the baseline.
	// Math content (fraction rules, delimiters, operators) is centered on
	// this axis rather than on the baseline. Fonts without a MATH table
	// have no explicit axis height; the sfnt backend uses the conventional
	// fallback of half the x-height.
	AxisHeight float64
}

// Height returns the total font height (ascent + descent).
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent
}

// Rect is a glyph bounding box in a y-down coordinate system: MinY is the
// top edge (negative above the baseline), MaxY the bottom edge (positive
// below the baseline).
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of the box.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the vertical extent of the box.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Ascent returns the ink extent above the baseline (non-negative).
func (r Rect) Ascent() float64 {
	if r.MinY < 0 {
		return -r.MinY
	}
	return 0
}

// Descent returns the ink extent below the baseline (non-negative).
func (r Rect) Descent() float64 {
	if r.MaxY > 0 {
		return r.MaxY
	}
	return 0
}
