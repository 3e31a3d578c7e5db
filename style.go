package mathlayout

// MathSize is the size class of a rendering style. Each class maps to a
// scale factor applied to the base font size.
type MathSize int

const (
	// SizeDisplay is the size of equations set on their own line.
	SizeDisplay MathSize = iota
	// SizeText is the size of inline math.
	SizeText
	// SizeScript is the size of superscripts and subscripts.
	SizeScript
	// SizeScriptScript is the size of second-level scripts.
	SizeScriptScript
)

// String returns the string representation of the size class.
func (s MathSize) String() string {
	switch s {
	case SizeDisplay:
		return "Display"
	case SizeText:
		return "Text"
	case SizeScript:
		return "Script"
	case SizeScriptScript:
		return "ScriptScript"
	default:
		return "Unknown"
	}
}

// Scale returns the scale factor for the size class relative to the base
// font size.
func (s MathSize) Scale() float64 {
	switch s {
	case SizeScript:
		return 0.7
	case SizeScriptScript:
		return 0.5
	default:
		return 1.0
	}
}

// Style is an immutable rendering style. Deriving a related style returns a
// new value.
type Style struct {
	// Size is the style's size class.
	Size MathSize

	// Cramped styles suppress raised exponent placement; carried so nested
	// content renders consistently, it does not affect the grid itself.
	Cramped bool
}

// ForDenominator returns the reduced style used for fraction denominators.
// Vector, matrix, and cases cells are all laid out under this style.
func (s Style) ForDenominator() Style {
	size := s.Size
	switch s.Size {
	case SizeDisplay:
		size = SizeText
	case SizeText:
		size = SizeScript
	default:
		size = SizeScriptScript
	}
	return Style{Size: size, Cramped: true}
}
