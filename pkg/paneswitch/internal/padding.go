package internal

// Padding defines spacing in pixels on all four sides of an element.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformPadding creates a Padding with the same value on all sides.
// Negative values are treated as zero.
func UniformPadding(value int) Padding {
	value = max(value, 0)
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}
