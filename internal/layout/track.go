package layout

import "fmt"

// SizeType specifies how a table track is sized.
type SizeType uint8

const (
	SizeAutoSize SizeType = iota // Largest content among single-track children
	SizeAbsolute                 // Fixed number of units
	SizePercent                  // Share of the space left after other tracks
)

// String returns the lower-case name of the size type.
func (t SizeType) String() string {
	switch t {
	case SizeAbsolute:
		return "absolute"
	case SizePercent:
		return "percent"
	default:
		return "auto"
	}
}

// TrackStyle sizes one table column or row.
type TrackStyle struct {
	SizeType SizeType
	Value    float64
}

// Absolute returns a track style with a fixed size.
func Absolute(n int) TrackStyle {
	return TrackStyle{SizeType: SizeAbsolute, Value: float64(n)}
}

// Percent returns a track style taking p percent of the remaining space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) TrackStyle {
	return TrackStyle{SizeType: SizePercent, Value: p}
}

// AutoSize returns a track style sized to its content.
func AutoSize() TrackStyle {
	return TrackStyle{SizeType: SizeAutoSize}
}

// String formats the track the way scene files spell it.
func (t TrackStyle) String() string {
	if t.SizeType == SizeAutoSize {
		return "auto"
	}
	return fmt.Sprintf("%s:%g", t.SizeType, t.Value)
}

// trackAt returns the style for track i; tracks past the end of the style
// list are AutoSize.
func trackAt(styles []TrackStyle, i int) TrackStyle {
	if i < len(styles) {
		return styles[i]
	}
	return AutoSize()
}
