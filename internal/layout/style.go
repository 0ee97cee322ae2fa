package layout

// DockStyle specifies which edge of the remaining space a child claims
// before the container's strategy runs.
type DockStyle uint8

const (
	DockNone   DockStyle = iota // Left to the container's strategy
	DockTop                     // Full width strip along the top
	DockBottom                  // Full width strip along the bottom
	DockLeft                    // Full height strip along the left
	DockRight                   // Full height strip along the right
	DockFill                    // Whatever is left after edge docking
)

// side maps an edge dock style to the Side it carves from.
func (d DockStyle) side() Side {
	switch d {
	case DockBottom:
		return SideBottom
	case DockLeft:
		return SideLeft
	case DockRight:
		return SideRight
	default:
		return SideTop
	}
}

// vertical reports whether the dock style consumes height (Top/Bottom).
func (d DockStyle) vertical() bool {
	return d == DockTop || d == DockBottom
}

// String returns the lower-case name of the dock style.
func (d DockStyle) String() string {
	switch d {
	case DockTop:
		return "top"
	case DockBottom:
		return "bottom"
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	case DockFill:
		return "fill"
	default:
		return "none"
	}
}

// AutoSizeMode specifies how an auto-sizing element resizes to its content.
type AutoSizeMode uint8

const (
	AutoSizeNone  AutoSizeMode = iota // Size is never changed by content
	GrowOnly                          // Grows to fit content, never shrinks
	GrowAndShrink                     // Always exactly fits content
)

// Resolve applies the policy to a current size and a content preferred size.
func (m AutoSizeMode) Resolve(current, preferred Size) Size {
	switch m {
	case GrowOnly:
		return current.normalized().Max(preferred.normalized())
	case GrowAndShrink:
		return preferred.normalized()
	default:
		return current.normalized()
	}
}

// String returns the camel-case name of the mode.
func (m AutoSizeMode) String() string {
	switch m {
	case GrowOnly:
		return "growOnly"
	case GrowAndShrink:
		return "growAndShrink"
	default:
		return "none"
	}
}

// Strategy selects how a container places its undocked children.
type Strategy uint8

const (
	LayoutAbsolute Strategy = iota // Children keep their own location
	LayoutFlow                     // Children flow and optionally wrap
	LayoutTable                    // Children occupy table cells
)

// String returns the lower-case name of the strategy.
func (s Strategy) String() string {
	switch s {
	case LayoutFlow:
		return "flow"
	case LayoutTable:
		return "table"
	default:
		return "absolute"
	}
}

// FlowDirection specifies the primary axis of a flow layout.
type FlowDirection uint8

const (
	FlowLeftToRight FlowDirection = iota // Lines run horizontally, wrap downward
	FlowTopDown                          // Lines run vertically, wrap rightward
)

// Cell is an explicit table position.
type Cell struct {
	Column, Row int
}

// DefaultMargin is the margin every element starts with.
var DefaultMargin = EdgeAll(3)

// Style contains all layout properties for a node.
type Style struct {
	// Element properties
	Dock         DockStyle
	AutoSize     bool
	AutoSizeMode AutoSizeMode
	Margin       Edges
	Padding      Edges

	// Container strategy
	Layout Strategy

	// Flow properties
	FlowDirection FlowDirection
	WrapContents  bool

	// Table container properties
	Columns     []TrackStyle
	Rows        []TrackStyle
	ColumnCount int // 0 = one column per entry in Columns
	RowCount    int // Minimum row count; grows to fit placement
	CellSpacing int

	// Table item properties
	Cell       *Cell // nil = next free cell
	ColumnSpan int
	RowSpan    int
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		AutoSizeMode: GrowOnly,
		Margin:       DefaultMargin,
		WrapContents: true,
		ColumnSpan:   1,
		RowSpan:      1,
	}
}

// isContainer reports whether the style asks for a layout strategy beyond
// plain absolute positioning.
func (s Style) isContainer() bool {
	return s.Layout != LayoutAbsolute
}
