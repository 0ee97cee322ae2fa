package layout

// Layoutable is the interface for anything that can participate in layout calculation.
// The layout engine works entirely with this interface, enabling custom implementations.
type Layoutable interface {
	// LayoutStyle returns the layout style properties for this element.
	LayoutStyle() Style

	// LayoutChildren returns the children to be laid out, in order.
	// Order is docking order, flow order and cell assignment order.
	LayoutChildren() []Layoutable

	// PreferredSize returns the content size of a leaf element, computed
	// outside the engine (text metrics and the like). Containers with a
	// strategy or children are measured by the engine instead.
	PreferredSize() Size

	// SetLayout is called by the layout engine to store computed layout.
	SetLayout(Layout)

	// GetLayout returns the last computed layout. Its Rect location and
	// Base size are the element's starting bounds.
	GetLayout() Layout

	// IsDirty returns whether this element needs layout recalculation.
	IsDirty() bool

	// SetDirty marks this element as needing recalculation.
	SetDirty(dirty bool)
}
