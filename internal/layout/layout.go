package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Rect is the element's bounds in its parent's client coordinates.
	Rect Rect

	// Base is the element's own size before a dock or table cell stretched
	// it. The engine reads it as the element's current size, so arranged
	// bounds never feed back into the next pass.
	Base Size

	// ContentRect is the client area (0,0 at the element's top-left)
	// minus padding. Docking starts from here.
	ContentRect Rect

	// Remainder is ContentRect after docked children have carved their
	// strips. The container's strategy places undocked children here.
	Remainder Rect

	// Columns and Rows hold resolved track sizes for table containers.
	Columns []int
	Rows    []int
}
