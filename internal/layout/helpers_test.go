package layout

// leaf returns a non auto-sizing node with the given size and margin.
func leaf(w, h int, margin Edges) *Node {
	s := DefaultStyle()
	s.Margin = margin
	n := NewNode(s)
	n.SetBounds(NewRect(0, 0, w, h))
	return n
}

// label mimics a text label: no auto-size, 3 units of horizontal margin.
func label(w, h int) *Node {
	return leaf(w, h, EdgeSymmetric(0, 3))
}

// container returns a node with the given strategy and no margin.
func container(strategy Strategy, bounds Rect) *Node {
	s := DefaultStyle()
	s.Layout = strategy
	s.Margin = Edges{}
	n := NewNode(s)
	n.SetBounds(bounds)
	return n
}

func layoutables(nodes ...*Node) []Layoutable {
	result := make([]Layoutable, len(nodes))
	for i, n := range nodes {
		result[i] = n
	}
	return result
}

func boundsOf(nodes ...*Node) []Rect {
	result := make([]Rect, len(nodes))
	for i, n := range nodes {
		result[i] = n.Bounds()
	}
	return result
}
