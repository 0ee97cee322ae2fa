package layout

// Dock resolves docking for children against content. It returns bounds for
// every child (zero for children with DockNone) and the rectangle left over
// for the container's strategy.
func Dock(content Rect, children []Layoutable, opts ...Option) (bounds []Rect, remainder Rect) {
	bounds, _, remainder = newCalculator(opts).dock(content, children)
	return bounds, remainder
}

// dock carves edge-docked children from content in order, then gives the
// first Fill child whatever is left. Later Fill children receive an empty
// rectangle at the remainder's origin.
func (c *calculator) dock(content Rect, children []Layoutable) ([]Rect, []bool, Rect) {
	bounds := make([]Rect, len(children))
	docked := make([]bool, len(children))
	rest := content.normalized()

	var fills []int
	for i, child := range children {
		style := c.styleOf(child)
		switch style.Dock {
		case DockNone:
			continue
		case DockFill:
			docked[i] = true
			fills = append(fills, i)
			continue
		}
		docked[i] = true

		size := c.dockedSize(child, style, rest.Size())
		thickness := size.Width + style.Margin.Horizontal()
		if style.Dock.vertical() {
			thickness = size.Height + style.Margin.Vertical()
		}

		var strip Rect
		strip, rest = rest.Carve(style.Dock.side(), thickness)
		bounds[i] = strip.Inset(style.Margin)
	}

	for _, i := range fills {
		bounds[i] = rest.Inset(c.styleOf(children[i]).Margin)
		rest = Rect{X: rest.X, Y: rest.Y}
	}

	return bounds, docked, rest
}

// measureDocked is the size-only counterpart of dock. It returns the space
// docked children need, how much of each dimension they consume, and the
// space left for the strategy. avail dimensions may be Unbounded.
func (c *calculator) measureDocked(children []Layoutable, avail Size) (need, used, rest Size) {
	rest = avail

	var fills []int
	for i, child := range children {
		style := c.styleOf(child)
		switch style.Dock {
		case DockNone:
			continue
		case DockFill:
			fills = append(fills, i)
			continue
		}

		m := style.Margin
		size := c.dockedSize(child, style, rest)
		if style.Dock.vertical() {
			need.Width = max(need.Width, used.Width+size.Width+m.Horizontal())
			t := size.Height + m.Vertical()
			used.Height += t
			rest.Height = shrink(rest.Height, t)
		} else {
			need.Height = max(need.Height, used.Height+size.Height+m.Vertical())
			t := size.Width + m.Horizontal()
			used.Width += t
			rest.Width = shrink(rest.Width, t)
		}
	}

	for _, i := range fills {
		child := children[i]
		style := c.styleOf(child)
		size := c.sizeFor(child, style, rest.Sub(style.Margin)).Add(style.Margin)
		need = need.Max(Size{Width: used.Width + size.Width, Height: used.Height + size.Height})
		rest = Size{}
	}

	need = need.Max(used)
	return need, used, rest
}

// dockedSize returns the size of an edge-docked child. An auto-sizing child
// takes its measured size under both GrowOnly and GrowAndShrink; the other
// dimension is proposed from the space left.
func (c *calculator) dockedSize(child Layoutable, style Style, avail Size) Size {
	if !style.AutoSize || style.AutoSizeMode == AutoSizeNone {
		return child.GetLayout().Base.normalized()
	}

	proposed := Size{Width: Unbounded, Height: shrink(avail.Height, style.Margin.Vertical())}
	if style.Dock.vertical() {
		proposed = Size{Width: shrink(avail.Width, style.Margin.Horizontal()), Height: Unbounded}
	}
	return c.measure(child, proposed)
}
