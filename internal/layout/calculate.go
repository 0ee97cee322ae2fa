package layout

import "go.uber.org/zap"

// Calculate arranges the tree rooted at root. The root keeps its location;
// its size comes from its current bounds, adjusted by its auto-size policy.
// Every node's Layout is populated. Clean subtrees whose bounds did not
// change are skipped, so calling Calculate twice without mutation is a no-op.
func Calculate(root Layoutable, opts ...Option) {
	if root == nil {
		return
	}

	c := newCalculator(opts)
	style := c.styleOf(root)
	current := root.GetLayout().Rect
	size := c.sizeFor(root, style, Size{Width: Unbounded, Height: Unbounded})
	c.arrange(root, RectAt(current.Location(), size), size)
}

// Measure returns the preferred size of node when offered proposed space.
// Either dimension of proposed may be Unbounded. Nothing is written to the
// tree. The result excludes the node's own margin.
func Measure(node Layoutable, proposed Size, opts ...Option) Size {
	if node == nil {
		return Size{}
	}
	return newCalculator(opts).measure(node, proposed)
}

// sizeFor returns the size a node should be given: its current size, or,
// when it auto-sizes, its auto-size policy applied to its measured size.
func (c *calculator) sizeFor(node Layoutable, style Style, proposed Size) Size {
	current := node.GetLayout().Base
	if !style.AutoSize {
		return current.normalized()
	}
	return style.AutoSizeMode.Resolve(current, c.measure(node, proposed))
}

// measure computes a node's preferred size without side effects.
func (c *calculator) measure(node Layoutable, proposed Size) Size {
	style := c.styleOf(node)
	children := node.LayoutChildren()
	if len(children) == 0 && !style.isContainer() {
		return c.leafSize(node)
	}

	avail := proposed.Sub(style.Padding)
	need, used, rest := c.measureDocked(children, avail)
	free := c.undocked(children)

	switch style.Layout {
	case LayoutFlow:
		content := c.flow(Point{}, rest, free, style).preferred
		need = need.Max(Size{Width: used.Width + content.Width, Height: used.Height + content.Height})
	case LayoutTable:
		content := c.table(Point{}, rest, free, style).preferred
		need = need.Max(Size{Width: used.Width + content.Width, Height: used.Height + content.Height})
	default:
		// Absolute children are positioned in client coordinates, which
		// already include the leading padding.
		extent := c.absoluteExtent(free)
		need = need.Add(style.Padding).Max(Size{
			Width:  extent.Width + style.Padding.Right,
			Height: extent.Height + style.Padding.Bottom,
		})
		return need
	}
	return need.Add(style.Padding)
}

// leafSize returns the content size of a leaf, clamping negative values
// from a misbehaving content provider.
func (c *calculator) leafSize(node Layoutable) Size {
	p := node.PreferredSize()
	if p.Width < 0 || p.Height < 0 {
		c.log.Debug("negative preferred size clamped",
			zap.Int("width", p.Width), zap.Int("height", p.Height))
	}
	return p.normalized()
}

// absoluteExtent returns the far corner of all absolutely positioned
// children, margins included.
func (c *calculator) absoluteExtent(children []Layoutable) Size {
	var extent Size
	for _, child := range children {
		style := c.styleOf(child)
		loc := child.GetLayout().Rect.Location()
		s := c.sizeFor(child, style, Size{Width: Unbounded, Height: Unbounded})
		extent.Width = max(extent.Width, loc.X+s.Width+style.Margin.Right)
		extent.Height = max(extent.Height, loc.Y+s.Height+style.Margin.Bottom)
	}
	return extent
}

// arrange stores bounds and base on node and lays out its children inside
// the bounds. base is the size the node asked for before its parent
// stretched it.
func (c *calculator) arrange(node Layoutable, bounds Rect, base Size) {
	bounds = bounds.normalized()
	base = base.normalized()

	// Dirty propagates up, so a clean node at the same bounds guarantees
	// a clean subtree.
	if l := node.GetLayout(); !node.IsDirty() && l.Rect == bounds && l.Base == base {
		return
	}

	style := c.styleOf(node)
	children := node.LayoutChildren()

	// 1. Client area minus padding
	content := NewRect(0, 0, bounds.Width, bounds.Height).Inset(style.Padding)

	// 2. Dock edge and fill children
	childBounds, docked, remainder := c.dock(content, children)

	// Docked children keep their base; strategies report their own
	childBases := make([]Size, len(children))
	for i, child := range children {
		childBases[i] = child.GetLayout().Base
	}

	// 3. Hand the remainder to the strategy
	var free []int
	for i := range children {
		if !docked[i] {
			free = append(free, i)
		}
	}
	items := make([]Layoutable, len(free))
	for k, i := range free {
		items[k] = children[i]
	}

	result := Layout{Rect: bounds, Base: base, ContentRect: content, Remainder: remainder}
	switch style.Layout {
	case LayoutFlow:
		fl := c.flow(remainder.Location(), remainder.Size(), items, style)
		for k, i := range free {
			childBounds[i] = fl.bounds[k]
			childBases[i] = fl.bounds[k].Size()
		}
	case LayoutTable:
		tl := c.table(remainder.Location(), remainder.Size(), items, style)
		for k, i := range free {
			childBounds[i] = tl.bounds[k]
			childBases[i] = tl.bases[k]
		}
		result.Columns = tl.columns
		result.Rows = tl.rows
	default:
		for _, i := range free {
			child := children[i]
			s := c.sizeFor(child, c.styleOf(child), Size{Width: Unbounded, Height: Unbounded})
			childBounds[i] = RectAt(child.GetLayout().Rect.Location(), s)
			childBases[i] = s
		}
	}

	// 4. Store computed layout and clear dirty flag
	node.SetLayout(result)
	node.SetDirty(false)

	// 5. Recurse
	for i, child := range children {
		c.arrange(child, childBounds[i], childBases[i])
	}
}

// styleOf returns a node's style with invalid values clamped.
func (c *calculator) styleOf(node Layoutable) Style {
	s := node.LayoutStyle()
	if m := s.Margin.normalized(); m != s.Margin {
		c.log.Debug("negative margin clamped", zap.Any("margin", s.Margin))
		s.Margin = m
	}
	if p := s.Padding.normalized(); p != s.Padding {
		c.log.Debug("negative padding clamped", zap.Any("padding", s.Padding))
		s.Padding = p
	}
	if s.ColumnSpan < 1 {
		s.ColumnSpan = 1
	}
	if s.RowSpan < 1 {
		s.RowSpan = 1
	}
	return s
}

// undocked returns the children left for the strategy, in order.
func (c *calculator) undocked(children []Layoutable) []Layoutable {
	var free []Layoutable
	for _, child := range children {
		if c.styleOf(child).Dock == DockNone {
			free = append(free, child)
		}
	}
	return free
}
