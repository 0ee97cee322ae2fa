package layout

import "slices"

// Node is a concrete Layoutable element. It owns an ordered list of
// children and supports deferred layout through SuspendLayout/ResumeLayout
// and Batch.
type Node struct {
	// Name identifies the node in reports; the engine ignores it.
	Name string

	// Configuration (user-set)
	style     Style
	preferred Size
	children  []*Node

	// Computed (set by layout engine)
	layout Layout

	// Internal state
	dirty     bool  // Needs recalculation
	parent    *Node // Back-pointer for dirty propagation
	suspended int   // SuspendLayout depth
	pending   bool  // PerformLayout requested while suspended

	watchers      []layoutWatcher
	nextWatcherID uint64
}

type layoutWatcher struct {
	id uint64
	fn func(prev, next Rect)
}

// Unbind removes a registered observer.
type Unbind func()

// NewNode creates a new node with the given style.
func NewNode(style Style) *Node {
	return &Node{
		style: style,
		dirty: true, // New nodes need layout
	}
}

// AddChild appends children and marks this node dirty.
// A child already owned by another node is moved.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		n.children = append(n.children, child)
	}
	n.MarkDirty()
}

// RemoveChild removes a child by pointer and marks dirty. The order of the
// remaining children is preserved. Returns true if the child was found.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	n.MarkDirty()
	return true
}

// Children returns the node's children in order.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the owning node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Style returns the node's layout style.
func (n *Node) Style() Style {
	return n.style
}

// SetStyle updates the style and marks the node dirty.
func (n *Node) SetStyle(style Style) {
	n.style = style
	n.MarkDirty()
}

// UpdateStyle applies fn to a copy of the style and stores the result.
func (n *Node) UpdateStyle(fn func(*Style)) {
	style := n.style
	fn(&style)
	n.SetStyle(style)
}

// SetPreferredSize sets the content size reported to the engine.
func (n *Node) SetPreferredSize(s Size) {
	n.preferred = s
	n.MarkDirty()
}

// SetBounds sets the node's current bounds. Its size also becomes the base
// size the engine starts from on the next pass.
func (n *Node) SetBounds(r Rect) {
	n.layout.Rect = r
	n.layout.Base = r.Size()
	n.MarkDirty()
}

// Bounds returns the node's bounds in its parent's client coordinates.
func (n *Node) Bounds() Rect {
	return n.layout.Rect
}

// Tracks returns the resolved column widths and row heights from the last
// pass. Both are nil unless the node uses LayoutTable.
func (n *Node) Tracks() (columns, rows []int) {
	return n.layout.Columns, n.layout.Rows
}

// MarkDirty marks this node and all ancestors as needing recalculation.
func (n *Node) MarkDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

// Root returns the topmost ancestor of n.
func (n *Node) Root() *Node {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// SuspendLayout defers PerformLayout calls on this node's tree until the
// matching ResumeLayout. Calls nest.
func (n *Node) SuspendLayout() {
	n.suspended++
}

// ResumeLayout ends one SuspendLayout. When the outermost suspension ends and
// performLayout is true, one layout pass runs if anything is dirty or a pass
// was requested meanwhile.
func (n *Node) ResumeLayout(performLayout bool, opts ...Option) {
	if n.suspended == 0 {
		return
	}
	n.suspended--
	if n.suspended > 0 || !performLayout {
		return
	}
	if n.pending || n.Root().dirty {
		n.pending = false
		n.PerformLayout(opts...)
	}
}

// Batch runs fn with layout suspended and performs a single pass afterwards.
//
// Example:
//
//	panel.Batch(func() {
//	    panel.AddChild(a, b, c)
//	    panel.UpdateStyle(func(s *layout.Style) { s.Dock = layout.DockBottom })
//	})
//	// One layout pass here, not four
func (n *Node) Batch(fn func(), opts ...Option) {
	n.SuspendLayout()
	defer n.ResumeLayout(true, opts...)
	fn()
}

// PerformLayout lays out the whole tree n belongs to, so auto-size changes
// reach n's ancestors. If n or an ancestor is suspended the pass is deferred
// to the outermost ResumeLayout.
func (n *Node) PerformLayout(opts ...Option) {
	for node := n; node != nil; node = node.parent {
		if node.suspended > 0 {
			node.pending = true
			return
		}
	}
	Calculate(n.Root(), opts...)
}

// OnLayout registers fn to run synchronously whenever a layout pass changes
// this node's bounds.
func (n *Node) OnLayout(fn func(prev, next Rect)) Unbind {
	n.nextWatcherID++
	id := n.nextWatcherID
	n.watchers = append(n.watchers, layoutWatcher{id: id, fn: fn})
	return func() {
		n.watchers = slices.DeleteFunc(n.watchers, func(w layoutWatcher) bool { return w.id == id })
	}
}

// --- Implement Layoutable interface ---

// LayoutStyle returns the layout style properties for this node.
func (n *Node) LayoutStyle() Style {
	return n.style
}

// LayoutChildren returns the children to be laid out.
func (n *Node) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(n.children))
	for i, child := range n.children {
		result[i] = child
	}
	return result
}

// PreferredSize returns the content size set with SetPreferredSize.
func (n *Node) PreferredSize() Size {
	return n.preferred
}

// SetLayout is called by the layout engine to store computed layout.
func (n *Node) SetLayout(l Layout) {
	old := n.layout.Rect
	n.layout = l
	if old == l.Rect {
		return
	}
	for _, w := range slices.Clone(n.watchers) {
		w.fn(old, l.Rect)
	}
}

// GetLayout returns the last computed layout.
func (n *Node) GetLayout() Layout {
	return n.layout
}

// IsDirty returns whether this node needs recalculation.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// SetDirty marks this node as needing recalculation or not.
func (n *Node) SetDirty(dirty bool) {
	n.dirty = dirty
}
