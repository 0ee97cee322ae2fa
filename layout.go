// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package panel

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-panel/internal/layout"
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Side names one edge of a rectangle.
type Side = layout.Side

const (
	SideTop    = layout.SideTop
	SideBottom = layout.SideBottom
	SideLeft   = layout.SideLeft
	SideRight  = layout.SideRight
)

// Unbounded marks a proposed dimension with no constraint.
const Unbounded = layout.Unbounded

// DockStyle specifies which edge of the remaining space a child claims.
type DockStyle = layout.DockStyle

const (
	DockNone   = layout.DockNone
	DockTop    = layout.DockTop
	DockBottom = layout.DockBottom
	DockLeft   = layout.DockLeft
	DockRight  = layout.DockRight
	DockFill   = layout.DockFill
)

// AutoSizeMode specifies how an auto-sizing element follows its content.
type AutoSizeMode = layout.AutoSizeMode

const (
	AutoSizeNone  = layout.AutoSizeNone
	GrowOnly      = layout.GrowOnly
	GrowAndShrink = layout.GrowAndShrink
)

// Strategy selects how a container places its undocked children.
type Strategy = layout.Strategy

const (
	LayoutAbsolute = layout.LayoutAbsolute
	LayoutFlow     = layout.LayoutFlow
	LayoutTable    = layout.LayoutTable
)

// FlowDirection specifies the primary axis of a flow layout.
type FlowDirection = layout.FlowDirection

const (
	FlowLeftToRight = layout.FlowLeftToRight
	FlowTopDown     = layout.FlowTopDown
)

// SizeType specifies how a table track is sized.
type SizeType = layout.SizeType

const (
	SizeAutoSize = layout.SizeAutoSize
	SizeAbsolute = layout.SizeAbsolute
	SizePercent  = layout.SizePercent
)

// TrackStyle sizes one table column or row.
type TrackStyle = layout.TrackStyle

// Cell is an explicit table position.
type Cell = layout.Cell

// Style holds the layout properties for a node.
type Style = layout.Style

// LayoutResult holds the computed layout for a node.
type LayoutResult = layout.Layout

// TableResult holds the outcome of one table pass.
type TableResult = layout.TableResult

// Layoutable is the interface that nodes must implement for layout calculation.
type Layoutable = layout.Layoutable

// Node is the concrete Layoutable with deferred layout and observers.
type Node = layout.Node

// Unbind removes an observer registered with Node.OnLayout.
type Unbind = layout.Unbind

// Option configures a layout pass.
type Option = layout.Option

// DefaultMargin is the margin DefaultStyle gives every element.
var DefaultMargin = layout.DefaultMargin

// DefaultStyle returns a Style with default values.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// NewNode creates a node with the given style.
func NewNode(style Style) *Node {
	return layout.NewNode(style)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// RectAt creates a Rect at the given point with the given size.
func RectAt(p Point, s Size) Rect {
	return layout.RectAt(p, s)
}

// NewSize creates a Size with the given dimensions.
func NewSize(width, height int) Size {
	return layout.NewSize(width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// InsetRect returns a new Rect inset by the given amounts on each edge.
// The order follows CSS convention: top, right, bottom, left.
// This is a convenience function that wraps Rect.Inset(Edges).
func InsetRect(r Rect, top, right, bottom, left int) Rect {
	return r.Inset(layout.EdgeTRBL(top, right, bottom, left))
}

// Absolute returns a track style with a fixed size.
func Absolute(n int) TrackStyle {
	return layout.Absolute(n)
}

// Percent returns a track style taking p percent (0-100) of the space left
// after the other tracks.
func Percent(p float64) TrackStyle {
	return layout.Percent(p)
}

// AutoSize returns a track style sized to its content.
func AutoSize() TrackStyle {
	return layout.AutoSize()
}

// Calculate arranges the tree rooted at root.
func Calculate(root Layoutable, opts ...Option) {
	layout.Calculate(root, opts...)
}

// Measure returns the preferred size of node within proposed space.
func Measure(node Layoutable, proposed Size, opts ...Option) Size {
	return layout.Measure(node, proposed, opts...)
}

// Dock resolves docking for children against content.
func Dock(content Rect, children []Layoutable, opts ...Option) ([]Rect, Rect) {
	return layout.Dock(content, children, opts...)
}

// Flow places children in a flow inside remainder.
func Flow(remainder Rect, children []Layoutable, style Style, opts ...Option) ([]Rect, Size) {
	return layout.Flow(remainder, children, style, opts...)
}

// Table places children in the cells of a table filling remainder.
func Table(remainder Rect, children []Layoutable, style Style, opts ...Option) TableResult {
	return layout.Table(remainder, children, style, opts...)
}

// WithLogger reports clamped input to l at debug level.
func WithLogger(l *zap.Logger) Option {
	return layout.WithLogger(l)
}
