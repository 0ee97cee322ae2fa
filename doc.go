// Package panel lays out rectangles the way desktop form toolkits do:
// children dock to the edges of their container, and whatever is left is
// handed to a flow or table strategy. Containers can auto-size to their
// content.
//
// Users import this single package for the complete public API: the
// geometry types, styles, the [Node] tree with deferred layout, and the
// [Calculate] and [Measure] entry points.
package panel
