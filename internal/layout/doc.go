// Package layout implements a pure-Go dock, flow and table layout engine.
//
// Every container first docks its children against its content rectangle
// (Top, Bottom, Left, Right, then Fill), then hands the undocked remainder to
// its strategy: absolute positioning, a wrapping flow, or a table of
// Absolute/Percent/AutoSize tracks with column and row spans. Containers may
// auto-size to their content under the None, GrowOnly and GrowAndShrink
// policies. Types are re-exported through the root panel package.
//
// The two entry points are [Measure], which returns a node's preferred size
// without writing anything, and [Calculate], which arranges a [Layoutable]
// tree and stores bounds on every node.
package layout
