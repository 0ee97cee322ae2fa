package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-panel/internal/layout"
)

// Tree is a built scene: the root node plus a name index.
type Tree struct {
	Root  *layout.Node
	nodes map[string]*layout.Node
	order []*layout.Node
	depth map[*layout.Node]int
}

// Lookup returns the node with the given name.
func (t *Tree) Lookup(name string) (*layout.Node, bool) {
	n, ok := t.nodes[name]
	return n, ok
}

// Build creates the node tree the scene describes. Unnamed nodes are named
// after their parent and index, e.g. "form/2".
func (s *Scene) Build() (*Tree, error) {
	t := &Tree{
		nodes: make(map[string]*layout.Node),
		depth: make(map[*layout.Node]int),
	}
	name := s.Name
	if name == "" {
		name = "root"
	}
	root, err := t.build(s.NodeSpec, name, 0)
	if err != nil {
		return nil, err
	}
	t.Root = root
	return t, nil
}

func (t *Tree) build(spec NodeSpec, name string, depth int) (*layout.Node, error) {
	if _, dup := t.nodes[name]; dup {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	style, err := spec.style()
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", name, err)
	}

	n := layout.NewNode(style)
	n.Name = name
	t.nodes[name] = n
	t.order = append(t.order, n)
	t.depth[n] = depth

	if spec.Bounds != nil {
		r, err := parseRect(spec.Bounds)
		if err != nil {
			return nil, fmt.Errorf("node %q bounds: %w", name, err)
		}
		n.SetBounds(r)
	}
	if spec.Preferred != nil {
		if len(spec.Preferred) != 2 {
			return nil, fmt.Errorf("node %q preferred: %w", name, ErrBadSize)
		}
		n.SetPreferredSize(layout.NewSize(spec.Preferred[0], spec.Preferred[1]))
	}

	for i, childSpec := range spec.Children {
		childName := childSpec.Name
		if childName == "" {
			childName = name + "/" + strconv.Itoa(i)
		}
		child, err := t.build(childSpec, childName, depth+1)
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

// style converts the textual fields of a node into a layout style.
func (spec NodeSpec) style() (layout.Style, error) {
	s := layout.DefaultStyle()
	var err error

	if s.Layout, err = parseStrategy(spec.Layout); err != nil {
		return s, err
	}
	if s.Dock, err = parseDock(spec.Dock); err != nil {
		return s, err
	}
	if spec.AutoSizeMode != "" {
		if s.AutoSizeMode, err = parseAutoSizeMode(spec.AutoSizeMode); err != nil {
			return s, err
		}
	}
	if s.FlowDirection, err = parseDirection(spec.Direction); err != nil {
		return s, err
	}
	s.AutoSize = spec.AutoSize
	if spec.Wrap != nil {
		s.WrapContents = *spec.Wrap
	}
	if spec.Margin != nil {
		if s.Margin, err = parseEdges(spec.Margin); err != nil {
			return s, fmt.Errorf("margin: %w", err)
		}
	}
	if spec.Padding != nil {
		if s.Padding, err = parseEdges(spec.Padding); err != nil {
			return s, fmt.Errorf("padding: %w", err)
		}
	}
	if s.Columns, err = parseTracks(spec.Columns); err != nil {
		return s, fmt.Errorf("columns: %w", err)
	}
	if s.Rows, err = parseTracks(spec.Rows); err != nil {
		return s, fmt.Errorf("rows: %w", err)
	}
	s.ColumnCount = spec.ColumnCount
	s.RowCount = spec.RowCount
	s.CellSpacing = spec.CellSpacing
	if spec.Cell != nil {
		if len(spec.Cell) != 2 {
			return s, ErrBadCell
		}
		s.Cell = &layout.Cell{Column: spec.Cell[0], Row: spec.Cell[1]}
	}
	if spec.ColumnSpan != 0 {
		s.ColumnSpan = spec.ColumnSpan
	}
	if spec.RowSpan != 0 {
		s.RowSpan = spec.RowSpan
	}
	return s, nil
}

func parseStrategy(v string) (layout.Strategy, error) {
	switch strings.ToLower(v) {
	case "", "absolute":
		return layout.LayoutAbsolute, nil
	case "flow":
		return layout.LayoutFlow, nil
	case "table":
		return layout.LayoutTable, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, v)
	}
}

func parseDock(v string) (layout.DockStyle, error) {
	switch strings.ToLower(v) {
	case "", "none":
		return layout.DockNone, nil
	case "top":
		return layout.DockTop, nil
	case "bottom":
		return layout.DockBottom, nil
	case "left":
		return layout.DockLeft, nil
	case "right":
		return layout.DockRight, nil
	case "fill":
		return layout.DockFill, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDock, v)
	}
}

func parseAutoSizeMode(v string) (layout.AutoSizeMode, error) {
	switch strings.ToLower(v) {
	case "none":
		return layout.AutoSizeNone, nil
	case "growonly":
		return layout.GrowOnly, nil
	case "growandshrink":
		return layout.GrowAndShrink, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAutoSizeMode, v)
	}
}

func parseDirection(v string) (layout.FlowDirection, error) {
	switch strings.ToLower(v) {
	case "", "lefttoright":
		return layout.FlowLeftToRight, nil
	case "topdown":
		return layout.FlowTopDown, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, v)
	}
}

// parseEdges follows CSS shorthand: one value for all sides, two for
// vertical and horizontal, four for top, right, bottom, left.
func parseEdges(v []int) (layout.Edges, error) {
	switch len(v) {
	case 1:
		return layout.EdgeAll(v[0]), nil
	case 2:
		return layout.EdgeSymmetric(v[0], v[1]), nil
	case 4:
		return layout.EdgeTRBL(v[0], v[1], v[2], v[3]), nil
	default:
		return layout.Edges{}, fmt.Errorf("%w: got %d", ErrBadEdges, len(v))
	}
}

func parseRect(v []int) (layout.Rect, error) {
	if len(v) != 4 {
		return layout.Rect{}, fmt.Errorf("%w: got %d", ErrBadRect, len(v))
	}
	return layout.NewRect(v[0], v[1], v[2], v[3]), nil
}

// parseTracks reads "auto", "absolute:N" and "percent:N".
func parseTracks(v []string) ([]layout.TrackStyle, error) {
	if len(v) == 0 {
		return nil, nil
	}
	tracks := make([]layout.TrackStyle, len(v))
	for i, raw := range v {
		kind, value, hasValue := strings.Cut(strings.TrimSpace(raw), ":")
		switch strings.ToLower(kind) {
		case "auto", "autosize":
			tracks[i] = layout.AutoSize()
			continue
		case "absolute", "percent":
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownSizeType, raw)
		}
		if !hasValue {
			return nil, fmt.Errorf("%w: %q needs a value", ErrUnknownSizeType, raw)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("track %q: %w", raw, err)
		}
		if strings.EqualFold(kind, "absolute") {
			tracks[i] = layout.Absolute(int(f))
		} else {
			tracks[i] = layout.Percent(f)
		}
	}
	return tracks, nil
}
