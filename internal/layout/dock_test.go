package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func docked(dock DockStyle, w, h int) *Node {
	n := leaf(w, h, Edges{})
	n.style.Dock = dock
	return n
}

func TestDock_Order(t *testing.T) {
	type tc struct {
		children      []*Node
		wantBounds    []Rect
		wantRemainder Rect
	}

	tests := map[string]tc{
		"all edges then fill": {
			children: []*Node{
				docked(DockTop, 50, 20),
				docked(DockLeft, 30, 50),
				docked(DockBottom, 50, 10),
				docked(DockRight, 40, 50),
				docked(DockFill, 0, 0),
				docked(DockNone, 5, 5),
			},
			wantBounds: []Rect{
				NewRect(0, 0, 200, 20),
				NewRect(0, 20, 30, 100),
				NewRect(30, 110, 170, 10),
				NewRect(160, 20, 40, 90),
				NewRect(30, 20, 130, 90),
				{},
			},
			wantRemainder: NewRect(30, 20, 0, 0),
		},
		"no fill leaves remainder": {
			children: []*Node{
				docked(DockBottom, 1, 30),
				docked(DockRight, 50, 1),
			},
			wantBounds: []Rect{
				NewRect(0, 90, 200, 30),
				NewRect(150, 0, 50, 90),
			},
			wantRemainder: NewRect(0, 0, 150, 90),
		},
		"fill declared first still runs after edges": {
			children: []*Node{
				docked(DockFill, 0, 0),
				docked(DockTop, 1, 20),
			},
			wantBounds: []Rect{
				NewRect(0, 20, 200, 100),
				NewRect(0, 0, 200, 20),
			},
			wantRemainder: NewRect(0, 20, 0, 0),
		},
		"second fill gets nothing": {
			children: []*Node{
				docked(DockFill, 0, 0),
				docked(DockFill, 0, 0),
			},
			wantBounds: []Rect{
				NewRect(0, 0, 200, 120),
				NewRect(0, 0, 0, 0),
			},
			wantRemainder: NewRect(0, 0, 0, 0),
		},
		"edges overflowing the content are clamped": {
			children: []*Node{
				docked(DockTop, 1, 100),
				docked(DockBottom, 1, 100),
				docked(DockFill, 0, 0),
			},
			wantBounds: []Rect{
				NewRect(0, 0, 200, 100),
				NewRect(0, 100, 200, 20),
				NewRect(0, 100, 200, 0),
			},
			wantRemainder: NewRect(0, 100, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			bounds, remainder := Dock(NewRect(0, 0, 200, 120), layoutables(tt.children...))
			if diff := cmp.Diff(tt.wantBounds, bounds); diff != "" {
				t.Errorf("Dock() bounds mismatch (-want +got):\n%s", diff)
			}
			if remainder != tt.wantRemainder {
				t.Errorf("Dock() remainder = %+v, want %+v", remainder, tt.wantRemainder)
			}
		})
	}
}

func TestDock_Margins(t *testing.T) {
	top := docked(DockTop, 1, 20)
	top.style.Margin = EdgeAll(2)
	fill := docked(DockFill, 0, 0)
	fill.style.Margin = EdgeSymmetric(1, 4)

	bounds, _ := Dock(NewRect(0, 0, 100, 60), layoutables(top, fill))

	// The strip is 24 tall: 20 plus the vertical margin.
	want := []Rect{
		NewRect(2, 2, 96, 20),
		NewRect(4, 25, 92, 34),
	}
	if diff := cmp.Diff(want, bounds); diff != "" {
		t.Errorf("Dock() bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestDock_ChildrenStayInsideContent(t *testing.T) {
	content := NewRect(5, 7, 90, 70)
	children := []*Node{
		docked(DockLeft, 40, 1),
		docked(DockTop, 1, 50),
		docked(DockRight, 40, 1),
		docked(DockBottom, 1, 50),
		docked(DockFill, 0, 0),
	}

	bounds, remainder := Dock(content, layoutables(children...))
	for i, b := range bounds {
		if !content.ContainsRect(b) {
			t.Errorf("child %d bounds %+v escape content %+v", i, b, content)
		}
	}
	if !content.ContainsRect(remainder) {
		t.Errorf("remainder %+v escapes content %+v", remainder, content)
	}
}

func TestDock_AutoSizeChildUsesMeasuredExtent(t *testing.T) {
	// A GrowAndShrink panel docked left takes its content width even though
	// its current bounds are wider.
	panel := container(LayoutFlow, NewRect(0, 0, 80, 80))
	panel.style.Dock = DockLeft
	panel.style.AutoSize = true
	panel.style.AutoSizeMode = GrowAndShrink
	panel.AddChild(label(25, 90))

	bounds, remainder := Dock(NewRect(0, 0, 300, 100), layoutables(panel))
	if bounds[0] != NewRect(0, 0, 31, 100) {
		t.Errorf("docked panel = %+v, want (0,0 31x100)", bounds[0])
	}
	if remainder != NewRect(31, 0, 269, 100) {
		t.Errorf("remainder = %+v, want (31,0 269x100)", remainder)
	}
}
