package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlow_Placement(t *testing.T) {
	type tc struct {
		remainder     Rect
		style         func(*Style)
		children      []*Node
		wantBounds    []Rect
		wantPreferred Size
	}

	tests := map[string]tc{
		"wraps when the next box overflows": {
			remainder:  NewRect(0, 0, 200, 100),
			children:   []*Node{label(90, 25), label(90, 25), label(90, 25)},
			wantBounds: []Rect{NewRect(3, 0, 90, 25), NewRect(99, 0, 90, 25), NewRect(3, 25, 90, 25)},
			// Two boxes of 96 fit in 200; the third wraps.
			wantPreferred: NewSize(192, 50),
		},
		"no wrap keeps one line": {
			remainder:     NewRect(0, 0, 200, 100),
			style:         func(s *Style) { s.WrapContents = false },
			children:      []*Node{label(90, 25), label(90, 25), label(90, 25)},
			wantBounds:    []Rect{NewRect(3, 0, 90, 25), NewRect(99, 0, 90, 25), NewRect(195, 0, 90, 25)},
			wantPreferred: NewSize(288, 25),
		},
		"starts at the remainder origin": {
			remainder:     NewRect(10, 5, 200, 100),
			children:      []*Node{label(90, 25)},
			wantBounds:    []Rect{NewRect(13, 5, 90, 25)},
			wantPreferred: NewSize(96, 25),
		},
		"lines advance by the tallest box": {
			remainder: NewRect(0, 0, 100, 100),
			children: []*Node{
				leaf(40, 10, Edges{}),
				leaf(40, 30, Edges{}),
				leaf(40, 20, Edges{}),
			},
			wantBounds:    []Rect{NewRect(0, 0, 40, 10), NewRect(40, 0, 40, 30), NewRect(0, 30, 40, 20)},
			wantPreferred: NewSize(80, 50),
		},
		"oversized first box does not wrap": {
			remainder:     NewRect(0, 0, 50, 100),
			children:      []*Node{label(90, 25), label(10, 25)},
			wantBounds:    []Rect{NewRect(3, 0, 90, 25), NewRect(3, 25, 10, 25)},
			wantPreferred: NewSize(96, 50),
		},
		"top down wraps rightward": {
			remainder:     NewRect(0, 0, 300, 60),
			style:         func(s *Style) { s.FlowDirection = FlowTopDown },
			children:      []*Node{label(90, 25), label(90, 25), label(90, 25)},
			wantBounds:    []Rect{NewRect(3, 0, 90, 25), NewRect(3, 25, 90, 25), NewRect(99, 0, 90, 25)},
			wantPreferred: NewSize(192, 50),
		},
		"no children": {
			remainder:     NewRect(0, 0, 100, 100),
			wantBounds:    []Rect{},
			wantPreferred: Size{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			style := DefaultStyle()
			style.Layout = LayoutFlow
			if tt.style != nil {
				tt.style(&style)
			}

			bounds, preferred := Flow(tt.remainder, layoutables(tt.children...), style)
			if diff := cmp.Diff(tt.wantBounds, bounds); diff != "" {
				t.Errorf("Flow() bounds mismatch (-want +got):\n%s", diff)
			}
			if preferred != tt.wantPreferred {
				t.Errorf("Flow() preferred = %+v, want %+v", preferred, tt.wantPreferred)
			}
		})
	}
}

// TestFlow_AutoSizePanel lays out a flow panel holding 90x25 labels on a
// 100x300 form (300x100 for left/right docking) under every auto-size mode.
func TestFlow_AutoSizePanel(t *testing.T) {
	type tc struct {
		autoSize bool
		mode     AutoSizeMode
		dock     DockStyle
		start    Rect
		labels   int
		wide     bool // 300x100 form with 25x90 labels
		want     Rect
	}

	tests := map[string]tc{
		"grow only resizes if larger": {
			autoSize: true, mode: GrowOnly, start: NewRect(5, 5, 10, 10), labels: 2,
			want: NewRect(5, 5, 192, 25),
		},
		"grow only resizes if larger dock bottom": {
			autoSize: true, mode: GrowOnly, dock: DockBottom, start: NewRect(5, 5, 10, 10), labels: 2,
			want: NewRect(0, 250, 100, 50),
		},
		"grow only does not shrink": {
			autoSize: true, mode: GrowOnly, start: NewRect(5, 5, 100, 100), labels: 1,
			want: NewRect(5, 5, 100, 100),
		},
		"grow only dock top": {
			autoSize: true, mode: GrowOnly, dock: DockTop, start: NewRect(5, 5, 100, 100), labels: 1,
			want: NewRect(0, 0, 100, 25),
		},
		"grow only dock bottom": {
			autoSize: true, mode: GrowOnly, dock: DockBottom, start: NewRect(5, 5, 100, 100), labels: 1,
			want: NewRect(0, 275, 100, 25),
		},
		"grow only dock left": {
			autoSize: true, mode: GrowOnly, dock: DockLeft, start: NewRect(5, 5, 100, 100), labels: 1, wide: true,
			want: NewRect(0, 0, 31, 100),
		},
		"grow only dock right": {
			autoSize: true, mode: GrowOnly, dock: DockRight, start: NewRect(5, 5, 100, 100), labels: 1, wide: true,
			want: NewRect(269, 0, 31, 100),
		},
		"grow and shrink": {
			autoSize: true, mode: GrowAndShrink, start: NewRect(5, 5, 100, 100), labels: 1,
			want: NewRect(5, 5, 96, 25),
		},
		"grow and shrink dock bottom": {
			autoSize: true, mode: GrowAndShrink, dock: DockBottom, start: NewRect(5, 5, 100, 100), labels: 1,
			want: NewRect(0, 275, 100, 25),
		},
		"no auto-size keeps small bounds": {
			mode: GrowOnly, start: NewRect(5, 5, 10, 10), labels: 2,
			want: NewRect(5, 5, 10, 10),
		},
		"no auto-size dock bottom keeps small height": {
			mode: GrowOnly, dock: DockBottom, start: NewRect(5, 5, 10, 10), labels: 2,
			want: NewRect(0, 290, 100, 10),
		},
		"no auto-size keeps large bounds": {
			mode: GrowOnly, start: NewRect(5, 5, 100, 100), labels: 1,
			want: NewRect(5, 5, 100, 100),
		},
		"no auto-size dock bottom keeps large height": {
			mode: GrowOnly, dock: DockBottom, start: NewRect(5, 5, 100, 100), labels: 1,
			want: NewRect(0, 200, 100, 100),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			formBounds, lw, lh := NewRect(0, 0, 100, 300), 90, 25
			if tt.wide {
				formBounds, lw, lh = NewRect(0, 0, 300, 100), 25, 90
			}
			form := container(LayoutAbsolute, formBounds)

			panel := container(LayoutFlow, tt.start)
			panel.style.Dock = tt.dock
			panel.style.AutoSize = tt.autoSize
			panel.style.AutoSizeMode = tt.mode
			for range tt.labels {
				panel.AddChild(label(lw, lh))
			}
			form.AddChild(panel)

			Calculate(form)

			if got := panel.Bounds(); got != tt.want {
				t.Errorf("panel bounds = %+v, want %+v", got, tt.want)
			}
			if form.Bounds() != formBounds {
				t.Errorf("form bounds = %+v, want %+v", form.Bounds(), formBounds)
			}
		})
	}
}

func TestFlow_LabelsInDockedPanel(t *testing.T) {
	form := container(LayoutAbsolute, NewRect(0, 0, 100, 300))
	panel := container(LayoutFlow, NewRect(5, 5, 10, 10))
	panel.style.Dock = DockBottom
	panel.style.AutoSize = true
	a, b := label(90, 25), label(90, 25)
	panel.AddChild(a, b)
	form.AddChild(panel)

	Calculate(form)

	want := []Rect{NewRect(3, 0, 90, 25), NewRect(3, 25, 90, 25)}
	if diff := cmp.Diff(want, boundsOf(a, b)); diff != "" {
		t.Errorf("label bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestFlow_FollowsDockedSiblings(t *testing.T) {
	panel := container(LayoutFlow, NewRect(0, 0, 200, 100))
	header := docked(DockTop, 1, 20)
	side := docked(DockLeft, 30, 1)
	item := label(90, 25)
	panel.AddChild(header, item, side)

	Calculate(panel)

	want := []Rect{NewRect(0, 0, 200, 20), NewRect(33, 20, 90, 25), NewRect(0, 20, 30, 80)}
	if diff := cmp.Diff(want, boundsOf(header, item, side)); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
	if got := panel.GetLayout().Remainder; got != NewRect(30, 20, 170, 80) {
		t.Errorf("Remainder = %+v, want (30,20 170x80)", got)
	}
}
