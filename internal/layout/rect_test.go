package layout

import "testing"

func TestRect_InsetOutset(t *testing.T) {
	type tc struct {
		rect   Rect
		edges  Edges
		inset  Rect
		outset Rect
	}

	tests := map[string]tc{
		"uniform": {
			rect:   NewRect(10, 10, 40, 20),
			edges:  EdgeAll(2),
			inset:  NewRect(12, 12, 36, 16),
			outset: NewRect(8, 8, 44, 24),
		},
		"trbl": {
			rect:   NewRect(0, 0, 100, 50),
			edges:  EdgeTRBL(1, 2, 3, 4),
			inset:  NewRect(4, 1, 94, 46),
			outset: NewRect(-4, -1, 106, 54),
		},
		"inset saturates at zero": {
			rect:   NewRect(0, 0, 4, 4),
			edges:  EdgeSymmetric(3, 5),
			inset:  NewRect(5, 3, 0, 0),
			outset: NewRect(-5, -3, 14, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.edges); got != tt.inset {
				t.Errorf("Inset(%+v) = %+v, want %+v", tt.edges, got, tt.inset)
			}
			if got := tt.rect.Outset(tt.edges); got != tt.outset {
				t.Errorf("Outset(%+v) = %+v, want %+v", tt.edges, got, tt.outset)
			}
		})
	}
}

func TestRect_Carve(t *testing.T) {
	type tc struct {
		side      Side
		thickness int
		strip     Rect
		rest      Rect
	}

	base := NewRect(10, 20, 100, 50)
	tests := map[string]tc{
		"top": {
			side: SideTop, thickness: 15,
			strip: NewRect(10, 20, 100, 15),
			rest:  NewRect(10, 35, 100, 35),
		},
		"bottom": {
			side: SideBottom, thickness: 15,
			strip: NewRect(10, 55, 100, 15),
			rest:  NewRect(10, 20, 100, 35),
		},
		"left": {
			side: SideLeft, thickness: 30,
			strip: NewRect(10, 20, 30, 50),
			rest:  NewRect(40, 20, 70, 50),
		},
		"right": {
			side: SideRight, thickness: 30,
			strip: NewRect(80, 20, 30, 50),
			rest:  NewRect(10, 20, 70, 50),
		},
		"thicker than rect": {
			side: SideTop, thickness: 80,
			strip: NewRect(10, 20, 100, 50),
			rest:  NewRect(10, 70, 100, 0),
		},
		"negative thickness": {
			side: SideRight, thickness: -5,
			strip: NewRect(110, 20, 0, 50),
			rest:  NewRect(10, 20, 100, 50),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			strip, rest := base.Carve(tt.side, tt.thickness)
			if strip != tt.strip {
				t.Errorf("Carve strip = %+v, want %+v", strip, tt.strip)
			}
			if rest != tt.rest {
				t.Errorf("Carve rest = %+v, want %+v", rest, tt.rest)
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)

	tests := map[string]struct {
		inner Rect
		want  bool
	}{
		"inside":       {inner: NewRect(10, 10, 20, 20), want: true},
		"same":         {inner: outer, want: true},
		"overhanging":  {inner: NewRect(90, 90, 20, 20), want: false},
		"empty inner":  {inner: NewRect(500, 500, 0, 0), want: true},
		"left of rect": {inner: NewRect(-1, 0, 10, 10), want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := outer.ContainsRect(tt.inner); got != tt.want {
				t.Errorf("ContainsRect(%+v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}

	if NewRect(0, 0, 0, 10).ContainsRect(NewRect(0, 0, 1, 1)) {
		t.Error("empty rect should not contain a non-empty rect")
	}
}

func TestRect_Accessors(t *testing.T) {
	r := RectAt(Point{X: 3, Y: 4}, NewSize(10, 20))

	if r.Right() != 13 || r.Bottom() != 24 {
		t.Errorf("Right/Bottom = %d/%d, want 13/24", r.Right(), r.Bottom())
	}
	if r.Location() != (Point{X: 3, Y: 4}) {
		t.Errorf("Location = %+v, want (3, 4)", r.Location())
	}
	if r.Size() != NewSize(10, 20) {
		t.Errorf("Size = %+v, want 10x20", r.Size())
	}
	if got := r.Translate(-3, 6); got != NewRect(0, 10, 10, 20) {
		t.Errorf("Translate = %+v, want (0,10 10x20)", got)
	}
	if !NewRect(5, 5, 0, 3).IsEmpty() || r.IsEmpty() {
		t.Error("IsEmpty misreports")
	}
}

func TestSize_UnboundedArithmetic(t *testing.T) {
	unbounded := Size{Width: Unbounded, Height: 40}

	if got := unbounded.Sub(EdgeAll(5)); got != (Size{Width: Unbounded, Height: 30}) {
		t.Errorf("Sub = %+v, want {Unbounded 30}", got)
	}
	if got := unbounded.Add(EdgeAll(5)); got != (Size{Width: Unbounded, Height: 50}) {
		t.Errorf("Add = %+v, want {Unbounded 50}", got)
	}
	if got := NewSize(4, 4).Sub(EdgeAll(5)); got != (Size{}) {
		t.Errorf("Sub past zero = %+v, want {0 0}", got)
	}
	if got := NewSize(4, 9).Max(NewSize(7, 2)); got != NewSize(7, 9) {
		t.Errorf("Max = %+v, want 7x9", got)
	}
}

func TestAutoSizeMode_Resolve(t *testing.T) {
	type tc struct {
		mode      AutoSizeMode
		current   Size
		preferred Size
		want      Size
	}

	tests := map[string]tc{
		"none keeps current":          {AutoSizeNone, NewSize(10, 10), NewSize(50, 5), NewSize(10, 10)},
		"grow only grows":             {GrowOnly, NewSize(10, 10), NewSize(50, 25), NewSize(50, 25)},
		"grow only never shrinks":     {GrowOnly, NewSize(100, 100), NewSize(50, 25), NewSize(100, 100)},
		"grow only per dimension":     {GrowOnly, NewSize(100, 10), NewSize(50, 25), NewSize(100, 25)},
		"grow and shrink is exact":    {GrowAndShrink, NewSize(100, 100), NewSize(50, 25), NewSize(50, 25)},
		"negative current normalized": {GrowOnly, NewSize(-10, -1), NewSize(5, 5), NewSize(5, 5)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.mode.Resolve(tt.current, tt.preferred); got != tt.want {
				t.Errorf("%v.Resolve(%+v, %+v) = %+v, want %+v", tt.mode, tt.current, tt.preferred, got, tt.want)
			}
		})
	}
}
