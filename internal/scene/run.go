package scene

import (
	"fmt"
	"slices"
	"sort"

	"github.com/grindlemire/go-panel/internal/layout"
)

// Entry is the computed layout of one node.
type Entry struct {
	Name    string
	Depth   int
	Bounds  layout.Rect
	Columns []int
	Rows    []int
}

// Mismatch is an expectation the computed layout did not meet.
type Mismatch struct {
	Name string
	Want layout.Rect
	Got  layout.Rect
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %s, want %s", m.Name, formatRect(m.Got), formatRect(m.Want))
}

// Result is the outcome of laying out one scene.
type Result struct {
	Path       string
	Entries    []Entry
	Mismatches []Mismatch
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool {
	return len(r.Mismatches) == 0
}

// Run builds the scene, performs one layout pass, and checks expectations.
func (s *Scene) Run(opts ...layout.Option) (*Result, error) {
	tree, err := s.Build()
	if err != nil {
		return nil, err
	}
	tree.Root.PerformLayout(opts...)

	mismatches, err := tree.Check(s.Expect)
	if err != nil {
		return nil, err
	}
	return &Result{Entries: tree.Entries(), Mismatches: mismatches}, nil
}

// RunFile loads the scene at path and runs it.
func RunFile(path string, opts ...layout.Option) (*Result, error) {
	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	res, err := s.Run(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res.Path = path
	return res, nil
}

// Entries lists every node's layout in depth-first order.
func (t *Tree) Entries() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, n := range t.order {
		cols, rows := n.Tracks()
		entries = append(entries, Entry{
			Name:    n.Name,
			Depth:   t.depth[n],
			Bounds:  n.Bounds(),
			Columns: slices.Clone(cols),
			Rows:    slices.Clone(rows),
		})
	}
	return entries
}

// Check compares node bounds with expect. Mismatches are sorted by name.
func (t *Tree) Check(expect map[string][]int) ([]Mismatch, error) {
	names := make([]string, 0, len(expect))
	for name := range expect {
		names = append(names, name)
	}
	sort.Strings(names)

	var mismatches []Mismatch
	for _, name := range names {
		want, err := parseRect(expect[name])
		if err != nil {
			return nil, fmt.Errorf("expect %q: %w", name, err)
		}
		n, ok := t.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
		}
		if got := n.Bounds(); got != want {
			mismatches = append(mismatches, Mismatch{Name: name, Want: want, Got: got})
		}
	}
	return mismatches, nil
}

func formatRect(r layout.Rect) string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
