// Package report renders scene results as text, JSON or YAML.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-panel/internal/config"
	"github.com/grindlemire/go-panel/internal/layout"
	"github.com/grindlemire/go-panel/internal/scene"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Options controls rendering.
type Options struct {
	Format string // text, json or yaml
	Color  bool   // text only
	Theme  string // catppuccin flavor for text output
	Check  bool   // include pass/fail status and a summary
}

// Write renders results to w in the requested format.
func Write(w io.Writer, results []*scene.Result, opts Options) error {
	switch opts.Format {
	case "", config.FormatText:
		return writeText(w, results, opts)
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(results, opts.Check))
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(results, opts.Check)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q", opts.Format)
	}
}

// Failed counts results with at least one mismatch.
func Failed(results []*scene.Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed() {
			n++
		}
	}
	return n
}

type document struct {
	Passed *bool      `json:"passed,omitempty" yaml:"passed,omitempty"`
	Scenes []sceneDoc `json:"scenes" yaml:"scenes"`
}

type sceneDoc struct {
	Path       string        `json:"path,omitempty" yaml:"path,omitempty"`
	Passed     *bool         `json:"passed,omitempty" yaml:"passed,omitempty"`
	Nodes      []nodeDoc     `json:"nodes" yaml:"nodes"`
	Mismatches []mismatchDoc `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
}

type nodeDoc struct {
	Name    string `json:"name" yaml:"name"`
	Depth   int    `json:"depth" yaml:"depth"`
	Bounds  [4]int `json:"bounds" yaml:"bounds,flow"`
	Columns []int  `json:"columns,omitempty" yaml:"columns,omitempty,flow"`
	Rows    []int  `json:"rows,omitempty" yaml:"rows,omitempty,flow"`
}

type mismatchDoc struct {
	Name string `json:"name" yaml:"name"`
	Want [4]int `json:"want" yaml:"want,flow"`
	Got  [4]int `json:"got" yaml:"got,flow"`
}

func newDocument(results []*scene.Result, check bool) document {
	doc := document{Scenes: make([]sceneDoc, 0, len(results))}
	for _, r := range results {
		sd := sceneDoc{Path: r.Path, Nodes: make([]nodeDoc, 0, len(r.Entries))}
		for _, e := range r.Entries {
			sd.Nodes = append(sd.Nodes, nodeDoc{
				Name:    e.Name,
				Depth:   e.Depth,
				Bounds:  rectArray(e.Bounds),
				Columns: e.Columns,
				Rows:    e.Rows,
			})
		}
		for _, m := range r.Mismatches {
			sd.Mismatches = append(sd.Mismatches, mismatchDoc{Name: m.Name, Want: rectArray(m.Want), Got: rectArray(m.Got)})
		}
		if check {
			sd.Passed = boolPtr(r.Passed())
		}
		doc.Scenes = append(doc.Scenes, sd)
	}
	if check {
		doc.Passed = boolPtr(Failed(results) == 0)
	}
	return doc
}

func rectArray(r layout.Rect) [4]int {
	return [4]int{r.X, r.Y, r.Width, r.Height}
}

func boolPtr(b bool) *bool { return &b }

func writeText(w io.Writer, results []*scene.Result, opts Options) error {
	st := newStyles(lipgloss.NewRenderer(w), opts.Theme, opts.Color)

	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteByte('\n')
		}

		header := st.path.Render(r.Path)
		if r.Path == "" {
			header = st.path.Render("<scene>")
		}
		if opts.Check {
			status := st.pass.Render("PASS")
			if !r.Passed() {
				status = st.fail.Render("FAIL")
			}
			header += "  " + status
		}
		b.WriteString(header + "\n")

		// Names are padded so the bounds line up in one column.
		names := make([]string, len(r.Entries))
		width := 0
		for k, e := range r.Entries {
			names[k] = strings.Repeat("  ", e.Depth+1) + st.name.Render(e.Name)
			width = max(width, lipgloss.Width(names[k]))
		}
		for k, e := range r.Entries {
			line := names[k] + strings.Repeat(" ", width-lipgloss.Width(names[k])+2) + st.bounds.Render(formatRect(e.Bounds))
			if e.Columns != nil || e.Rows != nil {
				line += "  " + st.tracks.Render(fmt.Sprintf("cols %v rows %v", e.Columns, e.Rows))
			}
			b.WriteString(line + "\n")
		}

		for _, m := range r.Mismatches {
			b.WriteString("  " + st.fail.Render("mismatch") + " " + m.String() + "\n")
		}
	}

	if opts.Check {
		failed := Failed(results)
		summary := fmt.Sprintf("%d scene(s), %d failed", len(results), failed)
		if failed > 0 {
			summary = st.fail.Render(summary)
		} else {
			summary = st.pass.Render(summary)
		}
		b.WriteString("\n" + summary + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatRect(r layout.Rect) string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
