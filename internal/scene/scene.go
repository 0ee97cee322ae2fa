// Package scene reads layout fixtures from YAML or TOML, builds the node
// tree they describe, and checks computed bounds against expectations.
package scene

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a scene file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Scene is a root node description plus the bounds it is expected to produce.
type Scene struct {
	NodeSpec `yaml:",inline"`

	// Expect maps node names to [x, y, width, height].
	Expect map[string][]int `yaml:"expect,omitempty" toml:"expect,omitempty"`
}

// NodeSpec describes one node and its children.
type NodeSpec struct {
	Name         string     `yaml:"name,omitempty" toml:"name,omitempty"`
	Layout       string     `yaml:"layout,omitempty" toml:"layout,omitempty"`
	Dock         string     `yaml:"dock,omitempty" toml:"dock,omitempty"`
	AutoSize     bool       `yaml:"autoSize,omitempty" toml:"autoSize,omitempty"`
	AutoSizeMode string     `yaml:"autoSizeMode,omitempty" toml:"autoSizeMode,omitempty"`
	Wrap         *bool      `yaml:"wrap,omitempty" toml:"wrap,omitempty"`
	Direction    string     `yaml:"direction,omitempty" toml:"direction,omitempty"`
	Bounds       []int      `yaml:"bounds,omitempty" toml:"bounds,omitempty"`
	Preferred    []int      `yaml:"preferred,omitempty" toml:"preferred,omitempty"`
	Margin       []int      `yaml:"margin,omitempty" toml:"margin,omitempty"`
	Padding      []int      `yaml:"padding,omitempty" toml:"padding,omitempty"`
	Columns      []string   `yaml:"columns,omitempty" toml:"columns,omitempty"`
	Rows         []string   `yaml:"rows,omitempty" toml:"rows,omitempty"`
	ColumnCount  int        `yaml:"columnCount,omitempty" toml:"columnCount,omitempty"`
	RowCount     int        `yaml:"rowCount,omitempty" toml:"rowCount,omitempty"`
	CellSpacing  int        `yaml:"cellSpacing,omitempty" toml:"cellSpacing,omitempty"`
	Cell         []int      `yaml:"cell,omitempty" toml:"cell,omitempty"`
	ColumnSpan   int        `yaml:"columnSpan,omitempty" toml:"columnSpan,omitempty"`
	RowSpan      int        `yaml:"rowSpan,omitempty" toml:"rowSpan,omitempty"`
	Children     []NodeSpec `yaml:"children,omitempty" toml:"children,omitempty"`
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene in the given format. Unknown fields are rejected so
// typos in fixtures do not silently change the layout.
func Parse(data []byte, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &s, nil
}
