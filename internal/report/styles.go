package report

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	path   lipgloss.Style
	name   lipgloss.Style
	bounds lipgloss.Style
	tracks lipgloss.Style
	pass   lipgloss.Style
	fail   lipgloss.Style
}

// newStyles builds the text styles for a flavor. With color off every style
// renders its input unchanged.
func newStyles(r *lipgloss.Renderer, theme string, color bool) styles {
	if !color {
		plain := r.NewStyle()
		return styles{path: plain, name: plain, bounds: plain, tracks: plain, pass: plain, fail: plain}
	}

	flavor := flavorFromName(theme)
	return styles{
		path:   r.NewStyle().Bold(true).Foreground(lipgloss.Color(flavor.Mauve().Hex)),
		name:   r.NewStyle().Foreground(lipgloss.Color(flavor.Text().Hex)),
		bounds: r.NewStyle().Foreground(lipgloss.Color(flavor.Teal().Hex)),
		tracks: r.NewStyle().Foreground(lipgloss.Color(flavor.Overlay0().Hex)),
		pass:   r.NewStyle().Bold(true).Foreground(lipgloss.Color(flavor.Green().Hex)),
		fail:   r.NewStyle().Bold(true).Foreground(lipgloss.Color(flavor.Red().Hex)),
	}
}

func flavorFromName(name string) catppuccin.Flavor {
	switch name {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	default:
		return catppuccin.Mocha
	}
}
