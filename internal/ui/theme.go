package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// TextPalette groups the foreground colors used by dynamic-color tags.
type TextPalette struct {
	Primary string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Theme defines colors and styles for the console.
type Theme struct {
	Name string

	Background  string
	Surface     string
	Border      string
	BorderFocus string

	SelectionBg   string
	SelectionText string

	HeaderBg   string
	HeaderText string

	Text TextPalette

	// StatusColors maps resource status values to foreground colors.
	StatusColors map[string]string
}

func slateTheme() Theme {
	return Theme{
		Name:          "slate",
		Background:    "#0f172a",
		Surface:       "#0f172a",
		Border:        "#475569",
		BorderFocus:   "#38bdf8",
		SelectionBg:   "#1e3a5f",
		SelectionText: "#e2e8f0",
		HeaderBg:      "#1e293b",
		HeaderText:    "#e2e8f0",
		Text: TextPalette{
			Primary: "#e2e8f0",
			Muted:   "#94a3b8",
			Faint:   "#64748b",
			Accent:  "#38bdf8",
			Success: "#4ade80",
			Warning: "#fbbf24",
			Danger:  "#f87171",
		},
		StatusColors: map[string]string{
			"valid":    "#4ade80",
			"active":   "#4ade80",
			"ready":    "#4ade80",
			"issued":   "#4ade80",
			"approved": "#4ade80",
			"expiring": "#fbbf24",
			"pending":  "#fbbf24",
			"expired":  "#f87171",
			"revoked":  "#f87171",
			"denied":   "#f87171",
			"disabled": "#64748b",
			// Audit trail actions
			"issue":   "#4ade80",
			"approve": "#4ade80",
			"renew":   "#fbbf24",
			"revoke":  "#f87171",
			"deny":    "#f87171",
		},
	}
}

func contrastTheme() Theme {
	t := slateTheme()
	t.Name = "contrast"
	t.Background = "#000000"
	t.Surface = "#000000"
	t.HeaderBg = "#111111"
	t.Text.Primary = "#ffffff"
	t.Text.Muted = "#bbbbbb"
	t.Text.Faint = "#777777"
	return t
}

// themeByName resolves a preferences theme name, defaulting to slate.
func themeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "contrast":
		return contrastTheme()
	default:
		return slateTheme()
	}
}

// StatusColor returns the color for a resource status value, falling back
// to the muted text color for anything unknown.
func (t Theme) StatusColor(status string) string {
	if c, ok := t.StatusColors[strings.ToLower(strings.TrimSpace(status))]; ok {
		return c
	}
	return t.Text.Muted
}

// SurfaceColor returns the main panel background as a tcell color.
func (t Theme) SurfaceColor() tcell.Color {
	return hexToColor(t.Surface)
}

// SelectionBackground returns the highlighted-row background.
func (t Theme) SelectionBackground() tcell.Color {
	return hexToColor(t.SelectionBg)
}

// HeaderStyle is the lipgloss style for the status header line.
func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(t.HeaderBg)).
		Foreground(lipgloss.Color(t.HeaderText)).
		Padding(0, 1)
}

// LogoStyle is the lipgloss style for the program name in the header.
func (t Theme) LogoStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Text.Accent)).
		Bold(true)
}

func hexToColor(hex string) tcell.Color {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(trimmed) != 6 {
		return tcell.ColorDefault
	}
	var rgb int32
	for _, r := range trimmed {
		rgb <<= 4
		switch {
		case r >= '0' && r <= '9':
			rgb |= r - '0'
		case r >= 'a' && r <= 'f':
			rgb |= r - 'a' + 10
		case r >= 'A' && r <= 'F':
			rgb |= r - 'A' + 10
		default:
			return tcell.ColorDefault
		}
	}
	return tcell.NewHexColor(rgb)
}
