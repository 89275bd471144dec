package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestThemeByName(t *testing.T) {
	if got := themeByName("contrast").Name; got != "contrast" {
		t.Errorf("themeByName(contrast).Name = %q, want contrast", got)
	}
	if got := themeByName("CONTRAST").Name; got != "contrast" {
		t.Errorf("themeByName is case sensitive: got %q", got)
	}
	if got := themeByName("no-such-theme").Name; got != "slate" {
		t.Errorf("unknown theme should fall back to slate, got %q", got)
	}
	if got := themeByName("").Name; got != "slate" {
		t.Errorf("empty theme should fall back to slate, got %q", got)
	}
}

func TestStatusColor(t *testing.T) {
	theme := slateTheme()

	if got := theme.StatusColor("valid"); got != theme.StatusColors["valid"] {
		t.Errorf("StatusColor(valid) = %q, want %q", got, theme.StatusColors["valid"])
	}
	if got := theme.StatusColor("  REVOKED  "); got != theme.StatusColors["revoked"] {
		t.Errorf("StatusColor should normalize case and whitespace, got %q", got)
	}
	if got := theme.StatusColor("unheard-of"); got != theme.Text.Muted {
		t.Errorf("unknown status should use muted color, got %q", got)
	}
}

func TestHexToColor(t *testing.T) {
	if got := hexToColor("#ffffff"); got != tcell.NewHexColor(0xffffff) {
		t.Errorf("hexToColor(#ffffff) = %v", got)
	}
	if got := hexToColor("4ade80"); got != tcell.NewHexColor(0x4ade80) {
		t.Errorf("hexToColor without # prefix = %v", got)
	}
	if got := hexToColor("not-a-color"); got != tcell.ColorDefault {
		t.Errorf("invalid hex should map to default color, got %v", got)
	}
	if got := hexToColor("#fff"); got != tcell.ColorDefault {
		t.Errorf("short hex should map to default color, got %v", got)
	}
}
