package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/antarctic/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorBlue)
	s.DrawText(0, 1, "xyz", core.ColorBlack)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	colors := []core.Color{
		core.ColorDefault, core.ColorRed, core.ColorBlue, core.ColorWhite,
		core.ColorBrightWhite, core.ColorOrange, core.ColorBlack,
		core.ColorSky, core.ColorNavy, core.ColorSilver,
	}
	for _, c := range colors {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "aaa", core.ColorSky)
	s.DrawText(3, 0, "bb", core.ColorNavy)

	var sb strings.Builder
	renderRow(&sb, s, 0)
	got := sb.String()
	if !strings.Contains(got, "aaa") || !strings.Contains(got, "bb") {
		t.Errorf("row = %q", got)
	}
	// The blank default cell at the end is still written
	if !strings.HasSuffix(got, " ") {
		t.Errorf("row %q should end with the blank cell", got)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); got != colorStyles[core.ColorDefault].Render("x") {
		t.Errorf("unknown color rendered as %q", got)
	}
}
