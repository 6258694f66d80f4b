package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawText(0, 0, "level: 3")
	s.DrawTextColor(2, 1, "██", core.ColorRed)
	s.DrawTextColor(4, 1, "██", core.ColorBlue)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "level: 3") {
		t.Errorf("text lost: %q", lines[0])
	}
	if strings.Count(lines[1], "█") != 4 {
		t.Errorf("cells lost: %q", lines[1])
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 20 {
			t.Errorf("line %d width = %d, want 20", i, w)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for _, c := range []core.Color{
		core.ColorDefault, core.ColorRed, core.ColorGreen, core.ColorYellow,
		core.ColorBlue, core.ColorMagenta, core.ColorCyan, core.ColorWhite, core.ColorGray,
	} {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
