package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.SetColored(2, 1, '@', core.ColorBrightYellow)
	s.SetColored(3, 1, 'o', core.ColorGreen)
	s.SetColored(4, 1, 'o', core.ColorGreen)
	s.DrawText(0, 2, "hi")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	for i, line := range lines {
		if w := lipgloss.Width(line); w != 10 {
			t.Errorf("line %d width = %d, want 10", i, w)
		}
	}
	if !strings.Contains(lines[1], "@") || strings.Count(lines[1], "o") != 2 {
		t.Errorf("snake row lost: %q", lines[1])
	}
	if !strings.Contains(lines[2], "hi") {
		t.Errorf("text row lost: %q", lines[2])
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
