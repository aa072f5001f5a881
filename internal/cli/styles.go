package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// faceletColors maps cube colors to terminal colors.
var faceletColors = map[cube.Color]lipgloss.Color{
	cube.White:  lipgloss.Color("#FFFFFF"),
	cube.Yellow: lipgloss.Color("#FFD500"),
	cube.Green:  lipgloss.Color("#009E60"),
	cube.Blue:   lipgloss.Color("#0051BA"),
	cube.Red:    lipgloss.Color("#C41E3A"),
	cube.Orange: lipgloss.Color("#FF5800"),
}

func faceletStyle(c cube.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(faceletColors[c]).
		Foreground(lipgloss.Color("0"))
}

// renderNet draws the cube as an unfolded net, U on top, L F R B across
// and D below. Colored mode paints each facelet as a two cell block.
func renderNet(c *cube.Cube, colored bool) string {
	if !colored {
		return c.String()
	}

	n := c.Size()
	cell := func(color cube.Color) string {
		return faceletStyle(color).Render(color.String() + " ")
	}

	var b strings.Builder
	indent := strings.Repeat(" ", n*2)
	writeRow := func(face cube.Face, row int) {
		for col := 0; col < n; col++ {
			b.WriteString(cell(c.Facelet(face, row, col)))
		}
	}

	for row := 0; row < n; row++ {
		b.WriteString(indent)
		writeRow(cube.U, row)
		b.WriteString("\n")
	}
	for row := 0; row < n; row++ {
		for _, face := range []cube.Face{cube.L, cube.F, cube.R, cube.B} {
			writeRow(face, row)
		}
		b.WriteString("\n")
	}
	for row := 0; row < n; row++ {
		b.WriteString(indent)
		writeRow(cube.D, row)
		b.WriteString("\n")
	}
	return b.String()
}
