package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var barChars = []rune(" ▁▂▃▄▅▆▇█")

// Bars renders power levels in [0, 100] as a bar chart height rows tall,
// one column per bin, coloured through [Gradient]. Colour output follows the
// terminal detected on stdout.
func Bars(power []int, height int) string {
	return BarsWith(lipgloss.DefaultRenderer(), power, height)
}

// BarsWith is Bars with an explicit renderer.
func BarsWith(r *lipgloss.Renderer, power []int, height int) string {
	if len(power) == 0 {
		return ""
	}
	height = max(height, 1)

	styles := make([]lipgloss.Style, len(power))
	for i, g := range ScaleToGradient(power) {
		styles[i] = r.NewStyle().Foreground(lipgloss.Color(Hex(Gradient(g))))
	}

	rows := make([]string, height)
	for row := range height {
		var line strings.Builder
		fromBottom := float64(height - 1 - row)
		for i, v := range power {
			level := float64(clampLevel(v)) / levelMax * float64(height)
			idx := 0
			switch {
			case level >= fromBottom+1:
				idx = len(barChars) - 1
			case level > fromBottom:
				idx = int((level - fromBottom) * float64(len(barChars)-1))
			}
			line.WriteString(styles[i].Render(string(barChars[idx])))
		}
		rows[row] = line.String()
	}

	return strings.Join(rows, "\n")
}
