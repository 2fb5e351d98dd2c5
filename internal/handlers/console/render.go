package console

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dealgame/internal/services/game"
	"github.com/dustin/go-humanize"
)

// money renders whole dollars without cents and anything else with two decimals
func money(value float64) string {
	if value == float64(int64(value)) {
		return "$" + humanize.Comma(int64(value))
	}
	return "$" + humanize.FormatFloat("#,###.##", value)
}

// renderBoard lists the closed boxes and the values still in play
func renderBoard(g game.Service) string {
	var sb strings.Builder

	playerBox, _ := g.PlayerBoxIndex()

	sb.WriteString("Boxes:")
	for i := 0; i < g.NumBoxes(); i++ {
		open, err := g.IsBoxOpen(i)
		if err != nil || open {
			continue
		}
		if i == playerBox && g.HasPlayerChosenBox() {
			fmt.Fprintf(&sb, " [%d]", i+1)
			continue
		}
		fmt.Fprintf(&sb, " %d", i+1)
	}
	sb.WriteString("\n")

	values := g.UnopenedValues()
	rendered := make([]string, len(values))
	for i, v := range values {
		rendered[i] = money(v)
	}
	fmt.Fprintf(&sb, "In play: %s\n", strings.Join(rendered, " "))

	return sb.String()
}
