package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/nxncube"
)

// Sticker styles, one per color.
var stickerStyles = map[nxncube.Color]lipgloss.Style{
	nxncube.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("240")),
	nxncube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("240")),
	nxncube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("235")),
	nxncube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	nxncube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
	nxncube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("235")),
}

func sticker(c nxncube.Color) string {
	style, ok := stickerStyles[c]
	if !ok {
		return "  "
	}
	return style.Render("  ")
}

// faceRow renders one grid row of a face, top row of the net first.
func faceRow(c *nxncube.Cube, f nxncube.Face, row int) string {
	n := c.Size()
	var b strings.Builder
	for col := 0; col < n; col++ {
		b.WriteString(sticker(c.ColorAt(f, nxncube.Point{Row: row, Col: col})))
	}
	return b.String()
}

// RenderNet draws the cube as an unfolded net: up on top, then the
// left-front-right-back band, then down.
func RenderNet(c *nxncube.Cube) string {
	n := c.Size()
	indent := strings.Repeat("  ", n)

	var b strings.Builder
	for r := n - 1; r >= 0; r-- {
		b.WriteString(indent)
		b.WriteString(faceRow(c, nxncube.FaceUp, r))
		b.WriteString("\n")
	}
	band := []nxncube.Face{nxncube.FaceLeft, nxncube.FaceFront, nxncube.FaceRight, nxncube.FaceBack}
	for r := n - 1; r >= 0; r-- {
		for _, f := range band {
			b.WriteString(faceRow(c, f, r))
		}
		b.WriteString("\n")
	}
	for r := n - 1; r >= 0; r-- {
		b.WriteString(indent)
		b.WriteString(faceRow(c, nxncube.FaceDown, r))
		b.WriteString("\n")
	}
	return b.String()
}
