package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/quarkviz/internal/quantum"
)

// PathToSVG draws the walk as a polyline with point markers.
func PathToSVG(p quantum.Path, width, height int, strokeColor string) string {
	if p.Len() == 0 {
		return ""
	}

	minX, maxX, minY, maxY := p.Bounds()
	lo := [2]float64{float64(minX) - 1, float64(minY) - 1}
	rangeX := float64(maxX-minX) + 2
	rangeY := float64(maxY-minY) + 2

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<title>%s</title>
<path fill="none" stroke="%s" stroke-width="1" d="M`,
		width, height, width, height, WalkTitle, strokeColor))

	pts := make([][2]float64, p.Len())
	for i := range p.X {
		x := (float64(p.X[i]) - lo[0]) / rangeX * float64(width)
		y := float64(height) - (float64(p.Y[i])-lo[1])/rangeY*float64(height)
		pts[i] = [2]float64{x, y}

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", strokeColor))
	for _, pt := range pts {
		sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"1.5\"/>\n", pt[0], pt[1]))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
