// Package export renders recorded trajectories as standalone SVG
// documents.
package export

import (
	"fmt"
	"strings"
)

// strokePalette mirrors the terminal body palette in hex form.
var strokePalette = []string{
	"#ff5555", "#55ff55", "#ffff55", "#5555ff",
	"#ff55ff", "#55ffff", "#bbbbbb", "#ffffff",
}

type Point struct {
	X, Y float64
}

// Trajectory is one body's sampled path.
type Trajectory struct {
	Points []Point
	Stroke string
}

// FromStates splits flat state rows (x, y, vx, vy per body) into
// per-body trajectories, assigning strokes from the palette.
func FromStates(states [][]float64) []Trajectory {
	if len(states) == 0 || len(states[0]) < 4 {
		return nil
	}

	count := len(states[0]) / 4
	trajs := make([]Trajectory, count)
	for b := 0; b < count; b++ {
		points := make([]Point, 0, len(states))
		for _, row := range states {
			if len(row) < (b+1)*4 {
				continue
			}
			points = append(points, Point{X: row[b*4], Y: row[b*4+1]})
		}
		trajs[b] = Trajectory{
			Points: points,
			Stroke: strokePalette[b%len(strokePalette)],
		}
	}
	return trajs
}

// SVG renders the trajectories into a single document with shared
// bounds across all bodies. Returns "" when there is nothing to draw.
func SVG(trajs []Trajectory, width, height int) string {
	minX, maxX, minY, maxY, ok := bounds(trajs)
	if !ok {
		return ""
	}

	// Pad bounds so paths never touch the edge.
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, traj := range trajs {
		if len(traj.Points) < 2 {
			continue
		}

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, traj.Stroke))
		for i, p := range traj.Points {
			x := (p.X - minX) / rangeX * float64(width)
			y := float64(height) - (p.Y-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func bounds(trajs []Trajectory) (minX, maxX, minY, maxY float64, ok bool) {
	for _, traj := range trajs {
		for _, p := range traj.Points {
			if !ok {
				minX, maxX = p.X, p.X
				minY, maxY = p.Y, p.Y
				ok = true
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	return minX, maxX, minY, maxY, ok
}
