// internal/assets/frames.go
package assets

import (
	"fmt"
	"strings"
)

// steamFrame draws frame i of n of the steam jet: puffs drift away from
// the vent on the left edge, grow and thin out.
func steamFrame(i, n, w, h int) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, w, h, w, h)
	t := float64(i+1) / float64(n)
	for p := 0; p < 4; p++ {
		spread := float64(p) / 4
		cx := 8 + (float64(w)-24)*t*(0.4+0.6*spread)
		cy := float64(h)/2 + float64((p%2)*2-1)*float64(h)*0.08*spread
		r := 5 + float64(h)*0.3*t*(0.5+spread)
		opacity := 0.85 * (1 - 0.7*t) * (1 - 0.4*spread)
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="#e8eef2" fill-opacity="%.2f"/>`, cx, cy, r, opacity)
	}
	b.WriteString(`</svg>`)
	return []byte(b.String())
}

var blastColors = []string{"#fff6b0", "#ffd24a", "#ff9a2e", "#ff5a1f", "#d8401a", "#8f3a24", "#5a4a44", "#403a38"}

// explosionFrame draws frame i of n of the blast: a fireball that swells,
// darkens into smoke and fades.
func explosionFrame(i, n, size int) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, size, size, size, size)
	t := float64(i+1) / float64(n)
	c := float64(size) / 2
	outer := c * (0.35 + 0.6*t)
	core := outer * (0.7 - 0.5*t)
	color := blastColors[i*len(blastColors)/n]
	fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.2f"/>`, c, c, outer, color, 1-0.75*t)
	if core > 1 {
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="#fffbe6" fill-opacity="%.2f"/>`, c, c, core, 1-t)
	}
	for k := 0; k < 6; k++ {
		// Sparks on a hexagon, pushed outward as the blast grows.
		dx := []float64{1, 0.5, -0.5, -1, -0.5, 0.5}[k]
		dy := []float64{0, 0.87, 0.87, 0, -0.87, -0.87}[k]
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`, c+dx*outer*1.05, c+dy*outer*1.05, 2+2*(1-t), color)
	}
	b.WriteString(`</svg>`)
	return []byte(b.String())
}
