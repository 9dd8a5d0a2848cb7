package assets

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Preview renders img into at most cols x rows terminal cells. Each cell
// is an upper half block carrying two vertically stacked pixels, so the
// sampled resolution is cols x 2*rows. Aspect ratio is preserved.
func Preview(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}

	// Fit the image into cols x 2*rows pixels
	w, h := cols, cols*b.Dy()/b.Dx()
	if h > rows*2 {
		h = rows * 2
		w = h * b.Dx() / b.Dy()
	}
	if w < 1 {
		w = 1
	}
	if h < 2 {
		h = 2
	}

	var sb strings.Builder
	for y := 0; y < h-1; y += 2 {
		for x := 0; x < w; x++ {
			top := sample(img, b, x, y, w, h)
			bottom := sample(img, b, x, y+1, w, h)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(top).
				Background(bottom).
				Render("▀"))
		}
		if y+2 < h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// sample picks the source pixel for cell (x, y) of a w x h grid
func sample(img image.Image, b image.Rectangle, x, y, w, h int) lipgloss.Color {
	sx := b.Min.X + x*b.Dx()/w
	sy := b.Min.Y + y*b.Dy()/h
	r, g, bl, _ := img.At(sx, sy).RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, bl>>8))
}
