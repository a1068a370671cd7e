package tui

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
)

// renderThumbnail draws data with half-block cells: each character covers
// two pixel rows, the upper one as foreground and the lower one as
// background. The picture is fitted into cols x rows characters.
func renderThumbnail(data []byte, cols, rows int) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty thumbnail")
	}
	if cols <= 0 || rows <= 0 {
		return "", fmt.Errorf("invalid preview size %dx%d", cols, rows)
	}

	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode thumbnail: %w", err)
	}

	img := imaging.Fit(src, cols, rows*2, imaging.Box)
	bounds := img.Bounds()

	var b strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(img, x, y))
			if y+1 < bounds.Max.Y {
				style = style.Background(hexColor(img, x, y+1))
			}
			b.WriteString(style.Render("▀"))
		}
		if y+2 < bounds.Max.Y {
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

func hexColor(img image.Image, x, y int) lipgloss.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
