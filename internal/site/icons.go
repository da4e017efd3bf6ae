package site

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

var (
	iconBackground = color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	iconForeground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// renderIcon draws the app icon at the given size: a white plate on the
// brand-blue background. Drawn directly instead of scaling a master image so
// small sizes stay crisp without an image-processing dependency.
func renderIcon(size int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := float64(size) / 2
	outer := float64(size) * 0.38
	inner := float64(size) * 0.22

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			d2 := dx*dx + dy*dy
			switch {
			case d2 <= inner*inner:
				img.SetRGBA(x, y, iconBackground)
			case d2 <= outer*outer:
				img.SetRGBA(x, y, iconForeground)
			default:
				img.SetRGBA(x, y, iconBackground)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
