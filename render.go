package avatar

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// textScale is the ratio of font size (in points) to the canvas edge length.
// 0.6 leaves a comfortable margin around every Latin capital.
const (
	textScale = 0.6
	fontDPI   = 72
)

func (a *Avatar) loadFont() (*sfnt.Font, error) {
	if a.fontPath == "" {
		// Go Regular, shipped as a package so there's no file to find.
		return opentype.Parse(goregular.TTF)
	}
	b, err := os.ReadFile(a.fontPath)
	if err != nil {
		return nil, newError(ErrFontPath, a.fontPath, "", "")
	}
	f, err := opentype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse font %s: %w", a.fontPath, err)
	}
	return f, nil
}

// render fills a square canvas with the background color and draws the letter
// centered on it. The result replaces a.canvas.
func (a *Avatar) render() error {
	f, err := a.loadFont()
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    math.Round(textScale * float64(a.size)),
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("couldn't build font face: %w", err)
	}
	defer face.Close()

	canvas := image.NewRGBA(image.Rect(0, 0, a.size, a.size))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(a.color.rgba()), image.Point{}, draw.Src)

	// BoundString reports the ink box relative to a baseline origin, so Min.X
	// and Min.Y are the glyph's left and top bearings. Placing the dot at
	// (center - box/2 - bearing) centers the ink box exactly, fractional
	// positions and all (the 26.6 fixed-point math keeps the sub-pixel part).
	bounds, _ := font.BoundString(face, a.text)
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: (fixed.I(a.size)-w)/2 - bounds.Min.X,
			Y: (fixed.I(a.size)-h)/2 - bounds.Min.Y,
		},
	}
	d.DrawString(a.text)

	a.canvas = canvas
	return nil
}
