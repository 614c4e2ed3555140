package avatar

import (
	"image/color"
	"math/rand/v2"
	"strconv"
	"strings"
)

// RGB is the avatar's background color, one byte per channel.
type RGB struct {
	R, G, B uint8
}

func (c RGB) rgba() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Each channel is drawn independently, so two consecutive calls collide with
// probability 1/2^24. Good enough for "give me a fresh color".
func randomColor() RGB {
	return RGB{
		R: uint8(rand.IntN(256)),
		G: uint8(rand.IntN(256)),
		B: uint8(rand.IntN(256)),
	}
}

// ParseHex parses a CSS-style hex color ("#1fa8f1", "#999", with or without
// the leading hash) into an RGB. Anything else is an ErrInvalidInput.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, newError(ErrInvalidInput, s, "Hex color must look like #rgb or #rrggbb.", "")
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, newError(ErrInvalidInput, s, "Hex color must look like #rgb or #rrggbb.", "")
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
