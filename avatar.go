// Package avatar generates single-letter avatar images, the kind web apps
// show as a default before the user uploads a real picture: a colored square
// with the first letter of the name centered in it.
//
// An Avatar renders once at construction time and keeps the raster around, so
// exporting the same avatar in several formats doesn't redraw anything.
//
//	a, err := avatar.New("smallwat3r", avatar.WithSize(250))
//	if err != nil { ... }
//	b, err := a.Stream(avatar.PNG)
//
// An Avatar is not safe for concurrent use: ChangeColor swaps the raster out
// from under Stream and Save, so serialize access if you share one.
package avatar

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// The supported size range, in pixels. Below MinSize the glyph rasterizes to
// mush; above MaxSize you probably wanted a poster, not an avatar.
const (
	MinSize = 50
	MaxSize = 650

	// DefaultSize is the edge length used when WithSize isn't given.
	DefaultSize = 120
)

var supportedFontExts = []string{".ttf", ".otf"}

// Avatar holds the validated configuration and the rendered canvas. Use New
// to get one; the zero value is useless.
type Avatar struct {
	text     string
	size     int
	fontPath string // empty when the bundled font is in use
	color    RGB
	canvas   *image.RGBA
}

type config struct {
	size       int
	fontPath   string
	color      *RGB
	capitalize bool
}

// An Option configures New.
type Option func(*config) error

// WithSize sets the pixel edge length of the (square) avatar. The size must
// be within [MinSize, MaxSize].
func WithSize(size int) Option {
	return func(cfg *config) error {
		cfg.size = size
		return nil
	}
}

// WithFont renders with the font file at path (.ttf or .otf) instead of the
// bundled one. The file must exist when New is called.
func WithFont(path string) Option {
	return func(cfg *config) error {
		cfg.fontPath = path
		return nil
	}
}

// WithColor sets the background color instead of picking a random one.
func WithColor(c RGB) Option {
	return func(cfg *config) error {
		cfg.color = &c
		return nil
	}
}

// WithHexColor is WithColor for a CSS-style hex string like "#1fa8f1".
func WithHexColor(s string) Option {
	return func(cfg *config) error {
		c, err := ParseHex(s)
		if err != nil {
			return err
		}
		cfg.color = &c
		return nil
	}
}

// WithoutCapitalization keeps the letter exactly as it appears in the input
// instead of upper-casing it.
func WithoutCapitalization() Option {
	return func(cfg *config) error {
		cfg.capitalize = false
		return nil
	}
}

// New validates the input and renders the avatar. Only the first rune of text
// is used, upper-cased unless WithoutCapitalization is given. Without
// WithColor the background is a random color.
func New(text string, opts ...Option) (*Avatar, error) {
	cfg := config{size: DefaultSize, capitalize: true}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if text == "" {
		return nil, newError(ErrInvalidInput, text, "Text must not be empty.", "")
	}
	if err := checkSize(cfg.size); err != nil {
		return nil, err
	}
	if cfg.fontPath != "" {
		if err := checkFontPath(cfg.fontPath); err != nil {
			return nil, err
		}
	}

	r, _ := utf8.DecodeRuneInString(text)
	if cfg.capitalize {
		r = unicode.ToUpper(r)
	}

	c := cfg.color
	if c == nil {
		random := randomColor()
		c = &random
	}

	a := &Avatar{
		text:     string(r),
		size:     cfg.size,
		fontPath: cfg.fontPath,
		color:    *c,
	}
	if err := a.render(); err != nil {
		return nil, err
	}
	return a, nil
}

// Text returns the single character drawn on the avatar.
func (a *Avatar) Text() string { return a.text }

// Size returns the pixel edge length of the avatar.
func (a *Avatar) Size() int { return a.size }

// FontPath returns the font file in use, or "" for the bundled font.
func (a *Avatar) FontPath() string { return a.fontPath }

// Color returns the current background color.
func (a *Avatar) Color() RGB { return a.color }

func (a *Avatar) String() string {
	return fmt.Sprintf("%s %dx%d %v", a.text, a.size, a.size, a.color)
}

// ChangeColor redraws the avatar with a new background color: a fresh random
// one when called with no argument, or the given color verbatim. The previous
// canvas is discarded. Passing more than one color is an error.
func (a *Avatar) ChangeColor(color ...RGB) error {
	var c RGB
	switch len(color) {
	case 0:
		c = randomColor()
	case 1:
		c = color[0]
	default:
		return newError(ErrInvalidInput, fmt.Sprint(color), "Pass at most one color.", "")
	}
	previous := a.color
	a.color = c
	if err := a.render(); err != nil {
		a.color = previous
		return err
	}
	return nil
}

// ChangeHexColor is ChangeColor for a CSS-style hex string.
func (a *Avatar) ChangeHexColor(s string) error {
	c, err := ParseHex(s)
	if err != nil {
		return err
	}
	return a.ChangeColor(c)
}

func checkSize(size int) error {
	if size < MinSize || size > MaxSize {
		return newError(ErrRenderingSize, strconv.Itoa(size), "", "")
	}
	return nil
}

func checkFontPath(path string) error {
	if _, err := os.Stat(path); err != nil {
		return newError(ErrFontPath, path, "", "")
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(supportedFontExts, ext) {
		return newError(ErrFontExtension, filepath.Base(path), "",
			"Supported extensions: "+strings.Join(supportedFontExts, ", ")+".")
	}
	return nil
}
