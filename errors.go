package avatar

import (
	"errors"
	"fmt"
	"strings"
)

// The kinds of validation errors this package can return. Every error coming
// out of the public API wraps one of these, so callers can match with
// errors.Is without caring about the message text.
var (
	// ErrInvalidInput covers bad dynamic input: empty text, a malformed hex
	// color string, that kind of thing.
	ErrInvalidInput = errors.New("Invalid input.")

	// ErrRenderingSize means the requested size is outside [MinSize, MaxSize].
	ErrRenderingSize = fmt.Errorf("Size must fit within range min=%d max=%d.", MinSize, MaxSize)

	// ErrFontPath means there is no font file at the given path.
	ErrFontPath = errors.New("Cannot find a font file at this location.")

	// ErrFontExtension means the font file doesn't end in .ttf or .otf.
	ErrFontExtension = errors.New("Font file extension not supported.")

	// ErrImageExtension means the requested output format (or the extension
	// of a save path) isn't one of png, jpeg or ico.
	ErrImageExtension = errors.New("Image extension not supported.")
)

// Error carries the offending value alongside the message, plus an optional
// Info string listing the valid alternatives. It renders as
// "<value> -> <message> <info>".
type Error struct {
	Kind    error
	Value   string
	Message string
	Info    string
}

func (e *Error) Error() string {
	return strings.TrimSpace(fmt.Sprintf("%s -> %s %s", e.Value, e.Message, e.Info))
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// newError builds an *Error wrapping kind. An empty message falls back to the
// kind's own text.
func newError(kind error, value, message, info string) *Error {
	if message == "" {
		message = kind.Error()
	}
	return &Error{Kind: kind, Value: value, Message: message, Info: info}
}
