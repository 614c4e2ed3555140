package avatar

import (
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	ico "github.com/biessek/golang-ico"
	"github.com/oxtoacart/bpool"
)

// Format names an image encoding for export. Matching is case-insensitive.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	ICO  Format = "ico"
)

// Formats lists the supported export encodings.
func Formats() []Format {
	return []Format{PNG, JPEG, ICO}
}

// DefaultFilename is where Save writes when given an empty path, relative to
// the working directory.
const DefaultFilename = "avatar.png"

// Encoding goes through pooled buffers so that a server stamping out avatars
// doesn't allocate a fresh megabyte per request.
var encodeBufs = bpool.NewBufferPool(16)

func formatList() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func checkFormat(f Format) (Format, error) {
	norm := Format(strings.ToLower(string(f)))
	switch norm {
	case PNG, JPEG, ICO:
		return norm, nil
	}
	return "", newError(ErrImageExtension, string(f), "", "Supported formats: "+formatList()+".")
}

// encode assumes f has already been through checkFormat.
func (a *Avatar) encode(w io.Writer, f Format) error {
	switch f {
	case JPEG:
		return jpeg.Encode(w, a.canvas, nil)
	case ICO:
		return ico.Encode(w, a.canvas)
	default:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, a.canvas)
	}
}

// Stream returns the avatar encoded in the given format (PNG when format is
// empty). It never touches the filesystem and always re-encodes from the
// current canvas, so calling it twice without a ChangeColor in between gives
// byte-identical output.
func (a *Avatar) Stream(format Format) ([]byte, error) {
	f, err := checkFormat(orPNG(format))
	if err != nil {
		return nil, err
	}
	buf := encodeBufs.Get()
	defer encodeBufs.Put(buf)
	if err := a.encode(buf, f); err != nil {
		return nil, fmt.Errorf("couldn't encode %s: %w", f, err)
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// Base64Image returns the avatar as a data URI,
// "data:image/<format>;base64,<payload>", ready for an <img> src attribute.
func (a *Avatar) Base64Image(format Format) (string, error) {
	f, err := checkFormat(orPNG(format))
	if err != nil {
		return "", err
	}
	b, err := a.Stream(f)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/%s;base64,%s", f, base64.StdEncoding.EncodeToString(b)), nil
}

// Save writes the avatar to path, inferring the format from the file
// extension and creating any missing parent directories. An empty path means
// DefaultFilename in the working directory. Nothing is written when the
// extension isn't a supported format.
func (a *Avatar) Save(path string) error {
	if path == "" {
		path = DefaultFilename
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := checkFormat(Format(ext))
	if err != nil {
		return newError(ErrImageExtension, filepath.Base(path), "", "Supported formats: "+formatList()+".")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("couldn't create directory %s: %w", dir, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.encode(file, f); err != nil {
		file.Close()
		return fmt.Errorf("couldn't encode %s: %w", f, err)
	}
	return file.Close()
}

func orPNG(f Format) Format {
	if f == "" {
		return PNG
	}
	return f
}
