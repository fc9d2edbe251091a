package imaging

import (
	"bytes"
	"io"

	"github.com/disintegration/imaging"
)

const (
	// Stored images are normalized to a square cover crop so the storefront
	// grid never has to letterbox.
	Width  = 600
	Height = 600

	jpegQuality = 80
)

// Process decodes an uploaded image, cover-crops it to 600x600 and
// re-encodes it as JPEG. The transformation is fixed; callers get back the
// bytes to store.
func Process(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	img = imaging.Fill(img, Width, Height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
