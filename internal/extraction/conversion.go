package extraction

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gen2brain/go-fitz"
	"github.com/gen2brain/heic"
)

// document is the ingress-normalized form every strategy consumes: a decoded
// raster for barcode/OCR work and the PNG encoding sent to vision models.
type document struct {
	img image.Image
	png []byte
}

// prepareDocument sniffs the real media type, enforces the byte cap, and
// renders the input to a raster. All failures here are fatal; nothing
// downstream can recover from bytes that do not decode.
func prepareDocument(data []byte, maxBytes int64) (*document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", ErrFatalInput)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrFatalInput, len(data), maxBytes)
	}

	mime := mimetype.Detect(data)

	var img image.Image
	var err error
	switch {
	case mime.Is("application/pdf"):
		img, err = pdfFirstPage(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFatalInput, err)
		}
	case mime.Is("image/heic") || mime.Is("image/heif") || isHEICData(data):
		img, err = heic.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: decoding HEIC image: %v", ErrFatalInput, err)
		}
	case mime.Is("image/png") || mime.Is("image/jpeg") || mime.Is("image/gif"):
		img, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: decoding image: %v", ErrFatalInput, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported media type %s", ErrFatalInput, mime.String())
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encoding PNG: %v", ErrFatalInput, err)
	}

	return &document{img: img, png: buf.Bytes()}, nil
}

// pdfFirstPage renders the first page of a PDF. Boarding passes attached to
// emails are single-page documents; later pages are fare conditions.
func pdfFirstPage(data []byte) (image.Image, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF page: %w", err)
	}
	return img, nil
}

// isHEICData checks the ftyp box brands for HEIC containers that type
// sniffing misses.
func isHEICData(data []byte) bool {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	switch string(data[8:12]) {
	case "heic", "heif", "mif1", "msf1":
		return true
	}
	return false
}
