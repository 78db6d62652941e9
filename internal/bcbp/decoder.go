package bcbp

import (
	"image"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/aztec"
	"github.com/makiuchi-d/gozxing/datamatrix"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// Decoded is the raw payload of a machine-readable symbol found in an image.
type Decoded struct {
	Text   string
	Format string // lowercased symbology name, e.g. "qr_code", "aztec"
}

// Decode scans the image for the symbologies printed on boarding passes and
// returns the first decodable payload. It returns nil when no symbol decodes;
// absence of a barcode is an expected case, not an error.
func Decode(img image.Image) *Decoded {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil
	}

	// Mobile passes use 2D symbologies, older printed stock uses Code 128.
	readers := []gozxing.Reader{
		qrcode.NewQRCodeReader(),
		aztec.NewAztecReader(),
		datamatrix.NewDataMatrixReader(),
		oned.NewCode128Reader(),
	}

	for _, reader := range readers {
		result, err := reader.Decode(bmp, nil)
		if err != nil {
			continue
		}
		text := result.GetText()
		if strings.TrimSpace(text) == "" {
			continue
		}
		return &Decoded{
			Text:   text,
			Format: strings.ToLower(result.GetBarcodeFormat().String()),
		}
	}
	return nil
}
