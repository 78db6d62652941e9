package bcbp

import (
	"image"
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// encodeQR renders a payload as a QR code image the way a mobile boarding
// pass would display it.
func encodeQR(payload string) image.Image {
	writer := qrcode.NewQRCodeWriter()
	matrix, err := writer.Encode(payload, gozxing.BarcodeFormat_QR_CODE, 400, 400, nil)
	Expect(err).NotTo(HaveOccurred())

	img := image.NewGray(image.Rect(0, 0, matrix.GetWidth(), matrix.GetHeight()))
	for y := 0; y < matrix.GetHeight(); y++ {
		for x := 0; x < matrix.GetWidth(); x++ {
			if matrix.Get(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

var _ = Describe("Decode", func() {
	When("the image contains a QR-encoded boarding pass", func() {
		const payload = "M1MUSTERMANN/MAX      EABC123 FRAJFKLH 1234 015Y012A0001 100"

		It("decodes the exact payload text", func() {
			decoded := Decode(encodeQR(payload))
			Expect(decoded).NotTo(BeNil())
			Expect(decoded.Text).To(Equal(payload))
		})

		It("reports the symbology", func() {
			decoded := Decode(encodeQR(payload))
			Expect(decoded).NotTo(BeNil())
			Expect(decoded.Format).To(Equal("qr_code"))
		})

		It("round-trips through the parser", func() {
			decoded := Decode(encodeQR(payload))
			Expect(decoded).NotTo(BeNil())

			pass, err := Parse(decoded.Text)
			Expect(err).NotTo(HaveOccurred())
			Expect(pass.Legs[0].FlightNumber).To(Equal("LH1234"))
			Expect(pass.Legs[0].Origin).To(Equal("FRA"))
			Expect(pass.Legs[0].Destination).To(Equal("JFK"))
			Expect(pass.BookingReference).To(Equal("ABC123"))
		})
	})

	When("the image contains no decodable symbol", func() {
		It("returns nil rather than an error", func() {
			blank := image.NewGray(image.Rect(0, 0, 200, 200))
			for y := 0; y < 200; y++ {
				for x := 0; x < 200; x++ {
					blank.SetGray(x, y, color.Gray{Y: 255})
				}
			}
			Expect(Decode(blank)).To(BeNil())
		})
	})
})
