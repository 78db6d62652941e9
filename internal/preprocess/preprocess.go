// Package preprocess generates targeted image variants for OCR. The set is
// intentionally small: each variant earns its place by helping a specific
// capture condition, and an over-aggressive universal pipeline degrades
// already-clean images.
package preprocess

import (
	"image"
	"image/color"

	"github.com/sunshineplan/imgconv"
)

// Variant is one named preprocessed rendition of the input image.
type Variant struct {
	Name  string
	Image image.Image
}

// Variants produces the OCR input set for img. Deterministic, no external
// calls. Order matters: cheaper, less destructive variants come first.
func Variants(img image.Image) []Variant {
	gray := ToGray(img)

	variants := []Variant{{Name: "original", Image: img}}

	if rotated := correctOrientation(gray); rotated != nil {
		variants = append(variants, Variant{Name: "orientation", Image: rotated})
	}

	// Contrast-stretched grayscale: washed-out photos under poor lighting.
	variants = append(variants, Variant{Name: "gray-contrast", Image: stretchContrast(gray)})

	// Sharpened: digital screenshots where scaling introduced aliasing.
	variants = append(variants, Variant{Name: "sharpen", Image: sharpen(gray)})

	// Binary threshold: high-contrast printed passes.
	variants = append(variants, Variant{Name: "threshold", Image: otsuThreshold(gray)})

	// Upscale: small or low-resolution captures where glyphs are too few
	// pixels tall for the recognizer.
	bounds := img.Bounds()
	upscaled := imgconv.Resize(img, &imgconv.ResizeOption{
		Width:  bounds.Dx() * 2,
		Height: bounds.Dy() * 2,
	})
	variants = append(variants, Variant{Name: "upscale-2x", Image: upscaled})

	return variants
}

// ToGray converts any image to grayscale.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return gray
}

// stretchContrast rescales intensities so the 2nd..98th percentile span the
// full range. Outlier-tolerant, unlike a plain min/max stretch.
func stretchContrast(gray *image.Gray) *image.Gray {
	bounds := gray.Bounds()
	var hist [256]int
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[gray.GrayAt(x, y).Y]++
			total++
		}
	}
	if total == 0 {
		return gray
	}

	lo, hi := percentile(hist[:], total, 0.02), percentile(hist[:], total, 0.98)
	if hi <= lo {
		return gray
	}

	out := image.NewGray(bounds)
	scale := 255.0 / float64(hi-lo)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := float64(int(gray.GrayAt(x, y).Y)-lo) * scale
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			out.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	return out
}

func percentile(hist []int, total int, p float64) int {
	target := int(float64(total) * p)
	cum := 0
	for i, n := range hist {
		cum += n
		if cum >= target {
			return i
		}
	}
	return 255
}

// sharpen applies an unsharp 3x3 kernel.
func sharpen(gray *image.Gray) *image.Gray {
	bounds := gray.Bounds()
	out := image.NewGray(bounds)
	kernel := [3][3]int{{0, -1, 0}, {-1, 5, -1}, {0, -1, 0}}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sum := 0
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					sx, sy := x+kx, y+ky
					if sx < bounds.Min.X {
						sx = bounds.Min.X
					}
					if sx >= bounds.Max.X {
						sx = bounds.Max.X - 1
					}
					if sy < bounds.Min.Y {
						sy = bounds.Min.Y
					}
					if sy >= bounds.Max.Y {
						sy = bounds.Max.Y - 1
					}
					sum += kernel[ky+1][kx+1] * int(gray.GrayAt(sx, sy).Y)
				}
			}
			if sum < 0 {
				sum = 0
			}
			if sum > 255 {
				sum = 255
			}
			out.SetGray(x, y, color.Gray{Y: uint8(sum)})
		}
	}
	return out
}

// otsuThreshold binarizes with Otsu's global threshold.
func otsuThreshold(gray *image.Gray) *image.Gray {
	bounds := gray.Bounds()
	var hist [256]int
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[gray.GrayAt(x, y).Y]++
			total++
		}
	}
	if total == 0 {
		return gray
	}

	sum := 0.0
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	var sumB, wB float64
	threshold := 0
	maxVar := 0.0
	for i, n := range hist {
		wB += float64(n)
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(i) * float64(n)
		mB := sumB / wB
		mF := (sum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > maxVar {
			maxVar = between
			threshold = i
		}
	}

	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if int(gray.GrayAt(x, y).Y) <= threshold {
				out.SetGray(x, y, color.Gray{Y: 0})
			} else {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return out
}
