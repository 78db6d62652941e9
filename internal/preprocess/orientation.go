package preprocess

import (
	"image"
)

// correctOrientation detects sideways capture and returns a rotated copy, or
// nil when the image already reads horizontally. Printed text lines produce
// high variance in the horizontal projection profile; a sideways capture
// shows that variance across columns instead.
func correctOrientation(gray *image.Gray) image.Image {
	if profileVariance(gray, false) >= profileVariance(gray, true)*1.2 {
		return nil
	}
	return rotate90(gray)
}

// profileVariance computes the variance of per-row (or per-column) mean
// intensity.
func profileVariance(gray *image.Gray, columns bool) float64 {
	bounds := gray.Bounds()
	outer, inner := bounds.Dy(), bounds.Dx()
	if columns {
		outer, inner = inner, outer
	}
	if outer == 0 || inner == 0 {
		return 0
	}

	sums := make([]float64, outer)
	for i := 0; i < outer; i++ {
		for j := 0; j < inner; j++ {
			var v uint8
			if columns {
				v = gray.GrayAt(bounds.Min.X+i, bounds.Min.Y+j).Y
			} else {
				v = gray.GrayAt(bounds.Min.X+j, bounds.Min.Y+i).Y
			}
			sums[i] += float64(v)
		}
		sums[i] /= float64(inner)
	}

	mean := 0.0
	for _, s := range sums {
		mean += s
	}
	mean /= float64(outer)

	variance := 0.0
	for _, s := range sums {
		d := s - mean
		variance += d * d
	}
	return variance / float64(outer)
}

// rotate90 rotates clockwise by 90 degrees.
func rotate90(gray *image.Gray) *image.Gray {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewGray(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetGray(h-1-y, x, gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return out
}
