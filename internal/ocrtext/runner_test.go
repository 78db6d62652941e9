package ocrtext

import (
	"context"
	"errors"
	"image"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zombor/flightclaim/internal/airports"
	"github.com/zombor/flightclaim/internal/preprocess"
)

// stubRecognizer returns canned text per variant name, or an error.
type stubRecognizer struct {
	texts map[string]string
	err   error
}

func (s *stubRecognizer) Recognize(_ context.Context, img image.Image, psm int) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	// The variant is identified by a 1x1 marker pixel encoded in the test
	// setup; here we key off image dimensions instead, so each variant gets
	// a distinct size.
	return s.texts[dimensionKey(img)], nil
}

func dimensionKey(img image.Image) string {
	b := img.Bounds()
	if b.Dx() == 10 {
		return "poor"
	}
	return "good"
}

func grayOf(w int) image.Image { return image.NewGray(image.Rect(0, 0, w, 10)) }

var _ = Describe("Runner", func() {
	var (
		recognizer *stubRecognizer
		runner     *Runner
		variants   []preprocess.Variant
		attempt    *Attempt
		warnings   []string
	)

	BeforeEach(func() {
		recognizer = &stubRecognizer{texts: map[string]string{}}
		parser := NewParser(DefaultConfig(), airports.NewIndex())
		runner = NewRunner(recognizer, parser, []int{3, 6})
		variants = []preprocess.Variant{
			{Name: "original", Image: grayOf(10)},
			{Name: "threshold", Image: grayOf(20)},
		}
	})

	JustBeforeEach(func() {
		attempt, warnings = runner.Run(context.Background(), variants)
	})

	When("one variant yields more fields than another", func() {
		BeforeEach(func() {
			recognizer.texts["poor"] = "FLIGHT LH 1234"
			recognizer.texts["good"] = "FLIGHT LH 1234 FROM FRA TO JFK DATE 14JAN26"
		})

		It("keeps the attempt with the most parsed fields", func() {
			Expect(attempt).NotTo(BeNil())
			Expect(attempt.VariantName).To(Equal("threshold"))
			Expect(attempt.Fields.Count()).To(Equal(4))
		})
	})

	When("no attempt reaches the minimum field count", func() {
		BeforeEach(func() {
			recognizer.texts["poor"] = "LOREM IPSUM"
			recognizer.texts["good"] = "FLIGHT LH 1234"
		})

		It("returns no attempt", func() {
			Expect(attempt).To(BeNil())
		})

		It("explains the insufficient field count", func() {
			Expect(warnings).NotTo(BeEmpty())
			Expect(warnings[0]).To(ContainSubstring("insufficient recognized fields"))
		})
	})

	When("the recognizer is unavailable", func() {
		BeforeEach(func() {
			recognizer.err = errors.New("exec: tesseract: not found")
		})

		It("reports a strategy-level warning instead of panicking", func() {
			Expect(attempt).To(BeNil())
			Expect(warnings).NotTo(BeEmpty())
			Expect(warnings[0]).To(ContainSubstring("no recognition attempt completed"))
		})
	})
})
