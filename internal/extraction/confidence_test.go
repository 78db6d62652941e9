package extraction

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("OverallConfidence", func() {
	var (
		fields map[string]float64
		score  float64
	)

	JustBeforeEach(func() {
		score = OverallConfidence(fields)
	})

	When("no fields were extracted", func() {
		BeforeEach(func() {
			fields = map[string]float64{}
		})

		It("should score zero", func() {
			Expect(score).To(BeZero())
		})
	})

	When("every field was extracted at the same confidence", func() {
		BeforeEach(func() {
			fields = map[string]float64{
				FieldFlightNumber:     0.95,
				FieldDate:             0.95,
				FieldDepartureAirport: 0.95,
				FieldArrivalAirport:   0.95,
				FieldPassengerName:    0.95,
				FieldBookingReference: 0.95,
				FieldSeat:             0.95,
			}
		})

		It("should score exactly that confidence", func() {
			Expect(score).To(BeNumerically("~", 0.95, 1e-9))
		})
	})

	When("only low-weight fields were extracted", func() {
		BeforeEach(func() {
			fields = map[string]float64{
				FieldSeat:             1.0,
				FieldBookingReference: 1.0,
			}
		})

		It("should score low despite perfect per-field confidence", func() {
			Expect(score).To(BeNumerically("~", 0.10, 1e-9))
			Expect(score).To(BeNumerically("<", 0.5))
		})
	})

	When("the identifying fields were extracted", func() {
		BeforeEach(func() {
			fields = map[string]float64{
				FieldFlightNumber: 0.9,
				FieldDate:         0.8,
			}
		})

		It("should weight the flight number heaviest", func() {
			Expect(score).To(BeNumerically("~", 0.25*0.9+0.20*0.8, 1e-9))
		})
	})

	When("confidences are out of range", func() {
		BeforeEach(func() {
			fields = map[string]float64{
				FieldFlightNumber: 1.7,
				FieldDate:         -0.4,
			}
		})

		It("should clamp into [0, 1] before weighting", func() {
			Expect(score).To(BeNumerically("~", 0.25, 1e-9))
		})
	})

	When("the map holds only unknown keys", func() {
		BeforeEach(func() {
			fields = map[string]float64{"gate": 0.9}
		})

		It("should ignore them", func() {
			Expect(score).To(BeZero())
		})
	})
})
