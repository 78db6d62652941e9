// Package aivision adapts external vision models that return structured
// boarding-pass data directly, bypassing pattern matching.
package aivision

import "context"

// SegmentResult is one flight leg as reported by the model. Pointer fields
// distinguish "not found" (nil) from a found value; the model is instructed
// to return null rather than guess.
type SegmentResult struct {
	FlightNumber     *string `json:"flight_number"`
	CarrierName      *string `json:"carrier_name"`
	DepartureAirport *string `json:"departure_airport"`
	ArrivalAirport   *string `json:"arrival_airport"`
	DepartureDate    *string `json:"departure_date"`
	DepartureTime    *string `json:"departure_time"`
	BoardingTime     *string `json:"boarding_time"`
	ArrivalTime      *string `json:"arrival_time"`
	Gate             *string `json:"gate"`
	Seat             *string `json:"seat"`
}

// PassengerResult is one traveler as reported by the model.
type PassengerResult struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// StructuredResult is the validated model output for one document.
type StructuredResult struct {
	FlightSegments   []SegmentResult   `json:"flight_segments"`
	Passengers       []PassengerResult `json:"passengers"`
	BookingReference *string           `json:"booking_reference"`
}

// Extractor is the interface the pipeline calls. Image data is always PNG;
// ingress conversion happens before dispatch. Implementations must honor the
// context deadline and return an error for anything that fails schema
// validation, leaving fallback decisions to the caller.
type Extractor interface {
	ExtractStructured(ctx context.Context, pngData []byte) (*StructuredResult, error)
	Close() error
}
