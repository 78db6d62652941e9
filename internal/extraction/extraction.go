// Package extraction orchestrates the multi-strategy pipeline that turns an
// uploaded travel document into structured flight data with per-field
// confidence scores.
package extraction

import "errors"

// ErrFatalInput is the only error class Extract returns. It covers input that
// no strategy can work with: unreadable bytes, unsupported media types, and
// oversized payloads. Everything else degrades into warnings on the result.
var ErrFatalInput = errors.New("unprocessable input")

// Method identifies which strategy produced the winning result. Barcode
// methods carry the symbology, e.g. "barcode:qr_code".
type Method string

const (
	MethodAIStructured Method = "ai_structured"
	MethodOCR          Method = "ocr"
	MethodNone         Method = "none"
)

// MethodBarcode builds the method tag for a decoded symbology.
func MethodBarcode(format string) Method {
	return Method("barcode:" + format)
}

// FlightSegment is one leg of a journey. Empty string means not found.
type FlightSegment struct {
	FlightNumber     string `json:"flight_number,omitempty"`
	CarrierName      string `json:"carrier_name,omitempty"`
	DepartureAirport string `json:"departure_airport,omitempty"`
	ArrivalAirport   string `json:"arrival_airport,omitempty"`
	DepartureDate    string `json:"departure_date,omitempty"`
	DepartureTime    string `json:"departure_time,omitempty"`
	BoardingTime     string `json:"boarding_time,omitempty"`
	ArrivalTime      string `json:"arrival_time,omitempty"`
	Gate             string `json:"gate,omitempty"`
	Seat             string `json:"seat,omitempty"`
}

// Passenger is one traveler named on the document.
type Passenger struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Request is one document to extract from.
type Request struct {
	Data        []byte
	ContentType string // client hint; the sniffed type wins on disagreement
	Filename    string
}

// Result is the merged outcome of all strategies that ran. Warnings carry
// advisory notes about values that were adjusted or discarded; Errors carry
// strategy failures that were absorbed rather than returned.
type Result struct {
	Method            Method             `json:"method"`
	Segments          []FlightSegment    `json:"flight_segments"`
	Passengers        []Passenger        `json:"passengers"`
	BookingReference  string             `json:"booking_reference,omitempty"`
	FieldConfidence   map[string]float64 `json:"field_confidence"`
	OverallConfidence float64            `json:"overall_confidence"`
	Warnings          []string           `json:"warnings,omitempty"`
	Errors            []string           `json:"errors,omitempty"`
	ProcessingTimeMs  int64              `json:"processing_time_ms"`
}
