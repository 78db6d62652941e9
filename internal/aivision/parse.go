package aivision

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// resultSchema is the strict schema every model response must satisfy before
// any field is trusted. Validation failure is a strategy failure, never a
// partially-trusted result.
const resultSchema = `{
  "type": "object",
  "required": ["flight_segments", "passengers"],
  "properties": {
    "flight_segments": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "flight_number":     {"type": ["string", "null"]},
          "carrier_name":      {"type": ["string", "null"]},
          "departure_airport": {"type": ["string", "null"], "pattern": "^[A-Za-z]{3}$"},
          "arrival_airport":   {"type": ["string", "null"], "pattern": "^[A-Za-z]{3}$"},
          "departure_date":    {"type": ["string", "null"]},
          "departure_time":    {"type": ["string", "null"]},
          "boarding_time":     {"type": ["string", "null"]},
          "arrival_time":      {"type": ["string", "null"]},
          "gate":              {"type": ["string", "null"]},
          "seat":              {"type": ["string", "null"]}
        },
        "additionalProperties": false
      }
    },
    "passengers": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "first_name": {"type": ["string", "null"]},
          "last_name":  {"type": ["string", "null"]}
        },
        "additionalProperties": false
      }
    },
    "booking_reference": {"type": ["string", "null"]}
  },
  "additionalProperties": false
}`

var compiledSchema = jsonschema.MustCompileString("boardingpass.json", resultSchema)

var dateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
	"02 Jan 2006",
	"02Jan2006",
}

// parseStructuredJSON turns a raw model response into a validated
// StructuredResult. Markdown fences and surrounding prose are tolerated;
// anything that fails schema validation is not.
func parseStructuredJSON(text string) (*StructuredResult, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSpace(text)

	startIdx := strings.Index(text, "{")
	endIdx := strings.LastIndex(text, "}")
	if startIdx == -1 || endIdx < startIdx {
		return nil, fmt.Errorf("no JSON object found in response")
	}
	text = text[startIdx : endIdx+1]

	var generic interface{}
	if err := json.Unmarshal([]byte(text), &generic); err != nil {
		return nil, fmt.Errorf("unmarshaling json: %w", err)
	}
	if err := compiledSchema.Validate(generic); err != nil {
		return nil, fmt.Errorf("response failed schema validation: %w", err)
	}

	var result StructuredResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("unmarshaling result: %w", err)
	}

	normalize(&result)
	return &result, nil
}

// normalize trims fields, uppercases airport codes, and canonicalizes dates.
// A field that cannot be normalized is demoted to "not found" rather than
// passed through malformed.
func normalize(r *StructuredResult) {
	for i := range r.FlightSegments {
		s := &r.FlightSegments[i]
		s.FlightNumber = cleanUpper(s.FlightNumber)
		if s.FlightNumber != nil {
			v := strings.ReplaceAll(*s.FlightNumber, " ", "")
			s.FlightNumber = &v
		}
		s.CarrierName = clean(s.CarrierName)
		s.DepartureAirport = cleanUpper(s.DepartureAirport)
		s.ArrivalAirport = cleanUpper(s.ArrivalAirport)
		s.DepartureDate = cleanDate(s.DepartureDate)
		s.DepartureTime = clean(s.DepartureTime)
		s.BoardingTime = clean(s.BoardingTime)
		s.ArrivalTime = clean(s.ArrivalTime)
		s.Gate = cleanUpper(s.Gate)
		s.Seat = cleanUpper(s.Seat)
	}

	passengers := r.Passengers[:0]
	for _, p := range r.Passengers {
		p.FirstName = clean(p.FirstName)
		p.LastName = clean(p.LastName)
		if p.FirstName == nil && p.LastName == nil {
			continue
		}
		passengers = append(passengers, p)
	}
	r.Passengers = passengers

	r.BookingReference = cleanUpper(r.BookingReference)
}

// clean trims surrounding whitespace and collapses interior runs to single
// spaces, preserving the word structure of multi-word names.
func clean(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.Join(strings.Fields(*s), " ")
	if v == "" {
		return nil
	}
	return &v
}

func cleanUpper(s *string) *string {
	c := clean(s)
	if c == nil {
		return nil
	}
	v := strings.ToUpper(*c)
	return &v
}

func cleanDate(s *string) *string {
	c := clean(s)
	if c == nil {
		return nil
	}
	for _, layout := range dateFormats {
		if d, err := time.Parse(layout, *c); err == nil {
			v := d.Format("2006-01-02")
			return &v
		}
	}
	return nil
}
