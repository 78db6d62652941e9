package extraction

// Field keys used in confidence maps. Only these seven contribute to the
// overall score; auxiliary fields (times, gate, carrier) ride along unscored.
const (
	FieldFlightNumber     = "flightNumber"
	FieldDate             = "date"
	FieldDepartureAirport = "departureAirport"
	FieldArrivalAirport   = "arrivalAirport"
	FieldPassengerName    = "passengerName"
	FieldBookingReference = "bookingReference"
	FieldSeat             = "seat"
)

// fieldWeights reflect how much each field matters to a compensation claim:
// the flight and its date identify the disruption, airports and passenger
// corroborate it, reference and seat are conveniences.
var fieldWeights = map[string]float64{
	FieldFlightNumber:     0.25,
	FieldDate:             0.20,
	FieldDepartureAirport: 0.15,
	FieldArrivalAirport:   0.15,
	FieldPassengerName:    0.15,
	FieldBookingReference: 0.07,
	FieldSeat:             0.03,
}

// OverallConfidence collapses per-field confidences into one score in [0, 1].
// Missing fields count as zero, so a result with only a seat scores near
// nothing no matter how crisply the seat was read. An empty map scores 0.
func OverallConfidence(fields map[string]float64) float64 {
	if len(fields) == 0 {
		return 0
	}

	var weightSum, scoreSum float64
	for field, weight := range fieldWeights {
		weightSum += weight
		conf := fields[field]
		if conf < 0 {
			conf = 0
		}
		if conf > 1 {
			conf = 1
		}
		scoreSum += weight * conf
	}
	if weightSum == 0 {
		return 0
	}
	return scoreSum / weightSum
}
