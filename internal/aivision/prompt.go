package aivision

// extractionPrompt is shared by all vision-model providers. The name-handling
// examples are part of the contract: models left uninstructed concatenate
// multi-word surnames, which destroys the value for claim matching.
const extractionPrompt = `You are analyzing a travel document (boarding pass, e-ticket, or itinerary). Carefully read all text in the image and extract the structured flight data.

Return ONLY valid JSON in this exact format:
{
  "flight_segments": [
    {
      "flight_number": "LH1234",
      "carrier_name": "Lufthansa",
      "departure_airport": "FRA",
      "arrival_airport": "JFK",
      "departure_date": "2026-01-14",
      "departure_time": "10:25",
      "boarding_time": "09:40",
      "arrival_time": "13:40",
      "gate": "B12",
      "seat": "12A"
    }
  ],
  "passengers": [
    {"first_name": "Max", "last_name": "Mustermann"}
  ],
  "booking_reference": "ABC123"
}

Rules:
- flight_number is the carrier designator followed by the number, no space.
- departure_airport and arrival_airport are 3-letter IATA codes.
- departure_date must be in YYYY-MM-DD format; times in 24-hour HH:MM.
- List every flight segment for multi-leg itineraries, in travel order.
- List every passenger for group bookings, in printed order.
- If you cannot find a field, use null for that field. Never guess or invent a value.
- Preserve internal spaces in multi-word names exactly as printed. Never join the words together. Examples:
  - "GARCIA LOPEZ / MARIA" -> {"first_name": "Maria", "last_name": "Garcia Lopez"} (double surname, keep the space)
  - "VAN DER BERG / JAN" -> {"first_name": "Jan", "last_name": "Van Der Berg"} (name particles, keep every word)
  - "SMITH-JONES / MARY" -> {"first_name": "Mary", "last_name": "Smith-Jones"} (hyphen kept, no added spaces)
- Do not include any text before or after the JSON
- Do not use markdown code blocks`
