// Package bcbp decodes machine-readable boarding-pass symbols and parses the
// IATA bar-coded boarding pass payload they carry.
package bcbp

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Leg is one flight leg encoded in a boarding pass.
type Leg struct {
	Origin         string
	Destination    string
	Carrier        string
	FlightNumber   string // carrier designator + number, e.g. "LH1234"
	Date           time.Time
	Cabin          string
	Seat           string
	SequenceNumber string
}

// BoardingPass is the parsed content of a BCBP "M" payload.
type BoardingPass struct {
	LastName         string
	FirstName        string
	BookingReference string
	ETicket          bool
	Legs             []Leg
}

const (
	headerLen = 23 // format code + leg count + name(20) + e-ticket flag
	legLen    = 37 // mandatory repeated items per leg
)

// honorifics are titles airlines append to the given-name field.
var honorifics = map[string]struct{}{
	"MR": {}, "MRS": {}, "MS": {}, "MISS": {}, "DR": {}, "MSTR": {},
	"CHD": {}, "INF": {},
}

// Parse parses a BCBP "M" format payload. A payload that decodes but does not
// follow the fixed-offset layout returns an error so the caller can fall
// through to other strategies; Parse never returns partial fields.
func Parse(payload string) (*BoardingPass, error) {
	return ParseAt(payload, time.Now())
}

// ParseAt is Parse with an explicit reference time for resolving the
// Julian flight date.
func ParseAt(payload string, now time.Time) (*BoardingPass, error) {
	if len(payload) < headerLen+legLen {
		return nil, fmt.Errorf("payload too short: %d bytes", len(payload))
	}
	if payload[0] != 'M' {
		return nil, fmt.Errorf("unknown format code %q", payload[0])
	}

	legCount := int(payload[1] - '0')
	if legCount < 1 || legCount > 4 {
		return nil, fmt.Errorf("invalid leg count %q", payload[1])
	}

	last, first, err := parseName(payload[2:22])
	if err != nil {
		return nil, err
	}

	bp := &BoardingPass{
		LastName:  last,
		FirstName: first,
		ETicket:   payload[22] == 'E',
	}

	offset := headerLen
	for i := 0; i < legCount; i++ {
		if offset+legLen > len(payload) {
			return nil, fmt.Errorf("truncated leg %d at offset %d", i+1, offset)
		}
		block := payload[offset : offset+legLen]

		leg, varSize, err := parseLeg(block, now)
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", i+1, err)
		}

		if i == 0 {
			bp.BookingReference = strings.TrimSpace(block[0:7])
		}
		bp.Legs = append(bp.Legs, leg)

		offset += legLen + varSize
		if offset > len(payload) {
			return nil, fmt.Errorf("leg %d variable field overruns payload", i+1)
		}
	}

	return bp, nil
}

func parseName(field string) (last, first string, err error) {
	idx := strings.IndexByte(field, '/')
	if idx < 1 {
		return "", "", fmt.Errorf("name field %q missing surname separator", strings.TrimSpace(field))
	}
	last = strings.TrimSpace(field[:idx])
	first = strings.TrimSpace(field[idx+1:])
	if last == "" {
		return "", "", fmt.Errorf("empty surname in name field %q", strings.TrimSpace(field))
	}

	// Airlines append honorifics to the given name ("LUC MR"); strip a single
	// trailing title but keep genuine multi-word given names intact.
	words := strings.Fields(first)
	if len(words) > 1 {
		if _, ok := honorifics[words[len(words)-1]]; ok {
			first = strings.Join(words[:len(words)-1], " ")
		}
	}
	return last, first, nil
}

func parseLeg(block string, now time.Time) (Leg, int, error) {
	var leg Leg

	leg.Origin = strings.TrimSpace(block[7:10])
	leg.Destination = strings.TrimSpace(block[10:13])
	leg.Carrier = strings.TrimSpace(block[13:16])
	if !isAlpha3(leg.Origin) || !isAlpha3(leg.Destination) {
		return leg, 0, fmt.Errorf("invalid airport pair %q/%q", leg.Origin, leg.Destination)
	}
	if leg.Carrier == "" || !isAlnum(leg.Carrier) {
		return leg, 0, fmt.Errorf("invalid carrier %q", leg.Carrier)
	}

	num := strings.TrimSpace(block[16:21])
	// Flight number is up to four digits plus an optional alpha suffix.
	digits := strings.TrimRight(num, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if digits == "" || !isDigits(digits) {
		return leg, 0, fmt.Errorf("invalid flight number %q", num)
	}
	leg.FlightNumber = leg.Carrier + strings.TrimLeft(digits, "0") + num[len(digits):]
	if leg.FlightNumber == leg.Carrier {
		return leg, 0, fmt.Errorf("zero flight number %q", num)
	}

	julian, err := strconv.Atoi(strings.TrimSpace(block[21:24]))
	if err != nil || julian < 1 || julian > 366 {
		return leg, 0, fmt.Errorf("invalid julian date %q", block[21:24])
	}
	leg.Date = resolveJulian(julian, now)

	leg.Cabin = strings.TrimSpace(block[24:25])
	leg.Seat = normalizeSeat(block[25:29])
	leg.SequenceNumber = strings.TrimLeft(strings.TrimSpace(block[29:34]), "0")

	varSize, err := strconv.ParseInt(strings.TrimSpace(block[35:37]), 16, 32)
	if err != nil || varSize < 0 {
		return leg, 0, fmt.Errorf("invalid variable field size %q", block[35:37])
	}

	return leg, int(varSize), nil
}

// resolveJulian maps a day-of-year with no encoded year to the calendar date
// closest to now, checking the previous, current, and next year.
func resolveJulian(day int, now time.Time) time.Time {
	var best time.Time
	var bestDiff time.Duration
	for _, year := range []int{now.Year() - 1, now.Year(), now.Year() + 1} {
		d := time.Date(year, 1, day, 0, 0, 0, 0, time.UTC)
		diff := d.Sub(now)
		if diff < 0 {
			diff = -diff
		}
		if best.IsZero() || diff < bestDiff {
			best, bestDiff = d, diff
		}
	}
	return best
}

// normalizeSeat turns the padded seat field ("012A") into its printed form
// ("12A"). All-space fields mean no seat assignment.
func normalizeSeat(field string) string {
	s := strings.TrimSpace(field)
	if s == "" {
		return ""
	}
	return strings.TrimLeft(s, "0")
}

func isAlpha3(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isAlnum(s string) bool {
	for _, r := range s {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
