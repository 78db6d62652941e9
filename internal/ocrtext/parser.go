package ocrtext

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/zombor/flightclaim/internal/airports"
)

// Config holds the parser tuning parameters. The proximity window and the
// blocklists were discovered empirically against real documents; they are
// configuration, not constants, and are expected to keep moving as the test
// corpus grows.
type Config struct {
	// ProximityWindow is the character distance within which a keyword
	// counts as "near" a candidate value.
	ProximityWindow int
	// MinFields is the minimum number of parsed fields for the OCR path to
	// report success.
	MinFields int
	// MinFlightDuration rejects arrival times implausibly close to (or
	// before) the departure time.
	MinFlightDuration time.Duration
	// NonNameTerms are boarding-pass words that must never be read as part
	// of a passenger name.
	NonNameTerms []string
	// NonReferenceTerms are six-character words that must never be read as
	// a booking reference.
	NonReferenceTerms []string
}

// DefaultConfig returns the tuning defaults.
func DefaultConfig() Config {
	return Config{
		ProximityWindow:   40,
		MinFields:         3,
		MinFlightDuration: 45 * time.Minute,
		NonNameTerms: []string{
			"BOARDING", "PASS", "PASSENGER", "NAME", "FLIGHT", "GATE", "SEAT",
			"CLASS", "ECONOMY", "BUSINESS", "FIRST", "ZONE", "GROUP", "DATE",
			"DEPARTURE", "ARRIVAL", "TERMINAL", "AIRLINES", "AIRWAYS",
		},
		NonReferenceTerms: []string{
			"FLIGHT", "TICKET", "NUMBER", "ONLINE", "TRAVEL", "RECORD",
		},
	}
}

// Field is one parsed candidate value with its confidence estimate.
type Field struct {
	Value      string
	Confidence float64
}

func (f Field) set() bool { return f.Value != "" }

// Fields holds all candidate values parsed from one recognized text.
type Fields struct {
	FlightNumber     Field
	DepartureAirport Field
	ArrivalAirport   Field
	Date             Field // ISO 8601
	DepartureTime    Field // HH:MM
	BoardingTime     Field
	ArrivalTime      Field
	PassengerFirst   string
	PassengerLast    string
	NameConfidence   float64
	BookingReference Field
	Seat             Field
	Notes            []string
}

// Count returns the number of core fields recognized. Times are auxiliary
// and do not count toward the minimum-field threshold.
func (f Fields) Count() int {
	n := 0
	for _, fld := range []Field{
		f.FlightNumber, f.DepartureAirport, f.ArrivalAirport,
		f.Date, f.BookingReference, f.Seat,
	} {
		if fld.set() {
			n++
		}
	}
	if f.PassengerLast != "" {
		n++
	}
	return n
}

// MeanConfidence averages the confidences of the recognized core fields.
func (f Fields) MeanConfidence() float64 {
	sum, n := 0.0, 0
	for _, fld := range []Field{
		f.FlightNumber, f.DepartureAirport, f.ArrivalAirport,
		f.Date, f.BookingReference, f.Seat,
	} {
		if fld.set() {
			sum += fld.Confidence
			n++
		}
	}
	if f.PassengerLast != "" {
		sum += f.NameConfidence
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Parser extracts candidate field values from OCR text using pattern matching
// informed by keyword proximity.
type Parser struct {
	cfg      Config
	airports airports.Lookup

	nonName map[string]struct{}
	nonRef  map[string]struct{}
}

// NewParser creates a Parser backed by the reference airport dataset.
func NewParser(cfg Config, lookup airports.Lookup) *Parser {
	p := &Parser{
		cfg:      cfg,
		airports: lookup,
		nonName:  make(map[string]struct{}, len(cfg.NonNameTerms)),
		nonRef:   make(map[string]struct{}, len(cfg.NonReferenceTerms)),
	}
	for _, t := range cfg.NonNameTerms {
		p.nonName[strings.ToUpper(t)] = struct{}{}
	}
	for _, t := range cfg.NonReferenceTerms {
		p.nonRef[strings.ToUpper(t)] = struct{}{}
	}
	return p
}

// Parse extracts candidate fields from recognized text.
func (p *Parser) Parse(text string) Fields {
	up := strings.ToUpper(text)
	var f Fields
	p.parseFlightNumber(up, &f)
	p.parseAirports(up, &f)
	p.parseDate(up, &f)
	p.parseTimes(up, &f)
	p.parseName(up, &f)
	p.parseBookingReference(up, &f)
	p.parseSeat(up, &f)
	return f
}

var (
	flightRe   = regexp.MustCompile(`\b([A-Z]{2}|[A-Z][0-9]|[0-9][A-Z])\s?([0-9]{2,4})\b`)
	airportRe  = regexp.MustCompile(`\b[A-Z]{3}\b`)
	isoDateRe  = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	numDateRe  = regexp.MustCompile(`\b(\d{1,2})[/.-](\d{1,2})[/.-](\d{4})\b`)
	cmpDateRe  = regexp.MustCompile(`\b(\d{1,2})\s?(JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC)\s?(\d{4}|\d{2})`)
	clockRe    = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
	slashNameRe = regexp.MustCompile(`\b([A-Z][A-Z ]*[A-Z])/([A-Z][A-Z ]*[A-Z]|[A-Z])\b`)
	wordNameRe  = regexp.MustCompile(`\b([A-Z]{2,})((?: [A-Z]{2,})+)\b`)
	bookingRe   = regexp.MustCompile(`\b([A-Z0-9]{6})\b`)
	seatRe      = regexp.MustCompile(`\b([1-9]\d?[A-K])\b`)
)

var months = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// precedingKeywordDistance returns the smallest distance from pos back to a
// keyword occurrence starting before pos, or a value past the window when
// none precedes it.
func (p *Parser) precedingKeywordDistance(text string, pos int, keywords ...string) int {
	best := p.cfg.ProximityWindow + 1
	for _, kw := range keywords {
		start := 0
		for {
			idx := strings.Index(text[start:], kw)
			if idx < 0 {
				break
			}
			abs := start + idx
			if abs < pos && pos-abs < best {
				best = pos - abs
			}
			start = abs + len(kw)
		}
	}
	return best
}

// near reports whether any keyword occurs within the proximity window of pos.
func (p *Parser) near(text string, pos int, keywords ...string) bool {
	for _, kw := range keywords {
		start := 0
		for {
			idx := strings.Index(text[start:], kw)
			if idx < 0 {
				break
			}
			abs := start + idx
			d := pos - abs
			if d < 0 {
				d = -d
			}
			if d <= p.cfg.ProximityWindow+len(kw) {
				return true
			}
			start = abs + len(kw)
		}
	}
	return false
}

func (p *Parser) parseFlightNumber(up string, f *Fields) {
	matches := flightRe.FindAllStringSubmatchIndex(up, -1)
	for _, m := range matches {
		carrier := up[m[2]:m[3]]
		number := up[m[4]:m[5]]
		// Two plain digits alone ("12") are more likely a gate or row.
		if len(number) < 3 && !p.near(up, m[0], "FLIGHT", "FLT") {
			continue
		}
		if _, blocked := p.nonName[carrier]; blocked {
			continue
		}
		conf := 0.75
		if p.near(up, m[0], "FLIGHT", "FLT") {
			conf = 0.9
		}
		if conf > f.FlightNumber.Confidence {
			f.FlightNumber = Field{Value: carrier + strings.TrimLeft(number, "0"), Confidence: conf}
		}
	}
}

func (p *Parser) parseAirports(up string, f *Fields) {
	type candidate struct {
		code string
		pos  int
	}
	var candidates []candidate
	for _, m := range airportRe.FindAllStringIndex(up, -1) {
		code := up[m[0]:m[1]]
		if p.airports.IsBlocked(code) {
			continue
		}
		if !p.airports.IsValidAirportCode(code) {
			// A three-letter token the dataset cannot validate is discarded,
			// never returned on the chance it happens to be real.
			continue
		}
		candidates = append(candidates, candidate{code: code, pos: m[0]})
	}

	// Labels precede their values on boarding passes, so only keywords to
	// the left of a code count; the closer label wins when both sides match.
	for _, c := range candidates {
		depDist := p.precedingKeywordDistance(up, c.pos, "FROM", "DEPARTURE", "ORIGIN")
		arrDist := p.precedingKeywordDistance(up, c.pos, " TO ", "ARRIVAL", "DESTINATION")
		switch {
		case depDist <= p.cfg.ProximityWindow && depDist <= arrDist && !f.DepartureAirport.set():
			f.DepartureAirport = Field{Value: c.code, Confidence: 0.85}
		case arrDist <= p.cfg.ProximityWindow && !f.ArrivalAirport.set():
			f.ArrivalAirport = Field{Value: c.code, Confidence: 0.85}
		}
	}

	// Fall back to reading order for whichever side labels did not resolve.
	for _, c := range candidates {
		if c.code == f.DepartureAirport.Value || c.code == f.ArrivalAirport.Value {
			continue
		}
		if !f.DepartureAirport.set() {
			f.DepartureAirport = Field{Value: c.code, Confidence: 0.7}
		} else if !f.ArrivalAirport.set() {
			f.ArrivalAirport = Field{Value: c.code, Confidence: 0.7}
		}
	}
}

func (p *Parser) parseDate(up string, f *Fields) {
	type candidate struct {
		date time.Time
		pos  int
	}
	var candidates []candidate

	for _, m := range isoDateRe.FindAllStringSubmatchIndex(up, -1) {
		if d, err := time.Parse("2006-01-02", up[m[0]:m[1]]); err == nil {
			candidates = append(candidates, candidate{d, m[0]})
		}
	}
	for _, m := range numDateRe.FindAllStringSubmatchIndex(up, -1) {
		raw := up[m[0]:m[1]]
		norm := strings.NewReplacer(".", "/", "-", "/").Replace(raw)
		if d, err := time.Parse("2/1/2006", norm); err == nil {
			candidates = append(candidates, candidate{d, m[0]})
		}
	}
	for _, m := range cmpDateRe.FindAllStringSubmatchIndex(up, -1) {
		day := up[m[2]:m[3]]
		mon := up[m[4]:m[5]]
		year := up[m[6]:m[7]]
		if len(year) == 2 {
			// A two-digit year followed by another letter or digit reads just
			// as plausibly as a seat or flight token; skip those.
			if m[1] < len(up) && isAlnumByte(up[m[1]]) {
				continue
			}
			year = "20" + year
		}
		d, err := time.Parse("2-1-2006", fmt.Sprintf("%s-%d-%s", day, int(months[mon]), year))
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{d, m[0]})
	}

	for _, c := range candidates {
		conf := 0.7
		if p.near(up, c.pos, "DATE", "DEPARTURE") {
			conf = 0.85
		}
		if conf > f.Date.Confidence {
			f.Date = Field{Value: c.date.Format("2006-01-02"), Confidence: conf}
		}
	}
}

func (p *Parser) parseTimes(up string, f *Fields) {
	for _, m := range clockRe.FindAllStringIndex(up, -1) {
		value := up[m[0]:m[1]]
		switch {
		case p.near(up, m[0], "BOARDING", "BRDG", "GATE CLOSE"):
			if !f.BoardingTime.set() {
				f.BoardingTime = Field{Value: padClock(value), Confidence: 0.7}
			}
		case p.near(up, m[0], "ARRIVAL", "ARRIVES", "STA", "ETA"):
			if !f.ArrivalTime.set() {
				f.ArrivalTime = Field{Value: padClock(value), Confidence: 0.65}
			}
		case p.near(up, m[0], "DEPARTURE", "DEPARTS", "STD", "ETD"):
			if !f.DepartureTime.set() {
				f.DepartureTime = Field{Value: padClock(value), Confidence: 0.7}
			}
		default:
			if !f.DepartureTime.set() {
				f.DepartureTime = Field{Value: padClock(value), Confidence: 0.55}
			}
		}
	}

	// A decoded arrival earlier than departure plus the minimum plausible
	// flight duration is noise, not an overnight flight worth guessing at.
	if f.DepartureTime.set() && f.ArrivalTime.set() {
		dep, errD := time.Parse("15:04", f.DepartureTime.Value)
		arr, errA := time.Parse("15:04", f.ArrivalTime.Value)
		if errD == nil && errA == nil && arr.Before(dep.Add(p.cfg.MinFlightDuration)) {
			f.Notes = append(f.Notes, fmt.Sprintf(
				"discarded arrival time %s: earlier than departure %s plus minimum flight duration",
				f.ArrivalTime.Value, f.DepartureTime.Value))
			f.ArrivalTime = Field{}
		}
	}
}

func (p *Parser) parseName(up string, f *Fields) {
	// LAST/FIRST is the airline convention and the strongest signal.
	for _, m := range slashNameRe.FindAllStringSubmatchIndex(up, -1) {
		// Labels printed beside the name ("PASSENGER MUSTERMANN/MAX",
		// "MARIA FLIGHT ...") land inside the greedy match; the surname keeps
		// the words after the last label, the given name the words before
		// the first one.
		last := strings.Join(p.tailAfterBlocked(strings.Fields(up[m[2]:m[3]])), " ")
		first := strings.Join(p.headBeforeBlocked(strings.Fields(up[m[4]:m[5]])), " ")
		if last == "" || first == "" {
			continue
		}
		conf := 0.7
		if p.near(up, m[0], "PASSENGER", "NAME", "PAX") {
			conf = 0.85
		}
		if conf > f.NameConfidence {
			f.PassengerLast, f.PassengerFirst, f.NameConfidence = last, first, conf
		}
	}
	if f.PassengerLast != "" {
		return
	}

	// Otherwise only trust uppercase word runs sitting next to a passenger
	// keyword; free-standing word pairs are overwhelmingly labels.
	for _, m := range wordNameRe.FindAllStringSubmatchIndex(up, -1) {
		if !p.near(up, m[0], "PASSENGER", "NAME", "PAX", "TRAVELER") {
			continue
		}
		words := strings.Fields(up[m[0]:m[1]])
		for len(words) > 0 {
			if _, ok := p.nonName[words[0]]; !ok {
				break
			}
			words = words[1:]
		}
		words = p.headBeforeBlocked(words)
		if len(words) < 2 {
			continue
		}
		// Given name first in print; everything after is the family name,
		// spaces preserved.
		f.PassengerFirst = words[0]
		f.PassengerLast = strings.Join(words[1:], " ")
		f.NameConfidence = 0.6
		return
	}
}

// tailAfterBlocked keeps the words after the last blocklisted label word.
func (p *Parser) tailAfterBlocked(words []string) []string {
	for i := len(words) - 1; i >= 0; i-- {
		if _, ok := p.nonName[words[i]]; ok {
			return words[i+1:]
		}
	}
	return words
}

// headBeforeBlocked keeps the words before the first blocklisted label word.
func (p *Parser) headBeforeBlocked(words []string) []string {
	for i, w := range words {
		if _, ok := p.nonName[w]; ok {
			return words[:i]
		}
	}
	return words
}

func (p *Parser) parseBookingReference(up string, f *Fields) {
	for _, m := range bookingRe.FindAllStringSubmatchIndex(up, -1) {
		value := up[m[2]:m[3]]
		if isAllDigits(value) {
			continue
		}
		if _, blocked := p.nonRef[value]; blocked {
			continue
		}
		nearKw := p.near(up, m[0], "PNR", "BOOKING", "REFERENCE", "CONFIRMATION", "LOCATOR")
		if !nearKw && !hasLetterAndDigit(value) {
			// A bare six-letter word with no keyword anchor is far more
			// likely ordinary text than a record locator.
			continue
		}
		conf := 0.6
		if nearKw {
			conf = 0.8
		}
		if conf > f.BookingReference.Confidence {
			f.BookingReference = Field{Value: value, Confidence: conf}
		}
	}
}

func (p *Parser) parseSeat(up string, f *Fields) {
	for _, m := range seatRe.FindAllStringSubmatchIndex(up, -1) {
		value := up[m[2]:m[3]]
		conf := 0.5
		if p.near(up, m[0], "SEAT") {
			conf = 0.75
		}
		if conf > f.Seat.Confidence {
			f.Seat = Field{Value: value, Confidence: conf}
		}
	}
}

func padClock(v string) string {
	if len(v) == 4 {
		return "0" + v
	}
	return v
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func hasLetterAndDigit(s string) bool {
	letter, digit := false, false
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return letter && digit
}

func isAlnumByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
