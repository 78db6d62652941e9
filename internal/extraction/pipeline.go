package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/zombor/flightclaim/internal/aivision"
	"github.com/zombor/flightclaim/internal/airports"
	"github.com/zombor/flightclaim/internal/bcbp"
	"github.com/zombor/flightclaim/internal/ocrtext"
	"github.com/zombor/flightclaim/internal/preprocess"
	"github.com/zombor/flightclaim/internal/quota"
)

// Alerter receives out-of-band administrative alerts, e.g. quota exhaustion.
type Alerter interface {
	Alert(ctx context.Context, message string) error
}

// Strategy base confidences. The barcode payload is machine-written so its
// fields start near certainty; vision-model output is trusted slightly less.
const (
	barcodeFieldConfidence = 0.95
	aiFieldConfidence      = 0.85
)

// Config wires a Pipeline. Zero values select the documented defaults; a nil
// Extractor disables the AI stage and a nil Runner disables OCR.
type Config struct {
	Extractor   aivision.Extractor
	Quota       quota.Counter
	Alerter     Alerter
	Runner      *ocrtext.Runner
	Airports    airports.Lookup // reference dataset; defaults to the embedded index
	AIThreshold float64         // invoke AI/OCR only below this overall confidence
	AITimeout   time.Duration   // per-call budget for the vision model
	MaxBytes    int64           // upload size cap
	Logger      *slog.Logger
}

// Pipeline runs the strategies in order and merges their results.
type Pipeline struct {
	extractor   aivision.Extractor
	quota       quota.Counter
	alerter     Alerter
	runner      *ocrtext.Runner
	airports    airports.Lookup
	aiThreshold float64
	aiTimeout   time.Duration
	maxBytes    int64
	logger      *slog.Logger
}

// NewPipeline creates a Pipeline from cfg.
func NewPipeline(cfg Config) *Pipeline {
	if cfg.Airports == nil {
		cfg.Airports = airports.NewIndex()
	}
	if cfg.AIThreshold == 0 {
		cfg.AIThreshold = 0.9
	}
	if cfg.AITimeout == 0 {
		cfg.AITimeout = 45 * time.Second
	}
	if cfg.MaxBytes == 0 {
		cfg.MaxBytes = 15 << 20
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Pipeline{
		extractor:   cfg.Extractor,
		quota:       cfg.Quota,
		alerter:     cfg.Alerter,
		runner:      cfg.Runner,
		airports:    cfg.Airports,
		aiThreshold: cfg.AIThreshold,
		aiTimeout:   cfg.AITimeout,
		maxBytes:    cfg.MaxBytes,
		logger:      cfg.Logger,
	}
}

// Extract runs the pipeline over one document. It returns an error only for
// input no strategy can process (see ErrFatalInput); every strategy-level
// failure is absorbed into the result's Errors list.
func (p *Pipeline) Extract(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	doc, err := prepareDocument(req.Data, p.maxBytes)
	if err != nil {
		return nil, err
	}

	var warnings, errs []string
	var candidates []candidate

	barcodeAuthoritative := false
	if decoded := bcbp.Decode(doc.img); decoded != nil {
		pass, err := bcbp.Parse(decoded.Text)
		if err != nil {
			errs = append(errs, fmt.Sprintf("barcode: %s symbol decoded but payload is not a boarding pass: %v", decoded.Format, err))
		} else {
			cand, ws := fromBoardingPass(pass, decoded.Format, p.airports)
			warnings = append(warnings, ws...)
			candidates = append(candidates, cand)
			// A machine-written payload that identifies the flight settles the
			// document; the remaining strategies are skipped.
			barcodeAuthoritative = cand.conf[FieldFlightNumber] > 0
		}
	}

	if !barcodeAuthoritative && bestOverall(candidates) < p.aiThreshold {
		cand, ws, aiErrs := p.runAI(ctx, doc)
		warnings = append(warnings, ws...)
		errs = append(errs, aiErrs...)
		if cand != nil {
			candidates = append(candidates, *cand)
		}
	}

	if !barcodeAuthoritative && bestOverall(candidates) < p.aiThreshold && p.runner != nil {
		attempt, messages := p.runner.Run(ctx, preprocess.Variants(doc.img))
		if attempt != nil {
			warnings = append(warnings, messages...)
			candidates = append(candidates, fromOCR(attempt))
		} else {
			errs = append(errs, messages...)
		}
	}

	result := merge(candidates)
	result.Warnings = append(warnings, result.Warnings...)
	result.Errors = errs

	// A claim needs someone to pay out to. When flight data was found but no
	// name was, a placeholder passenger keeps the record reviewable.
	if len(result.Segments) > 0 && len(result.Passengers) == 0 {
		result.Passengers = []Passenger{{}}
		result.Warnings = append(result.Warnings, "no passenger name identified; placeholder entry added for review")
	}

	result.ProcessingTimeMs = time.Since(start).Milliseconds()

	p.logger.Info("extraction complete",
		"filename", req.Filename,
		"method", result.Method,
		"overall_confidence", result.OverallConfidence,
		"segments", len(result.Segments),
		"warnings", len(result.Warnings),
		"errors", len(result.Errors),
		"duration_ms", result.ProcessingTimeMs,
	)

	return result, nil
}

// runAI executes the quota-gated vision-model stage. Warnings are advisory
// notes on a usable candidate; errors mean the stage produced nothing.
func (p *Pipeline) runAI(ctx context.Context, doc *document) (*candidate, []string, []string) {
	if p.extractor == nil {
		return nil, nil, nil
	}

	if p.quota != nil {
		allowed, count, err := p.quota.CheckAndIncrement()
		if err != nil {
			return nil, nil, []string{fmt.Sprintf("ai: quota check failed: %v", err)}
		}
		if !allowed {
			if p.alerter != nil {
				if aerr := p.alerter.Alert(ctx, fmt.Sprintf("AI extraction quota exhausted at %d calls this month", count)); aerr != nil {
					p.logger.Error("sending quota alert", "error", aerr)
				}
			}
			return nil, nil, []string{"ai: monthly call quota exhausted"}
		}
	}

	aiCtx, cancel := context.WithTimeout(ctx, p.aiTimeout)
	defer cancel()

	structured, err := p.extractor.ExtractStructured(aiCtx, doc.png)
	if err != nil {
		return nil, nil, []string{fmt.Sprintf("ai: extraction failed: %v", err)}
	}

	cand, warnings := fromStructured(structured, p.airports)
	if len(cand.conf) == 0 {
		return nil, warnings, []string{"ai: model found no flight data in the document"}
	}
	return &cand, warnings, nil
}

// validateAirports clears airport codes the reference dataset does not know.
// A shape-valid but unknown code is worse than no code: it would survive into
// a claim looking trustworthy.
func validateAirports(segments []FlightSegment, lookup airports.Lookup, source string) []string {
	var warnings []string
	for i := range segments {
		if code := segments[i].DepartureAirport; code != "" && !lookup.IsValidAirportCode(code) {
			warnings = append(warnings, fmt.Sprintf("%s: departure airport %q is not a known airport code; discarded", source, code))
			segments[i].DepartureAirport = ""
		}
		if code := segments[i].ArrivalAirport; code != "" && !lookup.IsValidAirportCode(code) {
			warnings = append(warnings, fmt.Sprintf("%s: arrival airport %q is not a known airport code; discarded", source, code))
			segments[i].ArrivalAirport = ""
		}
	}
	return warnings
}

// candidate is one strategy's proposal. rank breaks overall-score ties:
// barcode beats AI beats OCR.
type candidate struct {
	method     Method
	rank       int
	segments   []FlightSegment
	passengers []Passenger
	bookingRef string
	conf       map[string]float64
	overall    float64
}

func bestOverall(candidates []candidate) float64 {
	best := 0.0
	for _, c := range candidates {
		if c.overall > best {
			best = c.overall
		}
	}
	return best
}

func fromBoardingPass(pass *bcbp.BoardingPass, format string, lookup airports.Lookup) (candidate, []string) {
	c := candidate{
		method:     MethodBarcode(format),
		rank:       0,
		bookingRef: pass.BookingReference,
		conf:       map[string]float64{},
	}

	for _, leg := range pass.Legs {
		seg := FlightSegment{
			FlightNumber:     leg.FlightNumber,
			CarrierName:      leg.Carrier,
			DepartureAirport: leg.Origin,
			ArrivalAirport:   leg.Destination,
			Seat:             leg.Seat,
		}
		if !leg.Date.IsZero() {
			seg.DepartureDate = leg.Date.Format("2006-01-02")
		}
		c.segments = append(c.segments, seg)
	}
	warnings := validateAirports(c.segments, lookup, "barcode")

	if pass.LastName != "" {
		c.passengers = []Passenger{{FirstName: pass.FirstName, LastName: pass.LastName}}
		c.conf[FieldPassengerName] = barcodeFieldConfidence
	}
	if pass.BookingReference != "" {
		c.conf[FieldBookingReference] = barcodeFieldConfidence
	}
	if len(c.segments) > 0 {
		first := c.segments[0]
		if first.FlightNumber != "" {
			c.conf[FieldFlightNumber] = barcodeFieldConfidence
		}
		if first.DepartureDate != "" {
			c.conf[FieldDate] = barcodeFieldConfidence
		}
		if first.DepartureAirport != "" {
			c.conf[FieldDepartureAirport] = barcodeFieldConfidence
		}
		if first.ArrivalAirport != "" {
			c.conf[FieldArrivalAirport] = barcodeFieldConfidence
		}
		if first.Seat != "" {
			c.conf[FieldSeat] = barcodeFieldConfidence
		}
	}

	c.overall = OverallConfidence(c.conf)
	return c, warnings
}

func fromStructured(r *aivision.StructuredResult, lookup airports.Lookup) (candidate, []string) {
	c := candidate{
		method: MethodAIStructured,
		rank:   1,
		conf:   map[string]float64{},
	}

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	for _, seg := range r.FlightSegments {
		c.segments = append(c.segments, FlightSegment{
			FlightNumber:     deref(seg.FlightNumber),
			CarrierName:      deref(seg.CarrierName),
			DepartureAirport: deref(seg.DepartureAirport),
			ArrivalAirport:   deref(seg.ArrivalAirport),
			DepartureDate:    deref(seg.DepartureDate),
			DepartureTime:    deref(seg.DepartureTime),
			BoardingTime:     deref(seg.BoardingTime),
			ArrivalTime:      deref(seg.ArrivalTime),
			Gate:             deref(seg.Gate),
			Seat:             deref(seg.Seat),
		})
	}
	for _, p := range r.Passengers {
		c.passengers = append(c.passengers, Passenger{
			FirstName: deref(p.FirstName),
			LastName:  deref(p.LastName),
		})
	}
	c.bookingRef = deref(r.BookingReference)

	warnings := validateAirports(c.segments, lookup, "ai")

	if len(c.segments) > 0 {
		first := c.segments[0]
		if first.FlightNumber != "" {
			c.conf[FieldFlightNumber] = aiFieldConfidence
		}
		if first.DepartureDate != "" {
			c.conf[FieldDate] = aiFieldConfidence
		}
		if first.DepartureAirport != "" {
			c.conf[FieldDepartureAirport] = aiFieldConfidence
		}
		if first.ArrivalAirport != "" {
			c.conf[FieldArrivalAirport] = aiFieldConfidence
		}
		if first.Seat != "" {
			c.conf[FieldSeat] = aiFieldConfidence
		}
	}
	for _, p := range c.passengers {
		if p.LastName != "" || p.FirstName != "" {
			c.conf[FieldPassengerName] = aiFieldConfidence
			break
		}
	}
	if c.bookingRef != "" {
		c.conf[FieldBookingReference] = aiFieldConfidence
	}

	c.overall = OverallConfidence(c.conf)
	return c, warnings
}

func fromOCR(attempt *ocrtext.Attempt) candidate {
	f := attempt.Fields
	c := candidate{
		method: MethodOCR,
		rank:   2,
		conf:   map[string]float64{},
		segments: []FlightSegment{{
			FlightNumber:     f.FlightNumber.Value,
			DepartureAirport: f.DepartureAirport.Value,
			ArrivalAirport:   f.ArrivalAirport.Value,
			DepartureDate:    f.Date.Value,
			DepartureTime:    f.DepartureTime.Value,
			BoardingTime:     f.BoardingTime.Value,
			ArrivalTime:      f.ArrivalTime.Value,
			Seat:             f.Seat.Value,
		}},
		bookingRef: f.BookingReference.Value,
	}

	if f.FlightNumber.Value != "" {
		c.conf[FieldFlightNumber] = f.FlightNumber.Confidence
	}
	if f.Date.Value != "" {
		c.conf[FieldDate] = f.Date.Confidence
	}
	if f.DepartureAirport.Value != "" {
		c.conf[FieldDepartureAirport] = f.DepartureAirport.Confidence
	}
	if f.ArrivalAirport.Value != "" {
		c.conf[FieldArrivalAirport] = f.ArrivalAirport.Confidence
	}
	if f.Seat.Value != "" {
		c.conf[FieldSeat] = f.Seat.Confidence
	}
	if f.BookingReference.Value != "" {
		c.conf[FieldBookingReference] = f.BookingReference.Confidence
	}
	if f.PassengerLast != "" {
		c.passengers = []Passenger{{FirstName: f.PassengerFirst, LastName: f.PassengerLast}}
		c.conf[FieldPassengerName] = f.NameConfidence
	}

	c.overall = OverallConfidence(c.conf)
	return c
}

// merge picks the highest-scoring candidate as the base and then lets any
// other candidate override an individual field it read with strictly higher
// confidence.
func merge(candidates []candidate) *Result {
	if len(candidates) == 0 {
		return &Result{
			Method:          MethodNone,
			FieldConfidence: map[string]float64{},
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].overall != candidates[j].overall {
			return candidates[i].overall > candidates[j].overall
		}
		return candidates[i].rank < candidates[j].rank
	})

	base := candidates[0]
	result := &Result{
		Method:           base.method,
		Segments:         append([]FlightSegment(nil), base.segments...),
		Passengers:       append([]Passenger(nil), base.passengers...),
		BookingReference: base.bookingRef,
		FieldConfidence:  map[string]float64{},
	}
	for k, v := range base.conf {
		result.FieldConfidence[k] = v
	}

	for _, other := range candidates[1:] {
		for field, conf := range other.conf {
			if conf <= result.FieldConfidence[field] {
				continue
			}
			if applyField(result, other, field) {
				result.FieldConfidence[field] = conf
			}
		}
	}

	result.OverallConfidence = OverallConfidence(result.FieldConfidence)
	return result
}

// applyField copies one field value from a candidate into the result.
// Scalar flight fields land on the first segment; a result with no segments
// gets one to hold them.
func applyField(result *Result, from candidate, field string) bool {
	if field == FieldBookingReference {
		if from.bookingRef == "" {
			return false
		}
		result.BookingReference = from.bookingRef
		return true
	}
	if field == FieldPassengerName {
		if len(from.passengers) == 0 {
			return false
		}
		result.Passengers = append([]Passenger(nil), from.passengers...)
		return true
	}

	if len(from.segments) == 0 {
		return false
	}
	src := from.segments[0]
	if len(result.Segments) == 0 {
		result.Segments = []FlightSegment{{}}
	}
	dst := &result.Segments[0]

	switch field {
	case FieldFlightNumber:
		if src.FlightNumber == "" {
			return false
		}
		dst.FlightNumber = src.FlightNumber
	case FieldDate:
		if src.DepartureDate == "" {
			return false
		}
		dst.DepartureDate = src.DepartureDate
	case FieldDepartureAirport:
		if src.DepartureAirport == "" {
			return false
		}
		dst.DepartureAirport = src.DepartureAirport
	case FieldArrivalAirport:
		if src.ArrivalAirport == "" {
			return false
		}
		dst.ArrivalAirport = src.ArrivalAirport
	case FieldSeat:
		if src.Seat == "" {
			return false
		}
		dst.Seat = src.Seat
	default:
		return false
	}
	return true
}
