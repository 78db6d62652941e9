package airports

import "strings"

// Info describes a single airport from the reference dataset.
type Info struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Index is a lookup over the embedded reference airport dataset.
type Index struct {
	byCode    map[string]Info
	blocklist map[string]struct{}
}

// Lookup defines the reference-dataset interface the extraction pipeline uses.
type Lookup interface {
	// IsValidAirportCode reports whether code is a known IATA airport code.
	IsValidAirportCode(code string) bool
	// Lookup returns the airport info for code, or nil if unknown.
	Lookup(code string) *Info
	// IsBlocked reports whether a three-letter token is a known boarding-pass
	// label or month abbreviation that must never be treated as an airport code.
	IsBlocked(token string) bool
}

// NewIndex builds an Index from the embedded dataset and the default blocklist.
func NewIndex() *Index {
	idx := &Index{
		byCode:    make(map[string]Info, len(dataset)),
		blocklist: make(map[string]struct{}, len(defaultBlocklist)),
	}
	for _, a := range dataset {
		idx.byCode[a.Code] = a
	}
	for _, t := range defaultBlocklist {
		idx.blocklist[t] = struct{}{}
	}
	return idx
}

// NewIndexWithBlocklist builds an Index with extra blocked tokens on top of
// the defaults. Tokens are matched case-insensitively.
func NewIndexWithBlocklist(extra []string) *Index {
	idx := NewIndex()
	for _, t := range extra {
		idx.blocklist[strings.ToUpper(strings.TrimSpace(t))] = struct{}{}
	}
	return idx
}

// IsValidAirportCode reports whether code is a known IATA airport code.
// Blocked tokens are never valid even if a same-spelled airport exists.
func (i *Index) IsValidAirportCode(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return false
	}
	if i.IsBlocked(code) {
		return false
	}
	_, ok := i.byCode[code]
	return ok
}

// Lookup returns the airport info for code, or nil if unknown.
func (i *Index) Lookup(code string) *Info {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !i.IsValidAirportCode(code) {
		return nil
	}
	a := i.byCode[code]
	return &a
}

// IsBlocked reports whether token is on the non-airport blocklist.
func (i *Index) IsBlocked(token string) bool {
	_, ok := i.blocklist[strings.ToUpper(strings.TrimSpace(token))]
	return ok
}

// defaultBlocklist contains three-letter tokens that appear on boarding passes
// (field labels, weekday and month abbreviations) and collide with the shape
// of an IATA code. Discovered empirically; extend via NewIndexWithBlocklist.
var defaultBlocklist = []string{
	"GAT", "SEQ", "PNR", "ETK", "BRD", "PAX", "DEP", "ARR",
	"STD", "STA", "ETA", "ETD", "ROW", "VIA", "AIR", "BUS",
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
	"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN",
}
