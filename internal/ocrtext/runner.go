package ocrtext

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/zombor/flightclaim/internal/preprocess"
)

// Attempt is one (variant, page-segmentation mode) recognition outcome.
type Attempt struct {
	VariantName string
	PSM         int
	Fields      Fields
}

// Runner drives recognition across preprocessed variants and recognizer
// configurations and keeps the best attempt.
type Runner struct {
	recognizer Recognizer
	parser     *Parser
	psms       []int
	minFields  int
}

// NewRunner creates a Runner. An empty psms slice selects DefaultPSMs.
func NewRunner(recognizer Recognizer, parser *Parser, psms []int) *Runner {
	if len(psms) == 0 {
		psms = DefaultPSMs
	}
	return &Runner{
		recognizer: recognizer,
		parser:     parser,
		psms:       psms,
		minFields:  parser.cfg.MinFields,
	}
}

// Run recognizes every variant under every configured page-segmentation mode,
// in parallel, and returns the attempt with the most parsed fields (ties
// broken by mean field confidence). It returns nil with explanatory warnings
// when no attempt reaches the minimum field count.
func (r *Runner) Run(ctx context.Context, variants []preprocess.Variant) (*Attempt, []string) {
	type outcome struct {
		attempt Attempt
		err     error
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		outcomes []outcome
	)

	for _, variant := range variants {
		for _, psm := range r.psms {
			wg.Add(1)
			go func(v preprocess.Variant, psm int) {
				defer wg.Done()
				text, err := r.recognizer.Recognize(ctx, v.Image, psm)
				o := outcome{attempt: Attempt{VariantName: v.Name, PSM: psm}, err: err}
				if err == nil {
					o.attempt.Fields = r.parser.Parse(text)
				}
				mu.Lock()
				outcomes = append(outcomes, o)
				mu.Unlock()
			}(variant, psm)
		}
	}
	wg.Wait()

	var (
		best     *Attempt
		warnings []string
		errCount int
	)
	for i := range outcomes {
		if outcomes[i].err != nil {
			errCount++
			slog.Debug("ocr attempt failed",
				"variant", outcomes[i].attempt.VariantName,
				"psm", outcomes[i].attempt.PSM,
				"error", outcomes[i].err,
			)
			continue
		}
		a := &outcomes[i].attempt
		if best == nil ||
			a.Fields.Count() > best.Fields.Count() ||
			(a.Fields.Count() == best.Fields.Count() && a.Fields.MeanConfidence() > best.Fields.MeanConfidence()) {
			best = a
		}
	}

	if errCount == len(outcomes) && len(outcomes) > 0 {
		warnings = append(warnings, "ocr: no recognition attempt completed (recognizer unavailable or cancelled)")
		return nil, warnings
	}
	if best == nil || best.Fields.Count() < r.minFields {
		got := 0
		if best != nil {
			got = best.Fields.Count()
		}
		warnings = append(warnings, fmt.Sprintf(
			"ocr: insufficient recognized fields: best attempt yielded %d of %d required", got, r.minFields))
		return nil, warnings
	}

	warnings = append(warnings, best.Fields.Notes...)
	return best, warnings
}
