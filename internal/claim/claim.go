// Package claim handles the intake side of the service: uploads, persistence,
// and review flagging of extracted travel documents.
package claim

import (
	"time"

	"github.com/zombor/flightclaim/internal/extraction"
)

// Status marks whether a claim can proceed automatically or needs a human.
type Status string

const (
	// StatusExtracted means the extraction scored at or above the review
	// threshold.
	StatusExtracted Status = "extracted"
	// StatusNeedsReview means a reviewer has to confirm the fields before the
	// claim moves on.
	StatusNeedsReview Status = "needs_review"
)

// Claim represents one uploaded travel document and its extraction outcome.
type Claim struct {
	ID          string             `json:"id"`
	Filename    string             `json:"filename"`
	ContentType string             `json:"content_type"`
	Extraction  *extraction.Result `json:"extraction"`
	Status      Status             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
