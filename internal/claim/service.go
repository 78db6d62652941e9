package claim

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/zombor/flightclaim/internal/extraction"
)

// Extractor runs the document extraction pipeline.
type Extractor interface {
	Extract(ctx context.Context, req extraction.Request) (*extraction.Result, error)
}

// IDGenerator generates unique IDs for claims
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// defaultIDGenerator generates IDs using UnixNano timestamp
type defaultIDGenerator struct{}

func (g *defaultIDGenerator) Generate() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// defaultTimeSource provides the current time
type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Service handles claim operations
type Service struct {
	db              DB
	extractor       Extractor
	storage         Storage
	idGenerator     IDGenerator
	timeSource      TimeSource
	reviewThreshold float64
}

// NewService creates a new Service with default ID generator and time source.
// Claims scoring below reviewThreshold are flagged for human review.
func NewService(db DB, extractor Extractor, storage Storage, reviewThreshold float64) *Service {
	return NewServiceWithDeps(db, extractor, storage, reviewThreshold, &defaultIDGenerator{}, &defaultTimeSource{})
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(db DB, extractor Extractor, storage Storage, reviewThreshold float64, idGen IDGenerator, timeSrc TimeSource) *Service {
	return &Service{
		db:              db,
		extractor:       extractor,
		storage:         storage,
		idGenerator:     idGen,
		timeSource:      timeSrc,
		reviewThreshold: reviewThreshold,
	}
}

// sanitizeFilename cleans up a filename by removing special characters and truncating length
func sanitizeFilename(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	reg := regexp.MustCompile(`[^a-zA-Z0-9\s\-_]`)
	base = reg.ReplaceAllString(base, "")

	reg = regexp.MustCompile(`\s+`)
	base = reg.ReplaceAllString(base, " ")

	base = strings.TrimSpace(base)

	maxLen := 50
	if len(base) > maxLen {
		base = base[:maxLen]
	}

	if base == "" {
		base = "document"
	}

	return base + ext
}

// ProcessUpload stores the uploaded document, runs the extraction pipeline
// over it, and persists the resulting claim. Extraction failures on valid
// input never reach here as errors; only unprocessable input aborts, and then
// the stored file is cleaned up.
func (s *Service) ProcessUpload(ctx context.Context, filename string, data []byte, contentType string) (*Claim, error) {
	id := s.idGenerator.Generate()
	now := s.timeSource.Now()

	cleanFilename := sanitizeFilename(filename)

	savedPath, err := s.storage.Save(fmt.Sprintf("%s_%s", id, cleanFilename), data)
	if err != nil {
		return nil, fmt.Errorf("saving file: %w", err)
	}

	result, err := s.extractor.Extract(ctx, extraction.Request{
		Data:        data,
		ContentType: contentType,
		Filename:    cleanFilename,
	})
	if err != nil {
		slog.Error("Failed to extract document",
			"filename", filename,
			"content_type", contentType,
			"file_size", len(data),
			"error", err,
		)
		s.storage.Delete(savedPath)
		return nil, fmt.Errorf("extracting document: %w", err)
	}

	status := StatusNeedsReview
	if result.OverallConfidence >= s.reviewThreshold {
		status = StatusExtracted
	}

	claim := &Claim{
		ID:          id,
		Filename:    savedPath,
		ContentType: contentType,
		Extraction:  result,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.db.SaveClaim(claim); err != nil {
		s.storage.Delete(savedPath)
		return nil, fmt.Errorf("saving claim to database: %w", err)
	}

	return claim, nil
}

// GetClaim retrieves a claim by ID
func (s *Service) GetClaim(id string) (*Claim, error) {
	claim, err := s.db.GetClaim(id)
	if err != nil {
		return nil, fmt.Errorf("getting claim: %w", err)
	}
	return claim, nil
}

// ListClaims returns all claims
func (s *Service) ListClaims() ([]*Claim, error) {
	claims, err := s.db.ListClaims()
	if err != nil {
		return nil, fmt.Errorf("listing claims: %w", err)
	}
	return claims, nil
}

// DeleteClaim removes a claim and its file
func (s *Service) DeleteClaim(id string) error {
	claim, err := s.db.GetClaim(id)
	if err != nil {
		return fmt.Errorf("getting claim for deletion: %w", err)
	}

	if err := s.storage.Delete(claim.Filename); err != nil {
		slog.Warn("Failed to delete file", "filename", claim.Filename, "error", err)
	}

	if err := s.db.DeleteClaim(id); err != nil {
		return fmt.Errorf("deleting claim from database: %w", err)
	}
	return nil
}

// GetClaimFile retrieves the original document for a claim
func (s *Service) GetClaimFile(id string) ([]byte, string, error) {
	claim, err := s.db.GetClaim(id)
	if err != nil {
		return nil, "", fmt.Errorf("getting claim: %w", err)
	}

	data, err := s.storage.Get(claim.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("getting claim file: %w", err)
	}

	return data, claim.ContentType, nil
}
