// Package ocrtext recognizes text on preprocessed boarding-pass images and
// parses the recognized text into candidate field values.
package ocrtext

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// DefaultPSMs are the page-segmentation assumptions tried per variant:
// full auto, uniform block, and single column. Boarding passes mix tabular
// labels with free text, so no single assumption wins across the corpus.
var DefaultPSMs = []int{3, 6, 4}

// Recognizer runs text recognition on a single image under one
// page-segmentation mode.
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image, psm int) (string, error)
}

// Engine shells out to the tesseract binary.
type Engine struct {
	binary   string
	language string
}

// NewEngine creates an Engine. Empty arguments select the defaults
// ("tesseract" on PATH, English traineddata).
func NewEngine(binary, language string) *Engine {
	if binary == "" {
		binary = "tesseract"
	}
	if language == "" {
		language = "eng"
	}
	return &Engine{binary: binary, language: language}
}

// Recognize writes img to a temp file and runs tesseract against it.
func (e *Engine) Recognize(ctx context.Context, img image.Image, psm int) (string, error) {
	tmp, err := os.CreateTemp("", "ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("creating temp image: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return "", fmt.Errorf("encoding temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp image: %w", err)
	}

	cmd := exec.CommandContext(ctx, e.binary,
		tmp.Name(), "stdout",
		"--psm", strconv.Itoa(psm),
		"-l", e.language,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s (psm %d): %w: %s", e.binary, psm, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
