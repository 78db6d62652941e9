package claim

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/zombor/flightclaim/internal/extraction"
)

// corsError writes an error response with CORS headers set
func corsError(w http.ResponseWriter, message string, code int) {
	setCORSHeaders(w)
	http.Error(w, message, code)
}

// setCORSHeaders sets CORS headers on a response
func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	w.Header().Set("Access-Control-Max-Age", "3600")
}

func jsonError(w http.ResponseWriter, message string, code int) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// handleHealth reports liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleListClaims returns a list of all claims
func (s *Server) handleListClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := s.service.ListClaims()
	if err != nil {
		slog.Error("Error listing claims", "error", err)
		corsError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(claims); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// handleUploadClaim handles document upload
func (s *Server) handleUploadClaim(w http.ResponseWriter, r *http.Request) {
	// 50MB form cap to accommodate high-resolution phone photos
	maxFormSize := int64(50 << 20)
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		slog.Error("Error parsing multipart form", "error", err)
		errorMsg := "Error parsing form"
		if err.Error() == "http: request body too large" {
			errorMsg = "File is too large. Maximum size is 50MB. Please compress or resize your image."
		}
		jsonError(w, errorMsg, http.StatusBadRequest)
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		slog.Error("Error getting file from form", "error", err)
		errorMsg := "No file provided"
		if err.Error() == "http: no such file" {
			errorMsg = "No file was selected. Please choose a file to upload."
		}
		jsonError(w, errorMsg, http.StatusBadRequest)
		return
	}
	defer f.Close()

	if header.Size > maxFormSize {
		jsonError(w, "File is too large. Maximum size is 50MB. Please compress or resize your image.", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(f)
	if err != nil {
		slog.Error("Error reading file data", "error", err, "filename", header.Filename)
		jsonError(w, "Error reading file. Please try again.", http.StatusInternalServerError)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		ext := strings.ToLower(filepath.Ext(header.Filename))
		switch ext {
		case ".jpg", ".jpeg":
			contentType = "image/jpeg"
		case ".png":
			contentType = "image/png"
		case ".pdf":
			contentType = "application/pdf"
		case ".heic", ".heif":
			contentType = "image/heic"
		default:
			contentType = "application/octet-stream"
		}
	}

	claim, err := s.service.ProcessUpload(r.Context(), header.Filename, data, contentType)
	if err != nil {
		if errors.Is(err, extraction.ErrFatalInput) {
			jsonError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		slog.Error("Error processing upload", "error", err, "filename", header.Filename)
		jsonError(w, "Error processing document. Please try again.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(claim); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// handleGetClaim returns a single claim
func (s *Server) handleGetClaim(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	claim, err := s.service.GetClaim(id)
	if err != nil {
		corsError(w, "Claim not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(claim); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// handleGetClaimFile serves the original uploaded document
func (s *Server) handleGetClaimFile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	data, contentType, err := s.service.GetClaimFile(id)
	if err != nil {
		corsError(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}

// handleDeleteClaim removes a claim
func (s *Server) handleDeleteClaim(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.service.DeleteClaim(id); err != nil {
		corsError(w, "Claim not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
