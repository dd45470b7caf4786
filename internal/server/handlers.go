package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/droidgen/droidgen/internal/schema"
)

// Client-facing messages.
const (
	msgNotJSON        = "File must be a JSON file"
	msgInvalidJSON    = "Invalid JSON format"
	msgTooLarge       = "Upload exceeds the size limit"
	msgGenerateFailed = "Error generating project"
	msgBusy           = "Server is busy, try again later"
	msgHealthy        = "Android Project Generator is running"
)

// uploadField is the multipart field carrying the configuration file.
const uploadField = "file"

type detailResponse struct {
	Detail any `json:"detail"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Message: msgHealthy})
}

// handleGenerate accepts a multipart upload of a JSON configuration and
// streams back the generated project as a ZIP.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	data, status, msg := s.readUpload(w, r)
	if status != http.StatusOK {
		s.writeJSON(w, status, detailResponse{Detail: msg})
		return
	}

	cfg, err := schema.Decode(data)
	if err != nil {
		var ve *schema.ValidationErrors
		switch {
		case errors.As(err, &ve):
			s.logger.Info("invalid configuration", "fields", ve.Fields())
			s.writeJSON(w, http.StatusUnprocessableEntity, detailResponse{Detail: ve.Issues()})
		case errors.Is(err, schema.ErrMalformedInput):
			s.writeJSON(w, http.StatusBadRequest, detailResponse{Detail: msgInvalidJSON})
		default:
			s.logger.Error("decode configuration", "error", err)
			s.writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: msgGenerateFailed})
		}
		return
	}

	if err := s.limit.acquire(r.Context()); err != nil {
		s.logger.Warn("generation slot not acquired", "project", cfg.Project.Name, "error", err)
		s.writeJSON(w, http.StatusServiceUnavailable, detailResponse{Detail: msgBusy})
		return
	}
	s.logger.Debug("generation started", "project", cfg.Project.Name, "in_flight", s.limit.inFlight())
	archive, err := s.gen.Generate(r.Context(), cfg)
	s.limit.release()
	if err != nil {
		s.logger.Error("generate project", "project", cfg.Project.Name, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: msgGenerateFailed})
		return
	}
	defer func() {
		if err := archive.Remove(); err != nil {
			s.logger.Warn("remove archive", "path", archive.Path, "error", err)
		}
	}()

	f, err := os.Open(archive.Path)
	if err != nil {
		s.logger.Error("open archive", "path", archive.Path, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: msgGenerateFailed})
		return
	}
	defer f.Close()

	h := w.Header()
	h.Set("Content-Type", "application/zip")
	h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archive.Filename))
	if info, err := f.Stat(); err == nil {
		h.Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		s.logger.Warn("stream archive", "project", cfg.Project.Name, "error", err)
	}
}

// readUpload extracts the configuration bytes from the multipart body. A
// non-200 status comes with the detail message to report.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, int, string) {
	if r.ContentLength > s.cfg.MaxUploadBytes {
		return nil, http.StatusRequestEntityTooLarge, msgTooLarge
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		if isTooLarge(err) {
			return nil, http.StatusRequestEntityTooLarge, msgTooLarge
		}
		return nil, http.StatusBadRequest, msgNotJSON
	}
	defer r.MultipartForm.RemoveAll()

	file, hdr, err := r.FormFile(uploadField)
	if err != nil {
		return nil, http.StatusBadRequest, msgNotJSON
	}
	defer file.Close()

	if !strings.EqualFold(path.Ext(hdr.Filename), ".json") {
		return nil, http.StatusBadRequest, msgNotJSON
	}

	data, err := io.ReadAll(file)
	if err != nil {
		if isTooLarge(err) {
			return nil, http.StatusRequestEntityTooLarge, msgTooLarge
		}
		return nil, http.StatusBadRequest, msgInvalidJSON
	}
	return data, http.StatusOK, ""
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "error", err)
	}
}
