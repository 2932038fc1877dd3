package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/syllafetch/internal/pipeline"
	"github.com/dgallion1/syllafetch/internal/render"
	"github.com/dgallion1/syllafetch/internal/summarize"
)

type createJobRequest struct {
	Exam  string `json:"exam"`
	Model string `json:"model"`
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	exam := strings.TrimSpace(req.Exam)
	if exam == "" {
		jsonError(w, "exam is required", http.StatusBadRequest)
		return
	}
	model := strings.TrimSpace(req.Model)
	if !s.cfg.ModelAllowed(model) {
		jsonError(w, fmt.Sprintf("unsupported model %q", model), http.StatusBadRequest)
		return
	}

	job := pipeline.NewJob(exam)
	job.Model = model
	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   job.ID,
		"exam":     job.Exam,
		"status":   job.Status(),
		"poll_url": fmt.Sprintf("/api/syllabus/%s", job.ID),
	})
}

func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

// handleDownload serves the finished syllabus as a syllabus.json
// attachment with 4-space indentation.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	syllabus, ok := s.finishedSyllabus(w, r)
	if !ok {
		return
	}
	out, err := syllabus.EncodePretty()
	if err != nil {
		jsonError(w, "encode syllabus: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="syllabus.json"`)
	w.Write(out)
}

// handleView renders the syllabus as an HTML outline.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	syllabus, ok := s.finishedSyllabus(w, r)
	if !ok {
		return
	}
	out, err := render.HTML(syllabus)
	if err != nil {
		jsonError(w, "render syllabus: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
}

// finishedSyllabus resolves the job from the URL and writes the
// appropriate error response when its syllabus is not ready.
func (s *Server) finishedSyllabus(w http.ResponseWriter, r *http.Request) (*summarize.Syllabus, bool) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return nil, false
	}
	syllabus := job.Result()
	if syllabus == nil {
		jsonError(w, fmt.Sprintf("syllabus not ready (status %s)", job.Status()), http.StatusConflict)
		return nil, false
	}
	return syllabus, true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
