package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/blackivy/onboarding/internal/survey"
)

const maxBodyBytes = 64 << 10

// errBadRequest marks replay failures caused by the request body.
var errBadRequest = errors.New("bad request")

// SubmitRequest is the body of POST /v1/responses.
type SubmitRequest struct {
	// Answers maps page IDs to the selected option labels.
	Answers map[survey.PageID][]string `json:"answers"`
	// Other is the free text entered for Other. It is kept only when some
	// page of the path has Other selected.
	Other     string            `json:"other,omitempty"`
	BirthDate *survey.BirthDate `json:"birthDate,omitempty"`
	Consent   bool              `json:"consent"`
}

// PagesResponse is the body of GET /v1/pages.
type PagesResponse struct {
	Status string        `json:"status,omitempty"`
	Total  int           `json:"total"`
	Pages  []survey.Page `json:"pages"`
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Health reports liveness.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"status": "ok", "backend": s.store.Name()})
}

// ListPages returns the page list for the status query parameter.
func (s *Server) ListPages(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	pages := survey.Resolve(status)
	JSON(w, http.StatusOK, PagesResponse{Status: status, Total: len(pages), Pages: pages})
}

// CreateResponse replays the posted answers and stores the finished response.
func (s *Server) CreateResponse(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var finished *survey.Response
	d := survey.NewDialog(nil)
	d.OnEvent = s.metrics.Observe(Host)
	d.OnFinish = func(resp survey.Response) { finished = &resp }
	d.SetOpen(true)

	err := replay(d, req)
	switch {
	case errors.Is(err, survey.ErrConsentRequired):
		Error(w, http.StatusUnprocessableEntity, survey.ConsentMessage)
		return
	case errors.Is(err, errBadRequest):
		Error(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.log.Error(err, "replay failed")
		Error(w, http.StatusInternalServerError, "failed to process answers")
		return
	}

	start := time.Now()
	id, err := s.store.Submit(r.Context(), *finished)
	s.metrics.RecordSubmission(s.store.Name(), err, time.Since(start))
	if err != nil {
		s.log.Error(err, "failed to store response", "id", finished.ID, "backend", s.store.Name())
		Error(w, http.StatusBadGateway, "failed to store response")
		return
	}

	s.log.Info("stored response", "id", id, "backend", s.store.Name())
	JSON(w, http.StatusCreated, map[string]string{"id": id})
}

// replay walks the dialog through every resolved page, applying the answers
// for each page, and finishes on the last one.
func replay(d *survey.Dialog, req SubmitRequest) error {
	for id, labels := range req.Answers {
		page, ok := survey.Lookup(id)
		if !ok {
			return fmt.Errorf("%w: unknown page %q", errBadRequest, id)
		}
		if page.Kind != survey.KindChoice {
			return fmt.Errorf("%w: page %q does not take options", errBadRequest, id)
		}
		if !page.MultiSelect && len(labels) > 1 {
			return fmt.Errorf("%w: page %q takes a single option", errBadRequest, id)
		}
		for _, label := range labels {
			if !page.HasOption(label) {
				return fmt.Errorf("%w: unknown option %q for page %q", errBadRequest, label, id)
			}
		}
	}

	w := d.Wizard()
	for {
		page := w.Current()
		switch page.Kind {
		case survey.KindChoice:
			for _, label := range req.Answers[page.ID] {
				if !w.IsSelected(page.ID, label) {
					w.Select(label)
				}
			}
			// Selecting Other clears the shared text, so it is set again
			// after every page that selects it.
			if req.Other != "" && w.ShowOtherInput() {
				w.SetOtherText(req.Other)
			}
		case survey.KindDate:
			if req.BirthDate != nil {
				w.SetBirthDate(*req.BirthDate)
			}
		case survey.KindConsent:
			w.SetConsent(req.Consent)
		}
		if !d.Advance() {
			break
		}
	}

	return d.Finish()
}
