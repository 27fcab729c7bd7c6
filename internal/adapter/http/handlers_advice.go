package adapthttp

import (
	"errors"
	"net/http"

	"healthadvisor/internal/app"
	"healthadvisor/internal/domain"
)

// handleAnalyze submits the form's health data to the analysis service and
// returns the rendered report. Rendering is all-or-nothing: a failed or
// malformed analysis yields an error payload and no report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, err := s.sessions.Require(r.Context()); err != nil {
		if errors.Is(err, app.ErrNoSession) {
			writeError(w, http.StatusUnauthorized, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	var req struct {
		Name    string `json:"name"`
		BP      string `json:"bp"`
		Sugar   string `json:"sugar"`
		Temp    string `json:"temp"`
		Symptom string `json:"symptom"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	data := domain.HealthData{
		Name:          req.Name,
		BloodPressure: req.BP,
		BloodSugar:    req.Sugar,
		Temperature:   req.Temp,
		Symptom:       req.Symptom,
	}

	result, err := s.advisor.Analyze(r.Context(), data)
	switch {
	case errors.Is(err, domain.ErrUnreachable),
		errors.Is(err, domain.ErrServerError),
		errors.Is(err, domain.ErrMalformedResponse):
		writeError(w, http.StatusBadGateway, err)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, s.reports.Render(result))
}
