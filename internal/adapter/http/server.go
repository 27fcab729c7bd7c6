// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"go.uber.org/zap"

	"healthadvisor/internal/app"
	"healthadvisor/internal/domain"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	registry *app.RegistryService
	sessions *app.SessionService
	advisor  domain.AdviceClient
	reports  *app.ReportService
	logger   *zap.Logger
	webDir   string
}

// New creates a Server wired to the given application services.
func New(registry *app.RegistryService, sessions *app.SessionService, advisor domain.AdviceClient, reports *app.ReportService, logger *zap.Logger, webDir string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		registry: registry,
		sessions: sessions,
		advisor:  advisor,
		reports:  reports,
		logger:   logger,
		webDir:   webDir,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", s.handleHealth)
	api.HandleFunc("/signup", s.handleSignup)
	api.HandleFunc("/login", s.handleLogin)
	api.HandleFunc("/logout", s.handleLogout)
	api.HandleFunc("/session", s.handleSession)
	api.HandleFunc("/analyze", s.handleAnalyze)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/main", s.requireSession(pageFromDisk(s.webDir, "main.html")))
	root.Handle("/", pagesFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}

// handleHealth reports process liveness plus the best-effort reachability
// of the analysis service. An unreachable service only yields a warning
// flag here; it never blocks anything.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":                true,
		"analysisReachable": s.advisor.CheckReachable(r.Context()),
	})
}
