package rest

import "net/http"

// NewRouter registers all routes on a fresh mux. commit may be nil when the
// engine is embedded in-process and capture happens through the library hook.
func NewRouter(audit *AuditHandler, health *HealthHandler, commit *CommitHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/audit/records/{id}/reference-data", audit.ReferenceData)
	mux.HandleFunc("GET /api/v1/audit/{entity}/{id}", audit.History)
	if commit != nil {
		mux.HandleFunc("POST /api/v1/audit/commits", commit.Commit)
	}

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)

	return mux
}
