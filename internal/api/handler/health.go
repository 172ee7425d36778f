package handler

import (
	"net/http"

	"github.com/studydesk/studydesk/internal/api/response"
	"github.com/studydesk/studydesk/internal/config"
	mongodb "github.com/studydesk/studydesk/internal/repository/mongo"
)

// Root greets callers hitting the bare service URL.
func Root(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"message": "Hello from the study API backend!",
	})
}

// Hello is the API-prefixed greeting used by frontend connectivity checks.
func Hello(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"message": "Hello from the backend API!",
	})
}

// StoreDiagnostic reports store configuration and connectivity. Unlike the
// API endpoints it never fails: store errors are rendered as truncated
// status strings inside a 200 response.
func StoreDiagnostic(db *mongodb.DB, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		diag := map[string]any{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"database_url":      "❌ Not Set",
			"database_name":     "❌ Not Set",
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if cfg.Mongo.URI != "" {
			diag["database_url"] = "✅ Set"
		}
		if cfg.Mongo.Database != "" {
			diag["database_name"] = "✅ Set"
		}

		if db != nil {
			diag["database"] = "✅ Available"
			diag["connection_status"] = "Connected"

			names, err := db.ListCollections(r.Context())
			if err != nil {
				diag["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				if names == nil {
					names = []string{}
				}
				diag["collections"] = names
				diag["database"] = "✅ Connected & Working"
			}
		}

		response.OK(w, diag)
	}
}

// truncate keeps the first n characters, never splitting a rune.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
