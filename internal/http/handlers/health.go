package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const (
	diagnosticErrLen      = 80
	diagnosticCollections = 10
)

func (a *App) Root(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"message": "FundRise backend is running"})
}

type diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnostics reports store connectivity. It always answers 200; failures are
// described in the payload.
func (a *App) Diagnostics(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.diagnose(r.Context()))
}

func (a *App) diagnose(ctx context.Context) (resp diagnostics) {
	resp = diagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      "❌ Not Set",
		DatabaseName:     "❌ Not Set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	defer func() {
		if rec := recover(); rec != nil {
			resp.Database = "❌ Error: " + truncate(fmt.Sprint(rec), diagnosticErrLen)
		}
	}()

	if a.Store == nil {
		resp.Database = "⚠️ Available but not initialized"
		return resp
	}
	resp.Database = "✅ Available"
	resp.DatabaseURL = "✅ Set"
	resp.DatabaseName = a.Store.Name()
	if resp.DatabaseName == "" {
		resp.DatabaseName = "✅ Connected"
	}
	resp.ConnectionStatus = "Connected"

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	names, err := a.Store.Collections(ctx)
	if err != nil {
		resp.Database = "⚠️ Connected but Error: " + truncate(err.Error(), diagnosticErrLen)
		return resp
	}
	if len(names) > diagnosticCollections {
		names = names[:diagnosticCollections]
	}
	if names != nil {
		resp.Collections = names
	}
	resp.Database = "✅ Connected & Working"
	return resp
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
