// Package api wires the dashboard's HTTP handlers: the status
// snapshot, the login flow and the session gate.
package api

import (
	"net/http"

	"crown-status/pkg/status"
	"crown-status/pkg/version"
)

// RegisterStatusRoutes mounts /api/status behind the session gate plus
// the unauthenticated liveness probe. The status handler itself always
// answers 200 with a complete payload; failing sources only show up
// inside the body.
func RegisterStatusRoutes(mux *http.ServeMux, c *status.Collector) {
	mux.Handle("/api/status", RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, c.Snapshot(r.Context()))
	})))

	mux.Handle("/api/version", RequireSession(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"version": version.Build})
	})))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
