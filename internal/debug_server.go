// Package internal hosts operator-facing plumbing that is not part of the
// chat protocol: the debug stats server.
package internal

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"chat-relay/observability"
	"chat-relay/runtime"
)

// StartDebugServer exposes live core stats as JSON on a side port:
//
//	GET /debug/stats    returns monitoring counters and memory figures
//	GET /debug/channels returns per-channel member and log sizes
//
// Listens on localhost only; this surface is for operators, not clients.
func StartDebugServer(log *slog.Logger, port int,
	monitoring *observability.MonitoringManager, store *runtime.Store) {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, monitoring.GetLatest())
	})
	mux.HandleFunc("/debug/channels", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, store.Snapshot())
	})

	go func() {
		addr := fmt.Sprintf("127.0.0.1:%d", port)
		log.Info("Debug server listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Warn("Debug server stopped", "error", err)
		}
	}()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
