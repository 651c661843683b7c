package handler

import (
	"fmt"
	"net/http"

	"github.com/CaioPires92/projeto14-mywallet-back/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "mywallet_users_registered_total %d\n", snap.UsersRegistered)

	writeMetric(w, "mywallet_logins_total{status=\"success\"} %d\n", snap.LoginSuccesses)
	writeMetric(w, "mywallet_logins_total{status=\"failure\"} %d\n", snap.LoginFailures)
	writeMetric(w, "mywallet_sessions_revoked_total %d\n", snap.SessionsRevoked)

	writeMetric(w, "mywallet_session_cache_hits_total %d\n", snap.SessionCacheHits)
	writeMetric(w, "mywallet_session_cache_misses_total %d\n", snap.SessionCacheMisses)

	writeMetric(w, "mywallet_transactions_recorded_total{type=\"entrada\"} %d\n", snap.IncomeRecorded)
	writeMetric(w, "mywallet_transactions_recorded_total{type=\"saida\"} %d\n", snap.ExpensesRecorded)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
