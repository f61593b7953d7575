package handlers

import (
	"log/slog"
	"net/http"
	"time"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/server/responses"
	"git.home.luguber.info/inful/docnav/internal/version"
)

// MonitoringHandlers serves the health endpoint.
type MonitoringHandlers struct {
	source       SnapshotSource
	started      time.Time
	errorAdapter *derrors.HTTPErrorAdapter
}

// NewMonitoringHandlers creates monitoring handlers; uptime counts from now.
func NewMonitoringHandlers(source SnapshotSource, logger *slog.Logger) *MonitoringHandlers {
	return &MonitoringHandlers{
		source:       source,
		started:      time.Now(),
		errorAdapter: derrors.NewHTTPErrorAdapter(logger),
	}
}

// HandleHealthCheck reports readiness. It answers 503 until a snapshot exists.
func (h *MonitoringHandlers) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	snap := h.source.Snapshot()
	health := &responses.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   version.Version,
		Uptime:    time.Since(h.started).Seconds(),
	}
	status := http.StatusOK
	if snap == nil {
		health.Status = "starting"
		status = http.StatusServiceUnavailable
	} else {
		health.BuildID = snap.ID
		health.BuiltAt = snap.BuiltAt.UTC()
		health.Pages = snap.Pages.Len()
		health.Errors = snap.Report.ErrorCount()
		health.Warnings = snap.Report.WarningCount()
	}

	if err := writeJSONPretty(w, r, status, health); err != nil {
		internalErr := derrors.WrapError(err, derrors.CategoryInternal, "failed to write health response").
			Build()
		h.errorAdapter.WriteErrorResponse(w, r, internalErr)
	}
}
