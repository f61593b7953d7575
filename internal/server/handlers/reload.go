package handlers

import (
	"context"
	"log/slog"
	"net/http"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/linkcheck"
	"git.home.luguber.info/inful/docnav/internal/server/responses"
	"git.home.luguber.info/inful/docnav/internal/site"
)

// TriggerAPI labels reloads requested over HTTP.
const TriggerAPI = "api"

// Reloader rebuilds the served snapshot.
type Reloader interface {
	Reload(ctx context.Context, trigger string) (*site.Snapshot, error)
}

// ReloadHandlers serves the reload endpoint.
type ReloadHandlers struct {
	reloader     Reloader
	errorAdapter *derrors.HTTPErrorAdapter
}

// NewReloadHandlers creates reload handlers.
func NewReloadHandlers(reloader Reloader, logger *slog.Logger) *ReloadHandlers {
	return &ReloadHandlers{
		reloader:     reloader,
		errorAdapter: derrors.NewHTTPErrorAdapter(logger),
	}
}

// HandleReload rebuilds the snapshot and reports its link issues. A failed
// build keeps the previous snapshot in service.
func (h *ReloadHandlers) HandleReload(w http.ResponseWriter, r *http.Request) {
	snap, err := h.reloader.Reload(r.Context(), TriggerAPI)
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	resp := &responses.ReloadResponse{
		Status:     "ok",
		BuildID:    snap.ID,
		DurationMS: float64(snap.Duration.Microseconds()) / 1000,
		Issues:     snap.Report.Issues,
	}
	if resp.Issues == nil {
		resp.Issues = []linkcheck.Issue{}
	}
	respond(w, r, h.errorAdapter, resp, nil)
}
