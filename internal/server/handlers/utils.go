package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/site"
)

// SnapshotSource hands out the snapshot currently being served.
type SnapshotSource interface {
	Snapshot() *site.Snapshot
}

// errNoSnapshot is reported while no build has succeeded yet.
var errNoSnapshot = derrors.ServerError("site snapshot not available").Build()

// writeJSON serializes v into a buffer first so a failed encode never sends
// a partial body.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(v); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed writing JSON response body", logfields.Error(err))
		return err
	}
	return nil
}

// writeJSONPretty indents the output when ?pretty=1 or ?pretty=true is set.
func writeJSONPretty(w http.ResponseWriter, r *http.Request, status int, v any) error {
	if r != nil {
		if p := r.URL.Query().Get("pretty"); p == "1" || p == "true" {
			b, err := json.MarshalIndent(v, "", "  ")
			if err == nil {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(status)
				if _, werr := w.Write(append(b, '\n')); werr != nil {
					slog.Error("failed writing pretty JSON", logfields.Error(werr))
					return werr
				}
				return nil
			}
			slog.Warn("pretty JSON marshal failed, falling back to standard encode", logfields.Error(err))
		}
	}
	return writeJSON(w, status, v)
}

// respond writes v, or err through the adapter when err is non-nil.
func respond(w http.ResponseWriter, r *http.Request, adapter *derrors.HTTPErrorAdapter, v any, err error) {
	if err != nil {
		adapter.WriteErrorResponse(w, r, err)
		return
	}
	if err := writeJSONPretty(w, r, http.StatusOK, v); err != nil {
		adapter.WriteErrorResponse(w, r, derrors.WrapError(err, derrors.CategoryInternal, "failed to encode response").Build())
	}
}

// pathParam returns the ?path= query value, defaulting to the site root.
func pathParam(r *http.Request) (string, error) {
	p := r.URL.Query().Get("path")
	if p == "" {
		return "/", nil
	}
	if len(p) > 2048 {
		return "", derrors.ValidationError("path too long").WithContext("length", len(p)).Build()
	}
	return p, nil
}
