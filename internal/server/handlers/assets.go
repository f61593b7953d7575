package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"git.home.luguber.info/inful/docnav/internal/icons"
	"git.home.luguber.info/inful/docnav/internal/server/responses"
	"git.home.luguber.info/inful/docnav/internal/theme"
)

// HandleIcons lists the registered icons and social identifiers.
func (h *APIHandlers) HandleIcons(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.errorAdapter, &responses.IconsResponse{
		Icons:  icons.Names(),
		Social: icons.SocialIDs(),
	}, nil)
}

// HandleIcon renders the {name} icon as SVG. ?class= overrides the CSS class.
func (h *APIHandlers) HandleIcon(w http.ResponseWriter, r *http.Request) {
	svg, err := icons.Render(chi.URLParam(r, "name"), r.URL.Query().Get("class"))
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(svg))
}

// HandleTheme returns the {name} highlight theme as shiki theme JSON.
func (h *APIHandlers) HandleTheme(w http.ResponseWriter, r *http.Request) {
	th, err := theme.Get(chi.URLParam(r, "name"))
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	data, err := th.JSON()
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(data)
}
