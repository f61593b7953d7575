package handlers

import (
	"log/slog"
	"net/http"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/icons"
	"git.home.luguber.info/inful/docnav/internal/server/responses"
	"git.home.luguber.info/inful/docnav/internal/site"
)

// APIHandlers serves the read-only navigation and site data endpoints.
type APIHandlers struct {
	source       SnapshotSource
	errorAdapter *derrors.HTTPErrorAdapter
}

// NewAPIHandlers creates API handlers reading from source.
func NewAPIHandlers(source SnapshotSource, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		source:       source,
		errorAdapter: derrors.NewHTTPErrorAdapter(logger),
	}
}

func (h *APIHandlers) snapshot() (*site.Snapshot, error) {
	snap := h.source.Snapshot()
	if snap == nil {
		return nil, errNoSnapshot
	}
	return snap, nil
}

// HandleNav returns the sidebar version serving ?path=.
func (h *APIHandlers) HandleNav(w http.ResponseWriter, r *http.Request) {
	resp, err := h.nav(r)
	respond(w, r, h.errorAdapter, resp, err)
}

func (h *APIHandlers) nav(r *http.Request) (*responses.NavResponse, error) {
	snap, err := h.snapshot()
	if err != nil {
		return nil, err
	}
	p, err := pathParam(r)
	if err != nil {
		return nil, err
	}
	tree, err := snap.Select(p)
	if err != nil {
		return nil, err
	}
	return &responses.NavResponse{Path: p, Version: tree.Key, Sections: tree.Sections}, nil
}

// HandleVersions lists the sidebar versions.
func (h *APIHandlers) HandleVersions(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot()
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	resp := &responses.VersionsResponse{Versions: make([]responses.VersionSummary, 0, len(snap.Nav.Versions))}
	for _, t := range snap.Nav.Versions {
		resp.Versions = append(resp.Versions, responses.VersionSummary{
			Key:      t.Key,
			Sections: len(t.Sections),
			Links:    len(t.Links()),
		})
	}
	respond(w, r, h.errorAdapter, resp, nil)
}

// HandlePager returns the previous and next pages, breadcrumb and page
// metadata for ?path=.
func (h *APIHandlers) HandlePager(w http.ResponseWriter, r *http.Request) {
	resp, err := h.pager(r)
	respond(w, r, h.errorAdapter, resp, err)
}

func (h *APIHandlers) pager(r *http.Request) (*responses.PagerResponse, error) {
	snap, err := h.snapshot()
	if err != nil {
		return nil, err
	}
	p, err := pathParam(r)
	if err != nil {
		return nil, err
	}
	tree, err := snap.Select(p)
	if err != nil {
		return nil, err
	}
	pager, ok := tree.Pager(p)
	if !ok {
		return nil, derrors.NotFoundError("page is not in the navigation").
			WithContext("path", p).
			WithContext("version", tree.Key).
			Build()
	}
	trail, _ := tree.Trail(p)
	resp := &responses.PagerResponse{
		Path:    p,
		Version: tree.Key,
		Trail:   trail,
		Prev:    pager.Prev,
		Next:    pager.Next,
	}
	if page, ok := snap.Page(p); ok {
		resp.Title = page.Title
		resp.EditLink = snap.EditLink(page)
		if !page.LastUpdated.IsZero() {
			t := page.LastUpdated.UTC()
			resp.LastUpdated = &t
		}
	}
	return resp, nil
}

// HandleTopNav returns the header bar with rendered social icons.
func (h *APIHandlers) HandleTopNav(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot()
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	resp := &responses.TopNavResponse{
		Title:  snap.Site.Title,
		Items:  snap.TopNav.Sections,
		Social: make([]responses.SocialLink, 0, len(snap.Social)),
	}
	for _, s := range snap.Social {
		link := responses.SocialLink{Icon: s.Icon, Link: s.Link}
		if ic, err := icons.ForSocial(s.Icon); err == nil {
			link.SVG = ic.SVG(icons.DefaultClass)
		}
		resp.Social = append(resp.Social, link)
	}
	respond(w, r, h.errorAdapter, resp, nil)
}
