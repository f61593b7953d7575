package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"git.home.luguber.info/inful/docnav/internal/apitypes"
	"git.home.luguber.info/inful/docnav/internal/content"
	"git.home.luguber.info/inful/docnav/internal/server/responses"
)

// HandleBlog lists posts newest first; ?tag= filters them.
func (h *APIHandlers) HandleBlog(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot()
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	blog := snap.Data.Blog
	resp := &responses.BlogResponse{Tag: r.URL.Query().Get("tag"), Tags: blog.Tags()}
	if resp.Tag != "" {
		resp.Posts = blog.PostsByTag(resp.Tag)
	} else {
		resp.Posts = blog.SortedPosts()
	}
	if resp.Posts == nil {
		resp.Posts = []content.Post{}
	}
	respond(w, r, h.errorAdapter, resp, nil)
}

// HandleRoadmap returns the roadmap tracks and their progress.
func (h *APIHandlers) HandleRoadmap(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot()
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	rm := snap.Data.Roadmap
	tracks := rm.Tracks
	if tracks == nil {
		tracks = []content.Track{}
	}
	respond(w, r, h.errorAdapter, &responses.RoadmapResponse{Tracks: tracks, Progress: rm.Progress()}, nil)
}

// HandleTypes lists the documented API type names.
func (h *APIHandlers) HandleTypes(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot()
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	respond(w, r, h.errorAdapter, map[string][]string{"types": snap.Types.Names()}, nil)
}

// HandleType returns the {name} API type with rendered signatures.
func (h *APIHandlers) HandleType(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot()
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	t, err := snap.Types.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	resp := &responses.TypeResponse{
		Type:             t,
		Signature:        t.Signature(),
		MemberSignatures: []responses.MemberSignature{},
	}
	for _, list := range []apitypes.Members{t.StaticMembers, t.Members} {
		for _, m := range list {
			resp.MemberSignatures = append(resp.MemberSignatures, responses.MemberSignature{
				Name:        m.Name,
				Signature:   m.Signature(),
				Description: m.Description,
			})
		}
	}
	for _, c := range t.Constructors {
		resp.ConstructorSignatures = append(resp.ConstructorSignatures, c.Signature(t.Name))
	}
	respond(w, r, h.errorAdapter, resp, nil)
}
