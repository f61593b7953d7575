// Package responses defines the JSON bodies of the preview API.
package responses

import (
	"time"

	"git.home.luguber.info/inful/docnav/internal/apitypes"
	"git.home.luguber.info/inful/docnav/internal/content"
	"git.home.luguber.info/inful/docnav/internal/linkcheck"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    float64   `json:"uptime"`
	BuildID   string    `json:"build_id,omitempty"`
	BuiltAt   time.Time `json:"built_at,omitzero"`
	Pages     int       `json:"pages"`
	Errors    int       `json:"errors"`
	Warnings  int       `json:"warnings"`
}

// NavResponse is the sidebar serving a path.
type NavResponse struct {
	Path     string     `json:"path"`
	Version  string     `json:"version"`
	Sections []nav.Node `json:"sections"`
}

// VersionSummary describes one sidebar version.
type VersionSummary struct {
	Key      string `json:"key"`
	Sections int    `json:"sections"`
	Links    int    `json:"links"`
}

// VersionsResponse lists the sidebar versions in authoring order.
type VersionsResponse struct {
	Versions []VersionSummary `json:"versions"`
}

// PagerResponse holds the neighbours and breadcrumb of a page.
type PagerResponse struct {
	Path        string     `json:"path"`
	Version     string     `json:"version"`
	Title       string     `json:"title,omitempty"`
	Trail       []string   `json:"trail"`
	Prev        *nav.Link  `json:"prev,omitempty"`
	Next        *nav.Link  `json:"next,omitempty"`
	EditLink    string     `json:"edit_link,omitempty"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// SocialLink is a header icon link with its rendered icon.
type SocialLink struct {
	Icon string `json:"icon"`
	Link string `json:"link"`
	SVG  string `json:"svg"`
}

// TopNavResponse is the header bar of the site.
type TopNavResponse struct {
	Title  string       `json:"title"`
	Items  []nav.Node   `json:"items"`
	Social []SocialLink `json:"social"`
}

// IconsResponse lists icon names and the social identifiers.
type IconsResponse struct {
	Icons  []string `json:"icons"`
	Social []string `json:"social"`
}

// BlogResponse lists posts newest first, optionally filtered by tag.
type BlogResponse struct {
	Tag   string         `json:"tag,omitempty"`
	Posts []content.Post `json:"posts"`
	Tags  []content.Tag  `json:"tags"`
}

// RoadmapResponse carries the roadmap and its per-track progress.
type RoadmapResponse struct {
	Tracks   []content.Track         `json:"tracks"`
	Progress []content.TrackProgress `json:"progress"`
}

// MemberSignature is a rendered member line.
type MemberSignature struct {
	Name        string `json:"name"`
	Signature   string `json:"signature"`
	Description string `json:"description,omitempty"`
}

// TypeResponse is an API type with its rendered signatures.
type TypeResponse struct {
	apitypes.Type
	Signature             string            `json:"signature"`
	MemberSignatures      []MemberSignature `json:"member_signatures"`
	ConstructorSignatures []string          `json:"constructor_signatures,omitempty"`
}

// ReloadResponse reports the snapshot produced by a reload.
type ReloadResponse struct {
	Status     string            `json:"status"`
	BuildID    string            `json:"build_id"`
	DurationMS float64           `json:"duration_ms"`
	Issues     []linkcheck.Issue `json:"issues"`
}
