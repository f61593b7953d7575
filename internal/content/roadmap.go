package content

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnav/internal/foundation/normalization"
)

// Status is the state of a roadmap item.
type Status string

const (
	StatusDone       Status = "done"
	StatusInProgress Status = "in-progress"
	StatusPlanned    Status = "planned"
)

var statuses = normalization.New("roadmap status", map[string]Status{
	"done":        StatusDone,
	"in-progress": StatusInProgress,
	"in_progress": StatusInProgress,
	"planned":     StatusPlanned,
})

func (s *Status) UnmarshalYAML(node *yaml.Node) error {
	v, err := statuses.Parse(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = v
	return nil
}

// RoadmapItem is one deliverable of a track.
type RoadmapItem struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	IssueURL    string `yaml:"issue_url,omitempty" json:"githubIssueUrl,omitempty"`
	Status      Status `yaml:"status" json:"status"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
}

// Track groups the roadmap items of one project.
type Track struct {
	ID    string        `yaml:"id" json:"id"`
	Label string        `yaml:"label" json:"label"`
	Color string        `yaml:"color" json:"color"` // HSL triple, e.g. "52 100% 50%"
	WIP   bool          `yaml:"wip,omitempty" json:"wip,omitempty"`
	Items []RoadmapItem `yaml:"items" json:"items"`
}

// Roadmap is the list of tracks.
type Roadmap struct {
	Tracks []Track `yaml:"tracks" json:"tracks"`
}

// TrackProgress summarizes a track.
type TrackProgress struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Done       int    `json:"done"`
	InProgress int    `json:"inProgress"`
	Total      int    `json:"total"`
	Percent    int    `json:"percent"`
}

func (r Roadmap) validate() []error {
	var errs []error
	tracks := make(map[string]bool)
	items := make(map[string]string)
	for i, t := range r.Tracks {
		if strings.TrimSpace(t.ID) == "" {
			errs = append(errs, invalid(RoadmapFile, i, "id", "track id is required"))
		} else if tracks[t.ID] {
			errs = append(errs, invalid(RoadmapFile, i, "id", "duplicate track id "+t.ID))
		}
		tracks[t.ID] = true
		for _, it := range t.Items {
			if strings.TrimSpace(it.ID) == "" {
				errs = append(errs, invalid(RoadmapFile, i, "items.id", "item id is required in track "+t.ID))
				continue
			}
			if owner, ok := items[it.ID]; ok {
				errs = append(errs, invalid(RoadmapFile, i, "items.id",
					fmt.Sprintf("duplicate item id %s (already in track %s)", it.ID, owner)))
				continue
			}
			items[it.ID] = t.ID
		}
	}
	return errs
}

// Progress reports done and total item counts per track in file order.
func (r Roadmap) Progress() []TrackProgress {
	out := make([]TrackProgress, 0, len(r.Tracks))
	for _, t := range r.Tracks {
		p := TrackProgress{ID: t.ID, Label: t.Label, Total: len(t.Items)}
		for _, it := range t.Items {
			switch it.Status {
			case StatusDone:
				p.Done++
			case StatusInProgress:
				p.InProgress++
			}
		}
		if p.Total > 0 {
			p.Percent = p.Done * 100 / p.Total
		}
		out = append(out, p)
	}
	return out
}

// Track returns the track with id.
func (r Roadmap) Track(id string) (Track, bool) {
	for _, t := range r.Tracks {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}
