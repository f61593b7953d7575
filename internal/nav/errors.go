package nav

import (
	"fmt"
	"strings"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// Problem kinds reported in a ConfigurationError.
const (
	ReasonDeadEntry     = "entry has neither link nor children"
	ReasonDuplicatePath = "resolved path already used"
	ReasonBadVersionKey = "version key must start with /"
)

// ConfigurationError describes one malformed entry of a navigation tree.
type ConfigurationError struct {
	Version string
	Trail   []string // section texts from root to the offending item
	Text    string
	Path    string
	Reason  string
	// FirstTrail locates the earlier entry for duplicate paths.
	FirstTrail []string
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "version %q", e.Version)
	if loc := location(e.Trail, e.Text); loc != "" {
		fmt.Fprintf(&b, ", %s", loc)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Path != "" {
		fmt.Fprintf(&b, " (%s)", e.Path)
	}
	if len(e.FirstTrail) > 0 {
		fmt.Fprintf(&b, ", first used by %s", strings.Join(e.FirstTrail, " > "))
	}
	return b.String()
}

func location(trail []string, text string) string {
	parts := append(append([]string{}, trail...), text)
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " > ")
}

// NoMatchError is returned when a path matches no version key and the
// navigation has no default key.
type NoMatchError struct {
	Path string
	Keys []string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no navigation version matches %q (keys: %s)", e.Path, strings.Join(e.Keys, ", "))
}

// ErrInvalidNavigation is the classified wrapper for every resolve failure.
// Use errors.As with *ConfigurationError to inspect individual problems.
var ErrInvalidNavigation = derrors.ConfigError("invalid navigation configuration").Build()

// ErrNoMatch is the classified wrapper for SelectVersion failures.
var ErrNoMatch = derrors.NotFoundError("no navigation version matches path").Build()

func invalid(problems []error) error {
	versions := make([]string, 0, 1)
	seen := make(map[string]bool)
	for _, p := range problems {
		if ce, ok := p.(*ConfigurationError); ok && !seen[ce.Version] {
			seen[ce.Version] = true
			versions = append(versions, ce.Version)
		}
	}
	return derrors.ConfigError(ErrInvalidNavigation.Message()).
		WithCause(joinProblems(problems)).
		WithContext("versions", strings.Join(versions, ",")).
		WithContext("problems", len(problems)).
		Build()
}

// joinProblems keeps a single problem unwrapped for readable messages.
func joinProblems(problems []error) error {
	if len(problems) == 1 {
		return problems[0]
	}
	return &problemList{problems: problems}
}

type problemList struct{ problems []error }

func (p *problemList) Error() string {
	msgs := make([]string, len(p.problems))
	for i, e := range p.problems {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d problems: %s", len(p.problems), strings.Join(msgs, "; "))
}

func (p *problemList) Unwrap() []error { return p.problems }
