package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultWarning ResultLabel = "warning"
	ResultFailed  ResultLabel = "failed"
)

// Stage names used by the site builder.
const (
	StageConfig    = "config"
	StageResolve   = "resolve"
	StageContent   = "content"
	StageTypes     = "types"
	StagePages     = "pages"
	StageLinkCheck = "linkcheck"
)

// Recorder defines observability hooks for builds, reloads and API requests.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome ResultLabel)
	SetNavLinks(version string, n int)
	SetPages(n int)
	SetLinkIssues(severity string, n int)
	IncReload(trigger string, result ResultLabel)
	ObserveRequest(route string, status int, d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncBuildOutcome(ResultLabel)                {}
func (NoopRecorder) SetNavLinks(string, int)                    {}
func (NoopRecorder) SetPages(int)                               {}
func (NoopRecorder) SetLinkIssues(string, int)                  {}
func (NoopRecorder) IncReload(string, ResultLabel)              {}
func (NoopRecorder) ObserveRequest(string, int, time.Duration)  {}
