package metrics

import (
	"strconv"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "docnav"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once            sync.Once
	stageDuration   *prom.HistogramVec
	stageResults    *prom.CounterVec
	buildDuration   prom.Histogram
	buildOutcome    *prom.CounterVec
	navLinks        *prom.GaugeVec
	pages           prom.Gauge
	linkIssues      *prom.GaugeVec
	reloads         *prom.CounterVec
	requestDuration *prom.HistogramVec
}

// NewPrometheusRecorder constructs and registers the collectors on reg.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: Namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual build stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"})
		pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: Namespace,
			Name:      "stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"})
		pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: Namespace,
			Name:      "build_duration_seconds",
			Help:      "Total snapshot build duration",
			Buckets:   prom.DefBuckets,
		})
		pr.buildOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: Namespace,
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"})
		pr.navLinks = prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: Namespace,
			Name:      "nav_links",
			Help:      "Resolved sidebar links per version key",
		}, []string{"version"})
		pr.pages = prom.NewGauge(prom.GaugeOpts{
			Namespace: Namespace,
			Name:      "pages",
			Help:      "Markdown pages found in the content tree",
		})
		pr.linkIssues = prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: Namespace,
			Name:      "link_issues",
			Help:      "Link check issues of the current snapshot by severity",
		}, []string{"severity"})
		pr.reloads = prom.NewCounterVec(prom.CounterOpts{
			Namespace: Namespace,
			Name:      "reloads_total",
			Help:      "Snapshot reloads by trigger and result",
		}, []string{"trigger", "result"})
		pr.requestDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Preview API request duration by route and status",
			Buckets:   prom.DefBuckets,
		}, []string{"route", "status"})
		reg.MustRegister(pr.stageDuration, pr.stageResults, pr.buildDuration, pr.buildOutcome,
			pr.navLinks, pr.pages, pr.linkIssues, pr.reloads, pr.requestDuration)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil || p.stageResults == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil || p.buildDuration == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome ResultLabel) {
	if p == nil || p.buildOutcome == nil {
		return
	}
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetNavLinks(version string, n int) {
	if p == nil || p.navLinks == nil {
		return
	}
	p.navLinks.WithLabelValues(version).Set(float64(n))
}

func (p *PrometheusRecorder) SetPages(n int) {
	if p == nil || p.pages == nil {
		return
	}
	p.pages.Set(float64(n))
}

func (p *PrometheusRecorder) SetLinkIssues(severity string, n int) {
	if p == nil || p.linkIssues == nil {
		return
	}
	p.linkIssues.WithLabelValues(severity).Set(float64(n))
}

func (p *PrometheusRecorder) IncReload(trigger string, result ResultLabel) {
	if p == nil || p.reloads == nil {
		return
	}
	p.reloads.WithLabelValues(trigger, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveRequest(route string, status int, d time.Duration) {
	if p == nil || p.requestDuration == nil {
		return
	}
	p.requestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(d.Seconds())
}
