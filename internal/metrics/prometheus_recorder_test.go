package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration(StageResolve, 150*time.Millisecond)
	pr.IncStageResult(StageResolve, ResultSuccess)
	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncBuildOutcome(ResultSuccess)
	pr.SetNavLinks("/next/", 12)
	pr.SetPages(40)
	pr.SetLinkIssues("error", 2)
	pr.IncReload("watch", ResultSuccess)
	pr.IncReload("watch", ResultSuccess)
	pr.ObserveRequest("/api/nav", http.StatusOK, 3*time.Millisecond)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 9)

	assert.InDelta(t, 12, testutil.ToFloat64(pr.navLinks.WithLabelValues("/next/")), 0)
	assert.InDelta(t, 40, testutil.ToFloat64(pr.pages), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(pr.reloads.WithLabelValues("watch", "success")), 0)
}

func TestNilRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObserveBuildDuration(time.Second)
		pr.SetPages(1)
		pr.IncReload("schedule", ResultFailed)
	})
}

func TestNoopRecorderSatisfiesInterface(t *testing.T) {
	var r Recorder = NoopRecorder{}
	assert.NotPanics(t, func() {
		r.ObserveRequest("/healthz", 200, time.Millisecond)
	})
}

func TestHTTPHandlerServesMetrics(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg).SetPages(7)

	rec := httptest.NewRecorder()
	HTTPHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "docnav_pages 7")
}
