package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/carbon"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ingest"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/milestone"
)

type fakeSource struct {
	stats  carbon.Stats
	status ingest.Status
}

func (f *fakeSource) Stats() carbon.Stats          { return f.stats }
func (f *fakeSource) Table() *milestone.Table      { return milestone.Default() }
func (f *fakeSource) ScannerStatus() ingest.Status { return f.status }

func TestMetrics_ReadSourceOnScrape(t *testing.T) {
	src := &fakeSource{
		stats:  carbon.Stats{InputTokens: 300, OutputTokens: 200, TotalTokens: 500, TotalCO2Kg: 0.6, RequestCount: 4},
		status: ingest.Status{Monitoring: true, PathsFound: 2, Scans: 9},
	}
	m := New(src)

	expected := `
# HELP claude_carbon_co2_kg Estimated CO2 emitted since tracking started, in kg
# TYPE claude_carbon_co2_kg gauge
claude_carbon_co2_kg 0.6
# HELP claude_carbon_requests Requests counted since tracking started
# TYPE claude_carbon_requests gauge
claude_carbon_requests 4
# HELP claude_carbon_tier_index Zero-based index of the current milestone tier
# TYPE claude_carbon_tier_index gauge
claude_carbon_tier_index 3
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected),
		"claude_carbon_co2_kg", "claude_carbon_requests", "claude_carbon_tier_index"))

	src.stats.TotalCO2Kg = 0
	src.status.Monitoring = false
	expected = `
# HELP claude_carbon_monitoring_active 1 while transcripts are being polled
# TYPE claude_carbon_monitoring_active gauge
claude_carbon_monitoring_active 0
# HELP claude_carbon_tier_index Zero-based index of the current milestone tier
# TYPE claude_carbon_tier_index gauge
claude_carbon_tier_index 0
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected),
		"claude_carbon_monitoring_active", "claude_carbon_tier_index"))
}

func TestMetrics_ObserveEvent(t *testing.T) {
	m := New(&fakeSource{})
	m.ObserveEvent(milestone.Event{Kind: milestone.KindWaypoint})
	m.ObserveEvent(milestone.Event{Kind: milestone.KindWaypoint})
	m.ObserveEvent(milestone.Event{Kind: milestone.KindTierChanged})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.MilestonesTotal.WithLabelValues("waypoint")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MilestonesTotal.WithLabelValues("tier_changed")))
}

func TestServer_Endpoints(t *testing.T) {
	s := NewServer("127.0.0.1:0", New(&fakeSource{}), zerolog.Nop())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "claude_carbon_co2_kg")
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := NewServer(ln.Addr().String(), New(&fakeSource{}), zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
