package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/questions", "GET", 302, 2*time.Millisecond)
	m.RecordRequest("/questions", "GET", 302, 4*time.Millisecond)
	m.RecordError("/session", "POST", "VALIDATION_FAILED")
	m.RecordNavigation("/questions", "redirect", "/login")
	m.RecordNavigation("/login", "proceed", "")

	s := m.Snapshot()
	assert.Equal(t, int64(2), s.Requests["/questions|GET|302"])
	assert.Equal(t, int64(1), s.Errors["/session|POST|VALIDATION_FAILED"])
	assert.Equal(t, int64(1), s.Navigations["/questions|redirect|/login"])
	assert.Equal(t, int64(1), s.Navigations["/login|proceed"])
	assert.InDelta(t, 3.0, s.AverageLatency, 0.001)

	s.Requests["/questions|GET|302"] = 99
	assert.Equal(t, int64(2), m.Snapshot().Requests["/questions|GET|302"])
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordNavigation("/", "proceed", "")
	assert.Empty(t, m.Snapshot().Requests)
}
