package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	// Arrange
	recorder := NewPrometheusRecorder()

	// Act
	recorder.ObserveCompile("compiled", 20*time.Millisecond)
	recorder.ObserveCompile("compiled", 10*time.Millisecond)
	recorder.ObserveCompile("diagnosed_failure", time.Millisecond)
	recorder.ObserveEvent(CommandAddProject)

	// Assert
	assert.InDelta(t, 2, testutil.ToFloat64(recorder.Outcomes().WithLabelValues("compiled")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.Outcomes().WithLabelValues("diagnosed_failure")), 0)

	rec := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `playground_events_total{command="add_project"} 1`)
	assert.Contains(t, rec.Body.String(), "playground_compile_duration_seconds_count 3")
}

func TestNopRecorder(t *testing.T) {
	var recorder CompileRecorder = NopRecorder{}

	assert.NotPanics(t, func() {
		recorder.ObserveCompile("compiled", time.Second)
		recorder.ObserveEvent(CommandRemoveProject)
	})
}
