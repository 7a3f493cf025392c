package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveness(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health/live", "")

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestReadinessWithoutBackends(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health/ready", "")

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "ready")
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	submitRecord(t, ts, validSubmitBody)

	rec := ts.do(http.MethodGet, "/metrics", "")

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "feedback_submissions_total")
}
