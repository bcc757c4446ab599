package metric

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/david4096/sparql-agent-sub003/validation"
)

func TestRecorder_Counts(t *testing.T) {
	r := NewRecorder()

	r.RecordValidation(true)
	r.RecordValidation(true)
	r.RecordValidation(false)
	r.RecordViolation(validation.ViolationRange)
	r.RecordViolation(validation.ViolationRange)
	r.RecordViolation(validation.ViolationClosed)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.validations.WithLabelValues("valid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.validations.WithLabelValues("invalid")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.violations.WithLabelValues("RANGE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.violations.WithLabelValues("CLOSED")))
}

func TestRecorder_IndependentRegistries(t *testing.T) {
	// Two recorders must not collide on metric registration.
	a := NewRecorder()
	b := NewRecorder()
	a.RecordValidation(true)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.validations.WithLabelValues("valid")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.validations.WithLabelValues("valid")))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.RecordValidation(false)
	r.RecordViolation(validation.ViolationCardinality)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
}
