package observability

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.Mutation("add_section")
	m.Mutation("add_section")
	m.PersistFailed("resume")
	m.Rendered("modern")
	m.Exported("pdf", errors.New("no chrome"))
	m.Exported("html", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.mutationsTotal.WithLabelValues("add_section")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.persistFailures.WithLabelValues("resume")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rendersTotal.WithLabelValues("modern")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exportsTotal.WithLabelValues("pdf", OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exportsTotal.WithLabelValues("html", OutcomeSuccess)))
}

func TestMetrics_Generation(t *testing.T) {
	m := NewMetrics()

	m.GenerationStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generationsInFlight))

	m.GenerationDone(OutcomeSuccess, 20*time.Millisecond)
	m.GenerationSkipped()

	assert.Equal(t, 0.0, testutil.ToFloat64(m.generationsInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generationsTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generationsTotal.WithLabelValues(OutcomeSkipped)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.generationDuration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.Mutation("x")
		m.PersistFailed("x")
		m.GenerationStarted()
		m.GenerationDone(OutcomeFailure, time.Second)
		m.GenerationSkipped()
		m.Rendered("x")
		m.Exported("x", nil)
	})
	assert.Nil(t, m.Registry())
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.Mutation("reset")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `resume_builder_store_mutations_total{op="reset"} 1`)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
