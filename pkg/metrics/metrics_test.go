package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/miajio/keytrie/pkg/trie"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	assert.Equal(t, "ok", Result(nil))
	assert.Equal(t, "not_found", Result(fmt.Errorf("lookup: %w", trie.ErrNotFound)))
	assert.Equal(t, "invalid_key", Result(trie.ErrInvalidKey))
	assert.Equal(t, "error", Result(errors.New("disk full")))
}

func TestMetrics_Observe(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Observe("registry", "add", nil)
	m.Observe("registry", "add", nil)
	m.Observe("registry", "lookup", trie.ErrNotFound)
	m.SetSize("registry", 2, 19)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations.WithLabelValues("registry", "add", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("registry", "lookup", "not_found")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Keys.WithLabelValues("registry")))
	assert.Equal(t, 19.0, testutil.ToFloat64(m.Nodes.WithLabelValues("registry")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Observe("dictionary", "add", nil)
		m.SetSize("dictionary", 1, 2)
	})
}
