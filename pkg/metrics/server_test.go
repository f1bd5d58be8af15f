package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestServe(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	srv := Serve("127.0.0.1:0", reg, zaptest.NewLogger(t))
	assert.NotNil(t, srv.Handler)
	assert.NoError(t, srv.Close())
}
