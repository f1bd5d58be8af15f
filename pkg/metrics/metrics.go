package metrics

import (
	"errors"

	"github.com/miajio/keytrie/pkg/trie"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 前缀树操作指标; nil 值可直接使用, 此时不记录任何数据
type Metrics struct {
	// Operations counts trie operations by variant (dictionary/registry), op and result
	Operations *prometheus.CounterVec
	// Keys tracks the number of stored keys per variant
	Keys *prometheus.GaugeVec
	// Nodes tracks the number of live trie nodes per variant
	Nodes *prometheus.GaugeVec
}

// New 创建指标并注册到 reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keytrie_operations_total",
				Help: "Total number of trie operations by variant, operation and result",
			},
			[]string{"variant", "op", "result"},
		),
		Keys: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "keytrie_keys",
				Help: "Number of keys stored in the trie",
			},
			[]string{"variant"},
		),
		Nodes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "keytrie_nodes",
				Help: "Number of live trie nodes including the root",
			},
			[]string{"variant"},
		),
	}
	reg.MustRegister(m.Operations, m.Keys, m.Nodes)
	return m
}

// Result 将操作错误映射为指标标签
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, trie.ErrNotFound):
		return "not_found"
	case errors.Is(err, trie.ErrInvalidKey):
		return "invalid_key"
	default:
		return "error"
	}
}

// Observe 记录一次操作
func (m *Metrics) Observe(variant, op string, err error) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(variant, op, Result(err)).Inc()
}

// SetSize 更新键数量与节点数量
func (m *Metrics) SetSize(variant string, keys, nodes int) {
	if m == nil {
		return
	}
	m.Keys.WithLabelValues(variant).Set(float64(keys))
	m.Nodes.WithLabelValues(variant).Set(float64(nodes))
}
