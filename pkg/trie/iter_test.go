package trie

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestTrie_AllOrder(t *testing.T) {
	tr := New[int](RUT)
	for i, k := range []string{"9", "1K", "10", "1", "K", "19"} {
		_, _ = tr.Put(k, i)
	}

	want := []pair{
		{"1", 3},
		{"10", 2},
		{"19", 5},
		{"1K", 1},
		{"9", 0},
		{"K", 4},
	}
	if diff := cmp.Diff(want, pairs(tr)); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestTrie_AllIsRestartable(t *testing.T) {
	tr := New[int](Letters)
	_, _ = tr.Put("B", 2)
	_, _ = tr.Put("A", 1)

	first := pairs(tr)
	second := pairs(tr)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestTrie_AllStopsEarly(t *testing.T) {
	tr := New[int](Letters)
	for i, k := range []string{"A", "B", "C", "D"} {
		_, _ = tr.Put(k, i)
	}

	var seen []string
	for k := range tr.All() {
		seen = append(seen, k)
		if k == "B" {
			break
		}
	}
	assert.Equal(t, []string{"A", "B"}, seen)
}

func TestTrie_Prefix(t *testing.T) {
	tr := New[int](Letters)
	testData := map[string]int{
		"apple":  1,
		"app":    2,
		"banana": 3,
		"orange": 4,
	}
	for k, v := range testData {
		_, _ = tr.Put(k, v)
	}

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{name: "prefix 'app'", prefix: "app", want: []string{"APP", "APPLE"}},
		{name: "prefix 'ban'", prefix: "BAN", want: []string{"BANANA"}},
		{name: "non-existent prefix", prefix: "xyz", want: nil},
		{name: "invalid prefix", prefix: "a-b", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for k := range tr.Prefix(tt.prefix) {
				got = append(got, k)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
