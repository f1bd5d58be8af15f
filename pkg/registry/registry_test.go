package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miajio/keytrie/pkg/trie"
)

var ana = Person{
	Name:        "Ana Pérez",
	Address:     "Av. Libertador 123, Santiago",
	DateOfBirth: "01/02/1990",
	Status:      Debtor,
}

func TestRegistry_MarkNotDebtorScenario(t *testing.T) {
	r := New()

	_, err := r.Add("12345678-9", ana)
	require.NoError(t, err)

	key, err := r.MarkNotDebtor("12345678-9")
	require.NoError(t, err)
	assert.Equal(t, "123456789", key)

	got, err := r.Lookup("12.345.678-9")
	require.NoError(t, err)
	assert.Equal(t, NotDebtor, got.Status)
	assert.Equal(t, ana.Name, got.Name)
	assert.Equal(t, ana.Address, got.Address)
	assert.Equal(t, ana.DateOfBirth, got.DateOfBirth)
}

func TestRegistry_MarkMissing(t *testing.T) {
	r := New()
	_, err := r.MarkNotDebtor("12345678-9")
	assert.ErrorIs(t, err, trie.ErrNotFound)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 1, r.Nodes())
}

func TestRegistry_EquivalentKeys(t *testing.T) {
	r := New()
	_, err := r.Add("12.345.678-K", ana)
	require.NoError(t, err)

	for _, k := range []string{"12345678k", "12345678-K", "12 345 678 K"} {
		got, err := r.Lookup(k)
		require.NoError(t, err, k)
		assert.Equal(t, ana, got)
	}
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_AddOverwrites(t *testing.T) {
	r := New()
	_, _ = r.Add("1-9", ana)

	bob := Person{Name: "Bob", Address: "Calle 1", DateOfBirth: "03/04/1985", Status: NotDebtor}
	_, err := r.Add("19", bob)
	require.NoError(t, err)

	got, err := r.Lookup("1-9")
	require.NoError(t, err)
	assert.Equal(t, bob, got)
}

func TestRegistry_InvalidRUT(t *testing.T) {
	r := New()
	_, err := r.Add("12345678/9", ana)
	assert.ErrorIs(t, err, trie.ErrInvalidKey)
	_, err = r.Lookup("abc")
	assert.ErrorIs(t, err, trie.ErrInvalidKey)
	_, err = r.Remove("")
	assert.ErrorIs(t, err, trie.ErrInvalidKey)
	assert.Equal(t, 1, r.Nodes())
}

func TestRegistry_RemoveSharedPrefix(t *testing.T) {
	r := New()
	_, _ = r.Add("12345678-9", ana)
	_, _ = r.Add("12345678-K", ana)
	_, _ = r.Add("1234567-0", ana)

	_, err := r.Remove("12345678-9")
	require.NoError(t, err)

	for _, k := range []string{"12345678-K", "1234567-0"} {
		_, err := r.Lookup(k)
		assert.NoError(t, err, k)
	}

	_, err = r.Remove("12345678-K")
	require.NoError(t, err)
	_, err = r.Remove("1234567-0")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Nodes())

	_, err = r.Remove("1234567-0")
	assert.ErrorIs(t, err, trie.ErrNotFound)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "Deudor", Debtor.String())
	assert.Equal(t, "No Deudor", NotDebtor.String())

	for _, s := range []Status{Debtor, NotDebtor} {
		got, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStatus("deudor")
	assert.Error(t, err)
}
