package registry

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(r *Registry) map[string]Person {
	out := map[string]Person{}
	for k, p := range r.Entries() {
		out[k] = p
	}
	return out
}

func TestRegistry_Encode(t *testing.T) {
	r := New()
	_, _ = r.Add("9.876.543-2", Person{Name: "Bob", Address: "Calle 1", DateOfBirth: "03/04/1985", Status: NotDebtor})
	_, _ = r.Add("12.345.678-K", ana)

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf))

	want := `RUT: 12345678K
Nombre: Ana Pérez
Direccion: Av. Libertador 123, Santiago
Fecha de Nacimiento: 01/02/1990
Estado: Deudor
---------------------------------------
RUT: 98765432
Nombre: Bob
Direccion: Calle 1
Fecha de Nacimiento: 03/04/1985
Estado: No Deudor
---------------------------------------
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Encode() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RoundTrip(t *testing.T) {
	r := New()
	_, _ = r.Add("12.345.678-K", ana)
	_, _ = r.Add("1-9", Person{Name: "", Address: "Sin: dirección", DateOfBirth: "", Status: NotDebtor})
	_, _ = r.Add("11.111.111-1", Person{Name: "Carla", Address: "Pasaje 2", DateOfBirth: "05/06/1970", Status: Debtor})

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf))

	restored := New()
	n, err := restored.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	if diff := cmp.Diff(entries(r), entries(restored)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_EncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Encode(&buf))
	assert.Empty(t, buf.String())

	n, err := New().Decode(&buf)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRegistry_DecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing field", input: "RUT: 1\nNombre: a\n" + Separator + "\n"},
		{name: "unknown field", input: "RUT: 1\nApodo: a\n"},
		{name: "bad status", input: "RUT: 1\nNombre: a\nDireccion: b\nFecha de Nacimiento: c\nEstado: quizas\n" + Separator + "\n"},
		{name: "unterminated", input: "RUT: 1\nNombre: a\n"},
		{name: "no colon", input: "hola\n"},
		{name: "duplicate field", input: "RUT: 1\nRUT: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Decode(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestRegistry_DecodeInvalidRUT(t *testing.T) {
	input := "RUT: 12-X\nNombre: a\nDireccion: b\nFecha de Nacimiento: c\nEstado: Deudor\n" + Separator + "\n"
	_, err := New().Decode(strings.NewReader(input))
	assert.Error(t, err)
}

func TestRegistry_DecodeAllOrNothing(t *testing.T) {
	r := New()
	_, err := r.Add("1-9", ana)
	require.NoError(t, err)
	before := entries(r)
	nodes := r.Nodes()

	input := "RUT: 111111111\nNombre: Carla\nDireccion: Calle 2\nFecha de Nacimiento: 05/06/1970\nEstado: Deudor\n" +
		Separator + "\nBogus line\n"
	n, err := r.Decode(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, 0, n)

	if diff := cmp.Diff(before, entries(r)); diff != "" {
		t.Errorf("registry changed after failed decode (-want +got):\n%s", diff)
	}
	assert.Equal(t, nodes, r.Nodes())
}

func TestRegistry_SaveFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rut_data.txt")

	r := New()
	_, _ = r.Add("1-9", ana)
	_, _ = r.Add("2-7", ana)
	require.NoError(t, r.SaveFile(path))

	_, _ = r.Remove("2-7")
	require.NoError(t, r.SaveFile(path))

	restored := New()
	n, err := restored.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, entries(r), entries(restored))

	assert.Error(t, r.SaveFile(filepath.Join(t.TempDir(), "missing", "rut_data.txt")))
}
