package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	f, err := Load("testdata/sims.yaml")
	require.NoError(t, err)
	require.Len(t, f.Modems, 2)

	sim, ok := f.Lookup("/modem0")
	require.True(t, ok)
	assert.Equal(t, "4321", sim.PIN2)
	assert.Equal(t, 5, sim.FdnCapacity)
	require.Len(t, sim.Storages["SM"], 3)
	assert.Equal(t, "Bob/m", sim.Storages["SM"][1].Text)
	assert.Equal(t, "bob@example.org", sim.Storages["SM"][1].Email)
	// sorted by index
	assert.Equal(t, 1, sim.Fdn[0].Index)
	assert.Equal(t, "Police", sim.Fdn[0].Name)

	blank, ok := f.Lookup("/modem1")
	require.True(t, ok)
	assert.Equal(t, DefaultPIN2, blank.PIN2)
	assert.Equal(t, DefaultFdnCapacity, blank.FdnCapacity)
	assert.True(t, blank.Fails("ME"))
	assert.False(t, blank.Fails("SM"))

	_, ok = f.Lookup("/nope")
	assert.False(t, ok)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing id", "modems:\n  - pin2: \"1234\"\n"},
		{"bad pin2", "modems:\n  - id: /m\n    pin2: \"12\"\n"},
		{"fdn index out of range", "modems:\n  - id: /m\n    fdn_capacity: 2\n    fdn:\n      - {index: 3, name: a, number: \"1\"}\n"},
		{"duplicate fdn index", "modems:\n  - id: /m\n    fdn:\n      - {index: 1, name: a, number: \"1\"}\n      - {index: 1, name: b, number: \"2\"}\n"},
		{"duplicate modem", "modems:\n  - id: /m\n  - id: /m\n"},
		{"unknown field", "modems:\n  - id: /m\n    pin: \"1234\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	f, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Modems)
}

func TestBlank(t *testing.T) {
	sim := Blank("/modem9")
	assert.Equal(t, "/modem9", sim.ID)
	assert.Equal(t, DefaultPIN2, sim.PIN2)
	assert.NotNil(t, sim.Storages)
}
