package redissim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonebookd/internal/phonebook/models"
)

func TestLowestFree(t *testing.T) {
	tests := []struct {
		name     string
		used     []string
		capacity int
		want     int
	}{
		{"empty card", nil, 3, 1},
		{"gap in the middle", []string{"1", "3"}, 3, 2},
		{"full", []string{"1", "2", "3"}, 3, 0},
		{"ignores junk keys", []string{"x", "1"}, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lowestFree(tt.used, tt.capacity))
		})
	}
}

func TestDecodeFdn(t *testing.T) {
	got, err := decodeFdn(map[string]string{
		"3": `{"index":3,"name":"Work","number":"999"}`,
		"1": `{"index":1,"name":"Police","number":"110"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, []models.FdnEntry{
		{Index: 1, Name: "Police", Number: "110"},
		{Index: 3, Name: "Work", Number: "999"},
	}, got)

	_, err = decodeFdn(map[string]string{"1": "{"})
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "phonebookd:sim:/modem0:meta", metaKey("/modem0"))
	assert.Equal(t, "phonebookd:sim:/modem0:fdn", fdnKey("/modem0"))
	assert.Equal(t, "phonebookd:sim:/modem0:storage:SM", storageKey("/modem0", "SM"))
}

func TestSplitField(t *testing.T) {
	assert.Nil(t, splitField(""))
	assert.Equal(t, []string{"ME", "SM"}, splitField("ME,SM"))
}
