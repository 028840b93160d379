package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "only separators", input: " , ,", expected: nil},
		{name: "trims and keeps order", input: " ME , SM", expected: []string{"ME", "SM"}},
		{name: "drops repeats", input: "SM,ME,SM", expected: []string{"SM", "ME"}},
		{name: "case sensitive", input: "a,A", expected: []string{"a", "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input))
		})
	}
}

func TestDedupeAndTrimUpper(t *testing.T) {
	assert.Equal(t, []string{"SM", "ME"}, DedupeAndTrimUpper([]string{" sm", "ME", "Sm ", ""}))
	assert.Nil(t, DedupeAndTrimUpper(nil))
}

func TestDedupeAndTrim(t *testing.T) {
	assert.Equal(t, []string{"foo", "bar"}, DedupeAndTrim([]string{"  foo ", "bar", "foo", "", "  "}))
}
