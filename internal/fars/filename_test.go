package fars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeFilename(t *testing.T) {
	assert.Equal(t, "accident_2013.csv.bz2", MakeFilename(2013))
	assert.Equal(t, "accident_2014.csv.bz2", MakeFilename(2014))

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, MakeFilename(2015), MakeFilename(2015))
	})

	t.Run("distinct years, distinct names", func(t *testing.T) {
		assert.NotEqual(t, MakeFilename(2013), MakeFilename(2014))
	})
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"integer", "2013", 2013},
		{"surrounding whitespace", " 2014 ", 2014},
		{"fractional truncates toward zero", "2020.7", 2020},
		{"negative fractional truncates toward zero", "-2.7", -2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			year, err := ParseYear(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, year)
		})
	}

	t.Run("non-numeric", func(t *testing.T) {
		_, err := ParseYear("twenty-thirteen")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "twenty-thirteen")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseYear("")
		require.Error(t, err)
	})
}
