package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Abdullah Khan", false},
		{"single character", "H", false},
		{"name with surrounding spaces is stored as given", "  Hana Ali ", false},
		{"empty name", "", true},
		{"whitespace only", "    ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			author, err := NewAuthor(tt.input)
			if tt.wantErr {
				assert.Nil(t, author)
				assert.ErrorIs(t, err, ErrBlankValue)
				assert.ErrorIs(t, err, ErrValidationFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, author.Name())
			assert.Equal(t, tt.input, author.String())
		})
	}
}

func TestNewAuthor_DistinctIdentity(t *testing.T) {
	a1, err := NewAuthor("Same Name")
	require.NoError(t, err)
	a2, err := NewAuthor("Same Name")
	require.NoError(t, err)

	assert.NotEqual(t, a1.ID, a2.ID)
}
