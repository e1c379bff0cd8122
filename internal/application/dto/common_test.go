package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/application/dto"
	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain"
)

func TestParseJoiningDate_FechaPura(t *testing.T) {
	got, err := dto.ParseJoiningDate("2023-05-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseJoiningDate_RFC3339(t *testing.T) {
	got, err := dto.ParseJoiningDate("2023-05-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2023, got.Year())
	assert.Equal(t, time.May, got.Month())
}

func TestParseJoiningDate_Invalida(t *testing.T) {
	for _, s := range []string{"", "15/05/2023", "mayo 15 2023", "2023-13-40"} {
		_, err := dto.ParseJoiningDate(s)
		assert.ErrorIs(t, err, domain.ErrInvalidDate, "entrada: %q", s)
	}
}
