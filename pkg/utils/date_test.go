package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("data válida", func(t *testing.T) {
		date, err := ParseDate("2026-03-08")
		require.NoError(t, err)
		require.NotNil(t, date)

		assert.Equal(t, 2026, date.Year())
		assert.Equal(t, time.March, date.Month())
		assert.Equal(t, 8, date.Day())
	})

	t.Run("string vazia devolve data zero sem erro", func(t *testing.T) {
		date, err := ParseDate("")
		require.NoError(t, err)
		require.NotNil(t, date)
		assert.True(t, date.IsZero())
	})

	t.Run("formato inválido", func(t *testing.T) {
		_, err := ParseDate("08/03/2026")
		assert.Error(t, err)
	})
}

func TestStartOfDay(t *testing.T) {
	moment := time.Date(2026, 3, 8, 17, 42, 9, 123, time.Local)

	start := StartOfDay(moment)

	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.Local), start)
}

func TestEndOfDay(t *testing.T) {
	moment := time.Date(2026, 3, 8, 9, 0, 0, 0, time.Local)

	end := EndOfDay(moment)

	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.True(t, end.After(moment))
	assert.Equal(t, 8, end.Day())
}
