package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateParam(t *testing.T) {
	t.Parallel()

	t.Run("string vazia vira zero value", func(t *testing.T) {
		t.Parallel()
		parsed, err := ParseDateParam("")
		require.NoError(t, err)
		assert.True(t, parsed.IsZero())
	})

	t.Run("aceita RFC3339", func(t *testing.T) {
		t.Parallel()
		parsed, err := ParseDateParam("2024-05-10T09:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, 9, parsed.Hour())
	})

	t.Run("data simples vira início do dia", func(t *testing.T) {
		t.Parallel()
		parsed, err := ParseDateParam("2024-05-10")
		require.NoError(t, err)
		assert.Equal(t, 0, parsed.Hour())
		assert.Equal(t, 10, parsed.Day())
	})

	t.Run("formato desconhecido é rejeitado", func(t *testing.T) {
		t.Parallel()
		_, err := ParseDateParam("10/05/2024")
		assert.Error(t, err)
	})
}

func TestDayBounds(t *testing.T) {
	t.Parallel()

	moment := time.Date(2024, 5, 10, 15, 42, 7, 123, time.UTC)

	start := StartOfDay(moment)
	end := EndOfDay(moment)

	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 5, 10, 23, 59, 59, 999999999, time.UTC), end)
	assert.True(t, end.After(moment))
}
