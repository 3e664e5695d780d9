package cache

import (
	"testing"
	"time"

	"github.com/DOXOPOKC/checklists/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCache(t *testing.T) {
	t.Parallel()

	document := &entities.ReportDocument{ID: 7, Name: "Relatório semanal"}

	t.Run("guarda e recupera por id de relatório", func(t *testing.T) {
		t.Parallel()
		c := New(time.Minute)
		c.Set(7, document)

		cached, found := c.Get(7)
		require.True(t, found)
		assert.Equal(t, document, cached)

		_, found = c.Get(8)
		assert.False(t, found)
	})

	t.Run("documento expirado não é devolvido", func(t *testing.T) {
		t.Parallel()
		c := New(time.Nanosecond)
		c.Set(7, document)

		time.Sleep(time.Millisecond)
		_, found := c.Get(7)
		assert.False(t, found)
	})

	t.Run("delete remove o documento", func(t *testing.T) {
		t.Parallel()
		c := New(time.Minute)
		c.Set(7, document)
		c.Delete(7)

		_, found := c.Get(7)
		assert.False(t, found)
	})

	t.Run("limpeza remove apenas os expirados", func(t *testing.T) {
		t.Parallel()
		c := New(time.Minute)
		c.Set(7, document)
		c.items[8] = item{document: document, expiration: time.Now().Add(-time.Second).UnixNano()}

		c.DeleteExpired()

		_, found := c.Get(7)
		assert.True(t, found)
		_, found = c.Get(8)
		assert.False(t, found)
	})
}
