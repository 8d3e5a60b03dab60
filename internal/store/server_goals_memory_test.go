package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-goal-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCollection(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCollection[models.SavingsGoal]("g")

	first := c.Create(ctx, 1, trip())
	second := c.Create(ctx, 1, trip())
	c.Create(ctx, 2, trip())

	assert.Equal(t, "g1", first.ServerID)
	assert.Equal(t, "g2", second.ServerID)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	list := c.List(ctx, 1)
	require.Len(t, list, 2)
	assert.Equal(t, "g1", list[0].ServerID)
	assert.Equal(t, "g2", list[1].ServerID)

	updated, err := c.Update(ctx, 1, "g1", func(g *models.SavingsGoal) error {
		g.CurrentAmount = decimal.NewFromInt(500)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "500", updated.Payload.CurrentAmount.String())
	assert.True(t, updated.UpdatedAt.After(second.UpdatedAt))

	_, err = c.Update(ctx, 2, "g1", func(*models.SavingsGoal) error { return nil })
	assert.ErrorIs(t, err, ErrRecordNotFound, "чужой владелец")

	boom := errors.New("boom")
	_, err = c.Update(ctx, 1, "g1", func(*models.SavingsGoal) error { return boom })
	assert.ErrorIs(t, err, boom)

	require.NoError(t, c.Delete(ctx, 1, "g1"))
	assert.ErrorIs(t, c.Delete(ctx, 1, "g1"), ErrRecordNotFound)
	assert.Len(t, c.List(ctx, 1), 1)
}

func TestMemoryCollection_Put(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCollection[models.SavingsGoal]("g")

	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.Put(models.RemoteRecord[models.SavingsGoal]{ServerID: "g7", OwnerID: 1, Payload: trip(), UpdatedAt: at})

	list := c.List(ctx, 1)
	require.Len(t, list, 1)
	assert.True(t, list[0].UpdatedAt.Equal(at))
}
