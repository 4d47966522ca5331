package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techstore-admin/models"
)

func TestBoltSlotReadWrite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")

	slot, err := OpenBoltSlot(path)
	require.NoError(t, err)

	_, ok, err := slot.Read(ctx, DefaultKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, slot.Write(ctx, DefaultKey, []byte(`{"lastId":1}`)))
	data, ok, err := slot.Read(ctx, DefaultKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"lastId":1}`, string(data))

	require.NoError(t, slot.Close(ctx))
}

func TestBoltSlotKeepsCatalogAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	slot, err := OpenBoltSlot(path)
	require.NoError(t, err)
	s := newTestStore(t, slot)
	created, err := s.Create(ctx, models.ProductInput{Name: ptr("Kindle Scribe")})
	require.NoError(t, err)
	require.NoError(t, s.Close(ctx))

	reopened, err := OpenBoltSlot(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close(ctx) })

	again := newTestStore(t, reopened)
	got, err := again.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kindle Scribe", got.Name)
	assert.Equal(t, BestSellingCount+1, again.Count())
}
