package catalog

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("SENSEI_TEST_DSN")
	if dsn == "" {
		t.Skip("SENSEI_TEST_DSN not set; skipping postgres test")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS catalog_snapshots (
			name           TEXT PRIMARY KEY,
			body           JSONB NOT NULL,
			template_count INT NOT NULL,
			road_count     INT NOT NULL,
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	require.NoError(t, err)
	return NewStore(pool)
}

func TestStore_SnapshotLifecycle(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	name := "test-" + time.Now().UTC().Format("20060102150405.000000")

	require.NoError(t, s.SaveSnapshot(ctx, name, Builtin()))
	t.Cleanup(func() { _ = s.DeleteSnapshot(context.Background(), name) })

	c, err := s.Load(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, Default().Templates(), c.Templates())
	assert.Equal(t, Default().Roads(), c.Roads())

	infos, err := s.ListSnapshots(ctx)
	require.NoError(t, err)
	var found bool
	for _, info := range infos {
		if info.Name == name {
			found = true
			assert.Equal(t, 50, info.Templates)
			assert.Equal(t, 8, info.Roads)
		}
	}
	assert.True(t, found, "snapshot %s not listed", name)

	require.NoError(t, s.DeleteSnapshot(ctx, name))
	_, err = s.LoadSnapshot(ctx, name)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestStore_SaveRejectsBrokenCatalog(t *testing.T) {
	s := setupStore(t)
	src := Builtin()
	src.Templates[0].PriceService = "teleport"

	err := s.SaveSnapshot(context.Background(), "broken", src)
	assert.ErrorIs(t, err, ErrUnknownService)
}
