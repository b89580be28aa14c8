package db

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"nexus/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestStore opens a named in-memory database so every pooled
// connection sees the same schema.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	orm, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	store, err := NewStore(orm)
	require.NoError(t, err)
	return store
}

func countRows(t *testing.T, store *Store, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, store.orm.Model(model).Count(&count).Error)
	return count
}

func TestSeedIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx))
	require.NoError(t, store.Seed(ctx))

	require.EqualValues(t, 2, countRows(t, store, &models.User{}))
	require.EqualValues(t, 3, countRows(t, store, &models.Post{}))
	require.EqualValues(t, 3, countRows(t, store, &models.Product{}))
}

func TestSeedSkippedWhenUsersExist(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.User{Username: "existing", DisplayName: "Existing User"}
	require.NoError(t, store.orm.Create(&user).Error)

	require.NoError(t, store.Seed(ctx))

	// A non-empty users table skips seeding entirely, partial reseeds
	// never happen.
	require.EqualValues(t, 1, countRows(t, store, &models.User{}))
	require.EqualValues(t, 0, countRows(t, store, &models.Post{}))
	require.EqualValues(t, 0, countRows(t, store, &models.Product{}))
}

func TestSeedDemo(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx))
	require.NoError(t, store.SeedDemo(ctx, 5, 10))

	require.EqualValues(t, 7, countRows(t, store, &models.User{}))
	require.EqualValues(t, 13, countRows(t, store, &models.Post{}))
}

func TestSeedDemoDisabled(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx))
	require.NoError(t, store.SeedDemo(ctx, 0, 0))

	require.EqualValues(t, 2, countRows(t, store, &models.User{}))
	require.EqualValues(t, 3, countRows(t, store, &models.Post{}))
}
