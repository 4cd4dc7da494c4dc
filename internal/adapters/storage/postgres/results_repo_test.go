package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawstars-api/internal/domain/results"
)

// Necesita un Postgres real: PAWSTARS_TEST_DSN=postgres://... go test ./internal/adapters/storage/postgres/
func openTestDB(t *testing.T) *ResultsRepo {
	t.Helper()

	dsn := os.Getenv("PAWSTARS_TEST_DSN")
	if dsn == "" {
		t.Skip("PAWSTARS_TEST_DSN not set")
	}

	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, Migrate(ctx, db), "migrate must be idempotent")

	return NewResultsRepo(db)
}

func TestResultsRepo_RoundTrip(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	res := results.Result{
		ID:        uuid.NewString(),
		Kind:      results.KindCompatibility,
		Text:      "💝 Bori × Minji 궁합",
		DogName:   "Bori",
		OwnerName: "Minji",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, repo.Create(ctx, res))
	require.Error(t, repo.Create(ctx, res), "duplicate id")

	got, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Kind, got.Kind)
	assert.Equal(t, res.Text, got.Text)
	assert.Equal(t, res.OwnerName, got.OwnerName)
	assert.True(t, res.CreatedAt.Equal(got.CreatedAt))

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, results.ErrNotFound)
}
