package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fireclub-api/internal/models"
)

func TestInMemoryStatusRepository(t *testing.T) {
	repo := NewInMemoryStatusRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, models.NewStatusCheck("probe")))
	require.NoError(t, repo.Insert(ctx, models.NewStatusCheck("monitor")))

	checks, err := repo.List(ctx, ListLimit)
	require.NoError(t, err)
	require.Len(t, checks, 2)

	limited, err := repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestInMemorySignupRepositoryFindByEmail(t *testing.T) {
	repo := NewInMemorySignupRepository()
	ctx := context.Background()

	signup := models.NewEmailSignup("Nick", "nick@example.com", "Lagos", nil, nil)
	require.NoError(t, repo.Insert(ctx, signup))

	found, err := repo.FindByEmail(ctx, "nick@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, signup.ID, found.ID)

	// Exact, case-sensitive match only.
	miss, err := repo.FindByEmail(ctx, "NICK@example.com")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestInMemorySignupRepositoryListNewestFirst(t *testing.T) {
	repo := NewInMemorySignupRepository()
	ctx := context.Background()

	base := time.Now().UTC()
	for i, email := range []string{"old@example.com", "mid@example.com", "new@example.com"} {
		signup := models.NewEmailSignup("Nick", email, "Lagos", nil, nil)
		signup.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Insert(ctx, signup))
	}

	signups, err := repo.ListNewestFirst(ctx, ListLimit)
	require.NoError(t, err)
	require.Len(t, signups, 3)
	assert.Equal(t, "new@example.com", signups[0].Email)
	assert.Equal(t, "old@example.com", signups[2].Email)

	capped, err := repo.ListNewestFirst(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}
