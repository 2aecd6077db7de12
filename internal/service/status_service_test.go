package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fireclub-api/internal/logging"
	"fireclub-api/internal/repository"
)

func TestCreateStatusCheck(t *testing.T) {
	svc := NewStatusService(repository.NewInMemoryStatusRepository(), logging.NewLogger("info"))
	start := time.Now().UTC()

	check, err := svc.Create(context.Background(), "probe")
	require.NoError(t, err)

	assert.NotEmpty(t, check.ID)
	assert.Equal(t, "probe", check.ClientName)
	assert.False(t, check.Timestamp.Before(start))
}

func TestListStatusChecks(t *testing.T) {
	svc := NewStatusService(repository.NewInMemoryStatusRepository(), logging.NewLogger("info"))
	ctx := context.Background()

	for _, name := range []string{"probe", "monitor", "uptime-bot"} {
		_, err := svc.Create(ctx, name)
		require.NoError(t, err)
	}

	checks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, checks, 3)

	names := make([]string, 0, len(checks))
	for _, c := range checks {
		names = append(names, c.ClientName)
	}
	assert.Contains(t, names, "probe")
}
