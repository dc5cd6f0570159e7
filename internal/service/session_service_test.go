package service

import (
	"career_compass_backend/internal/repository"
	"career_compass_backend/internal/util"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Check(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "asha@example.com", "secret")
	repo := repository.NewSessionRepository(db)
	svc := NewSessionService(repo, 30*time.Minute)
	ctx := context.Background()

	clock := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	require.NoError(t, svc.Start(ctx, user.ID, "token-a"))
	require.NoError(t, svc.Start(ctx, user.ID, "token-b"))

	t.Run("active session is refreshed", func(t *testing.T) {
		clock = clock.Add(20 * time.Minute)
		require.NoError(t, svc.Check(ctx, user.ID, "token-a"))

		row, err := repo.FindByToken(ctx, user.ID, HashToken("token-a"))
		require.NoError(t, err)
		assert.True(t, row.LastActivity.Equal(clock), "last activity %v", row.LastActivity)
	})

	t.Run("idle session expires and is removed", func(t *testing.T) {
		// token-b 已空闲 20 分钟，再过 11 分钟超过 30 分钟
		clock = clock.Add(11 * time.Minute)
		err := svc.Check(ctx, user.ID, "token-b")
		assert.ErrorIs(t, err, util.ErrSessionExpired)
		assert.Equal(t, 401, util.StatusCode(err))

		_, err = repo.FindByToken(ctx, user.ID, HashToken("token-b"))
		assert.Error(t, err)

		// token-a 仍然有效
		require.NoError(t, svc.Check(ctx, user.ID, "token-a"))
	})

	t.Run("unknown token passes", func(t *testing.T) {
		assert.NoError(t, svc.Check(ctx, user.ID, "never-issued"))
	})

	t.Run("end all removes every session", func(t *testing.T) {
		require.NoError(t, svc.EndAll(ctx, user.ID))
		count, err := repo.CountByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestHashToken(t *testing.T) {
	assert.Len(t, HashToken("abc"), 64)
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
}
