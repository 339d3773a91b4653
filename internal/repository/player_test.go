package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/spinfour-backend/internal/apperror"
	"github.com/rocketscienceinc/spinfour-backend/internal/entity"
	"github.com/rocketscienceinc/spinfour-backend/testing/suite"
)

func TestPlayerRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	playerRepo := NewPlayerRepository(st.Storage, testTTL)

	// Given: a player with ID
	player := &entity.Player{
		ID: "123",
	}

	// When: CreateOrUpdate is called
	err := playerRepo.CreateOrUpdate(ctx, player)

	// Then: no error should be returned, and player is stored with an expiry
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "player:123").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestPlayerRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage, testTTL)

		// Given: a player bound to a game
		player := &entity.Player{
			ID:     "123",
			GameID: "game-1",
		}

		require.NoError(t, playerRepo.CreateOrUpdate(ctx, player))

		// When: GetByID is called with existing ID
		retrievedPlayer, err := playerRepo.GetByID(ctx, player.ID)

		// Then: the retrieved player should match the saved player
		require.NoError(t, err)
		assert.Equal(t, player, retrievedPlayer)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage, testTTL)

		// When: GetByID is called with non-existent ID
		retrievedPlayer, err := playerRepo.GetByID(ctx, "9999999")

		// Then: an ErrPlayerNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrPlayerNotFound)
		assert.Nil(t, retrievedPlayer)
	})
}

func TestPlayerRepository_Touch(t *testing.T) {
	t.Run("Touch_RestartsExpiry", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage, testTTL)

		// Given: a stored player whose expiry has run down
		require.NoError(t, playerRepo.CreateOrUpdate(ctx, &entity.Player{ID: "123", GameID: "game-1"}))
		require.NoError(t, st.Storage.Expire(ctx, "player:123", time.Minute).Err())

		// When: Touch is called
		err := playerRepo.Touch(ctx, "123")

		// Then: the expiry is back to the session ttl and the player is untouched
		require.NoError(t, err)

		ttl, err := st.Storage.TTL(ctx, "player:123").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Minute)

		player, err := playerRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, "game-1", player.GameID)
	})

	t.Run("Touch_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage, testTTL)

		// When: Touch is called for a player that is gone
		err := playerRepo.Touch(ctx, "9999999")

		// Then: an ErrPlayerNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrPlayerNotFound)
	})
}
