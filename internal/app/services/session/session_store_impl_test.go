package session

import (
	"context"
	"testing"
	"time"

	"clinic-portal/internal/app/models"
	redisrepo "clinic-portal/internal/app/services/shared/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return server, client
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	user := models.User{UserID: 5, FirstName: "Ann", LastName: "Lee", Role: "PATIENT"}

	t.Run("Empty Store Loads Nil", func(t *testing.T) {
		_, client := newTestStore(t)
		store := NewSessionStore(redisrepo.NewRedisRepository(client), time.Hour, zap.NewNop())
		assert.Nil(t, store.Load(ctx, "sid"))
		assert.Nil(t, store.Load(ctx, ""))
	})

	t.Run("Save Then Load", func(t *testing.T) {
		server, client := newTestStore(t)
		store := NewSessionStore(redisrepo.NewRedisRepository(client), time.Hour, zap.NewNop())

		require.NoError(t, store.Save(ctx, "sid", "token-1", user))

		session := store.Load(ctx, "sid")
		require.NotNil(t, session)
		assert.Equal(t, "token-1", session.Token)
		assert.Equal(t, user, session.User)
		assert.Equal(t, time.Hour, server.TTL("portal:session:sid"))
	})

	t.Run("Save Overwrites Both Fields", func(t *testing.T) {
		_, client := newTestStore(t)
		store := NewSessionStore(redisrepo.NewRedisRepository(client), time.Hour, zap.NewNop())

		require.NoError(t, store.Save(ctx, "sid", "token-1", user))
		doctor := models.User{UserID: 9, Role: "DOCTOR"}
		require.NoError(t, store.Save(ctx, "sid", "token-2", doctor))

		session := store.Load(ctx, "sid")
		require.NotNil(t, session)
		assert.Equal(t, "token-2", session.Token)
		assert.Equal(t, doctor, session.User)
	})

	t.Run("Clear Removes Token And User", func(t *testing.T) {
		server, client := newTestStore(t)
		store := NewSessionStore(redisrepo.NewRedisRepository(client), time.Hour, zap.NewNop())

		require.NoError(t, store.Save(ctx, "sid", "token-1", user))
		require.NoError(t, store.Clear(ctx, "sid"))

		assert.Nil(t, store.Load(ctx, "sid"))
		assert.False(t, server.Exists("portal:session:sid"))
	})

	t.Run("Token Without User Is Signed Out", func(t *testing.T) {
		server, client := newTestStore(t)
		store := NewSessionStore(redisrepo.NewRedisRepository(client), time.Hour, zap.NewNop())
		server.HSet("portal:session:sid", "token", "token-1")

		assert.Nil(t, store.Load(ctx, "sid"))
	})

	t.Run("Malformed User Is Signed Out", func(t *testing.T) {
		server, client := newTestStore(t)
		store := NewSessionStore(redisrepo.NewRedisRepository(client), time.Hour, zap.NewNop())
		server.HSet("portal:session:sid", "token", "token-1", "user", "{not json")

		assert.Nil(t, store.Load(ctx, "sid"))
	})

	t.Run("Redis Down Loads Nil", func(t *testing.T) {
		server, client := newTestStore(t)
		store := NewSessionStore(redisrepo.NewRedisRepository(client), time.Hour, zap.NewNop())
		server.Close()

		assert.Nil(t, store.Load(ctx, "sid"))
	})
}
