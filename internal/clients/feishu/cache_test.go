package feishu

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_TenantAccessToken(t *testing.T) {
	t.Parallel()

	t.Run("token is reused until invalidated", func(t *testing.T) {
		stub := newFeishuStub(t, "tok-1")
		cache := NewCache(time.Minute, newTestClient(t, stub.server.URL, false))

		tok, err := cache.TenantAccessToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok-1", tok)

		tok, err = cache.TenantAccessToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok-1", tok)
		assert.Equal(t, int32(1), stub.tokenCalls.Load())

		cache.Invalidate()
		_, err = cache.TenantAccessToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), stub.tokenCalls.Load())
	})

	t.Run("short lived token is not cached", func(t *testing.T) {
		stub := newFeishuStub(t, "tok-1", func(s *feishuStub) { s.expire = 60 })
		cache := NewCache(time.Minute, newTestClient(t, stub.server.URL, false))

		for range 3 {
			_, err := cache.TenantAccessToken(context.Background())
			require.NoError(t, err)
		}
		assert.Equal(t, int32(3), stub.tokenCalls.Load())
	})

	t.Run("fetch errors are not cached", func(t *testing.T) {
		stub := newFeishuStub(t, "tok-1", func(s *feishuStub) { s.tokenCode = 10014 })
		cache := NewCache(time.Minute, newTestClient(t, stub.server.URL, false))

		_, err := cache.TenantAccessToken(context.Background())
		require.Error(t, err)
		_, err = cache.TenantAccessToken(context.Background())
		require.Error(t, err)
		assert.Equal(t, int32(2), stub.tokenCalls.Load())
	})
}

func TestClient_SendTextWithTokenCache(t *testing.T) {
	t.Parallel()

	t.Run("cached token shared across sends", func(t *testing.T) {
		stub := newFeishuStub(t, "tok-1")
		client := newTestClient(t, stub.server.URL, true)

		require.NoError(t, client.SendText(context.Background(), "ou_1", "a"))
		require.NoError(t, client.SendText(context.Background(), "ou_2", "b"))
		assert.Equal(t, int32(1), stub.tokenCalls.Load())
		for _, msg := range stub.messages() {
			assert.Equal(t, "Bearer tok-1", msg.Authorization)
		}
	})

	t.Run("failed send drops the cached token", func(t *testing.T) {
		stub := newFeishuStub(t, "tok-1", func(s *feishuStub) { s.sendStatus = http.StatusUnauthorized })
		client := newTestClient(t, stub.server.URL, true)

		require.Error(t, client.SendText(context.Background(), "ou_1", "a"))
		require.Error(t, client.SendText(context.Background(), "ou_1", "b"))
		assert.Equal(t, int32(2), stub.tokenCalls.Load())
	})
}
