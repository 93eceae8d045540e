package feishu

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	defaultCleanupInterval = 10 * time.Minute
	// expiryMargin is subtracted from the platform lifetime so a cached token is never
	// presented in its last minutes.
	expiryMargin = 5 * time.Minute
)

// Cache provides tenant access token cache functionality.
type Cache struct {
	cache  *cache.Cache
	client *Client
}

// NewCache creates a new token cache instance.
func NewCache(cleanupInterval time.Duration, client *Client) *Cache {
	return &Cache{
		cache:  cache.New(cache.NoExpiration, cleanupInterval),
		client: client,
	}
}

// TenantAccessToken returns the cached token for the client's app, fetching a new one
// when none is cached. Tokens with an unknown or too short lifetime are not cached.
func (c *Cache) TenantAccessToken(ctx context.Context) (string, error) {
	key := c.cacheKey()
	if tok, found := c.cache.Get(key); found {
		return tok.(string), nil
	}

	tok, err := c.client.FetchTenantAccessToken(ctx)
	if err != nil {
		return "", err
	}
	if ttl := time.Duration(tok.ExpiresIn)*time.Second - expiryMargin; ttl > 0 {
		c.cache.Set(key, tok.Value, ttl)
	}
	return tok.Value, nil
}

// Invalidate drops the cached token so the next call exchanges credentials again.
func (c *Cache) Invalidate() {
	c.cache.Delete(c.cacheKey())
}

func (c *Cache) cacheKey() string {
	return fmt.Sprintf("tenant_access_token:%s", c.client.appID)
}
