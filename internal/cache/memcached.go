package cache

import (
	"encoding/json"

	"github.com/bradfitz/gomemcache/memcache"
)

const identityTTL = 60 // seconds

// Identity is the display-time slice of a user cached for feed
// enrichment. Short TTL: profile pictures can change.
type Identity struct {
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

// IdentityCache fronts user lookups with memcached. With no address
// configured every Get misses and every Set is a no-op, so callers
// never have to check whether caching is on.
type IdentityCache struct {
	mem *memcache.Client
}

func NewIdentityCache(addr string) *IdentityCache {
	if addr == "" {
		return &IdentityCache{}
	}
	return &IdentityCache{mem: memcache.New(addr)}
}

func (c *IdentityCache) Get(userID string) (Identity, bool) {
	if c.mem == nil {
		return Identity{}, false
	}
	item, err := c.mem.Get("identity:" + userID)
	if err != nil {
		return Identity{}, false
	}
	var ident Identity
	if err := json.Unmarshal(item.Value, &ident); err != nil {
		return Identity{}, false
	}
	return ident, true
}

func (c *IdentityCache) Set(userID string, ident Identity) {
	if c.mem == nil {
		return
	}
	value, err := json.Marshal(ident)
	if err != nil {
		return
	}
	_ = c.mem.Set(&memcache.Item{
		Key:        "identity:" + userID,
		Value:      value,
		Expiration: identityTTL,
	})
}
