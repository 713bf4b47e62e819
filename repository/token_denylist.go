// file: repository/token_denylist.go

package repository

import (
	"sync"
	"time"
)

// ITokenDenylist tracks refresh token ids that have already been
// exchanged, so a consumed refresh token cannot be replayed. Entries are
// kept only until the token's own expiry, which bounds the set by the
// refresh TTL.
type ITokenDenylist interface {
	Consume(jti string, expiresAt time.Time) bool
}

// TokenDenylist implements ITokenDenylist in memory.
type TokenDenylist struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

// NewTokenDenylist creates an empty TokenDenylist.
func NewTokenDenylist() *TokenDenylist {
	return &TokenDenylist{tokens: make(map[string]time.Time)}
}

// Consume records a token id until the given expiry and reports whether
// this call was the one that recorded it. The presence check and the
// insert share one lock acquisition, so of any number of concurrent
// calls with the same id exactly one gets true. Expired entries are
// swept on the same acquisition, which keeps the set bounded by the
// refresh tokens issued within one refresh TTL.
func (d *TokenDenylist) Consume(jti string, expiresAt time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	for id, expiry := range d.tokens {
		if now.After(expiry) {
			delete(d.tokens, id)
		}
	}

	if _, exists := d.tokens[jti]; exists {
		return false
	}

	d.tokens[jti] = expiresAt
	return true
}
