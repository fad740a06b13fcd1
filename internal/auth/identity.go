package auth

import (
	"context"
	"time"
)

const RoleUser = "USER"

// Identity is the acting user of a request, taken from the session only.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// Claims are stored as the session value in redis.
type Claims struct {
	Sub       string `json:"sub"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"createdAt"`
}

func (c Claims) Identity() Identity {
	return Identity{UserID: c.Sub, Email: c.Email, Role: c.Role}
}

func (c Claims) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(time.Unix(c.CreatedAt, 0)) > ttl
}

type identityCtxKey struct{}

func ContextWithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(Identity)
	if !ok || identity.UserID == "" {
		return Identity{}, false
	}
	return identity, true
}
