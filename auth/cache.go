package auth

import "velour/rdx"

// tokenHash is the Redis hash holding the latest issued token per account.
const tokenHash = "tokki"

// TokenCache keeps the issued token per account so logout can drop the
// cached copy. Best effort: callers log failures and carry on.
type TokenCache interface {
	Put(userID, token string) error
	Drop(userID string) error
}

type redisTokenCache struct{}

// NewRedisTokenCache returns a TokenCache backed by the shared Redis
// connection.
func NewRedisTokenCache() TokenCache {
	return redisTokenCache{}
}

func (redisTokenCache) Put(userID, token string) error {
	return rdx.RdxHset(tokenHash, userID, token)
}

func (redisTokenCache) Drop(userID string) error {
	_, err := rdx.RdxHdel(tokenHash, userID)
	return err
}
