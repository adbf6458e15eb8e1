package loginguard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	maxFailures   = 5
	failureWindow = 15 * time.Minute
	lockDuration  = 30 * time.Minute
)

// Guard conta falhas de login por e-mail no Redis e bloqueia a conta
// temporariamente depois de muitas tentativas.
type Guard struct {
	client *redis.Client
}

func New(client *redis.Client) *Guard {
	return &Guard{client: client}
}

func NewClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
}

func failKey(email string) string {
	return fmt.Sprintf("login:fail:%s", email)
}

func lockKey(email string) string {
	return fmt.Sprintf("login:lock:%s", email)
}

func (g *Guard) IsLocked(ctx context.Context, email string) (bool, error) {
	n, err := g.client.Exists(ctx, lockKey(email)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RegisterFailure incrementa o contador e retorna true quando a conta
// acabou de ser bloqueada.
func (g *Guard) RegisterFailure(ctx context.Context, email string) (bool, error) {
	key := failKey(email)

	count, err := g.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		g.client.Expire(ctx, key, failureWindow)
	}

	if count < maxFailures {
		return false, nil
	}

	if err := g.client.Set(ctx, lockKey(email), "1", lockDuration).Err(); err != nil {
		return false, err
	}

	return true, nil
}

func (g *Guard) Reset(ctx context.Context, email string) error {
	return g.client.Del(ctx, failKey(email), lockKey(email)).Err()
}
