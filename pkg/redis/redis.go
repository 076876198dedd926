package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const revokedTokenPrefix = "revoked_token:"

// IRedis backs the logout flow: revoked session tokens are parked here
// until their natural expiry so the session guard can reject them.
type IRedis interface {
	RevokeToken(ctx context.Context, token string, until time.Time) error
	IsTokenRevoked(ctx context.Context, token string) (bool, error)
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func (r *redisClient) RevokeToken(ctx context.Context, token string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		// already expired, nothing to deny
		return nil
	}

	if err := r.client.Set(ctx, revokedTokenPrefix+token, "1", ttl).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error revoking token: %v", err))
		return err
	}
	return nil
}

func (r *redisClient) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	_, err := r.client.Get(ctx, revokedTokenPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		logrus.Error(fmt.Sprintf("Error checking revoked token: %v", err))
		return false, err
	}
	return true, nil
}
