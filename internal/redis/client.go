package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

// RoleInfo is the cached shape of a role lookup. Aggregate statistics are
// never cached; only the identity link between a login email and its rep
// record is, since it changes rarely and is hit on every dashboard load.
type RoleInfo struct {
	Role     string  `json:"role"`
	Name     string  `json:"name"`
	CloserID *string `json:"closer_id,omitempty"`
	SetterID *string `json:"setter_id,omitempty"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func roleKey(email string) string {
	return "role:" + strings.ToLower(email)
}

func (c *Client) SetUserRole(email string, info *RoleInfo, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal role info: %w", err)
	}

	return c.rdb.Set(ctx, roleKey(email), jsonData, ttl).Err()
}

func (c *Client) GetUserRole(email string) (*RoleInfo, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, roleKey(email)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role info: %w", err)
	}

	var info RoleInfo
	if err := json.Unmarshal([]byte(val), &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal role info: %w", err)
	}

	return &info, nil
}

// DeleteUserRole drops the cached lookup after a user is changed or removed.
func (c *Client) DeleteUserRole(email string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, roleKey(email)).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
