package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrDraftNotFound   = errors.New("draft not found")
	ErrCacheMiss       = errors.New("cache miss")
)

type Client struct {
	rdb *redis.Client
}

type SessionData struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
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

// NewClient wraps an existing connection.
func NewClient(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

// Session management
func (c *Client) SetSession(ctx context.Context, sessionID string, data *SessionData, ttl time.Duration) error {
	return c.setJSON(ctx, sessionKey(sessionID), data, ttl)
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	var session SessionData
	if err := c.getJSON(ctx, sessionKey(sessionID), &session); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	return c.rdb.Del(ctx, sessionKey(sessionID)).Err()
}

// Draft storage. Drafts are scoped to the session that opened them.
func (c *Client) SetDraft(ctx context.Context, sessionID, draftID string, value interface{}, ttl time.Duration) error {
	return c.setJSON(ctx, draftKey(sessionID, draftID), value, ttl)
}

func (c *Client) GetDraft(ctx context.Context, sessionID, draftID string, dest interface{}) error {
	if err := c.getJSON(ctx, draftKey(sessionID, draftID), dest); err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrDraftNotFound
		}
		return fmt.Errorf("failed to get draft: %w", err)
	}
	return nil
}

func (c *Client) DeleteDraft(ctx context.Context, sessionID, draftID string) error {
	return c.rdb.Del(ctx, draftKey(sessionID, draftID)).Err()
}

// Read-through cache
func (c *Client) SetCache(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.setJSON(ctx, key, value, ttl)
}

func (c *Client) GetCache(ctx context.Context, key string, dest interface{}) error {
	if err := c.getJSON(ctx, key, dest); err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get cache %s: %w", key, err)
	}
	return nil
}

// Generation returns the counter stored at key, 0 when unset.
func (c *Client) Generation(ctx context.Context, key string) (int64, error) {
	gen, err := c.rdb.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get generation %s: %w", key, err)
	}
	return gen, nil
}

// BumpGeneration increments the counter at key. Cache entries tagged with
// an older generation are never read again and expire on their own.
func (c *Client) BumpGeneration(ctx context.Context, key string) (int64, error) {
	return c.rdb.Incr(ctx, key).Result()
}

func (c *Client) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return c.rdb.Set(ctx, key, jsonData, ttl).Err()
}

func (c *Client) getJSON(ctx context.Context, key string, dest interface{}) error {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func draftKey(sessionID, draftID string) string {
	return fmt.Sprintf("draft:%s:%s", sessionID, draftID)
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
