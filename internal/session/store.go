package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/wahe7/book-slots/internal/entity"
)

// Session is the server-side admin session. It replaces the old durable
// client-side admin flag: the id travels in a cookie, the state lives here
// and expires with the store TTL.
type Session struct {
	ID         string    `json:"id"`
	AdminName  string    `json:"admin_name"`
	AdminEmail string    `json:"admin_email"`
	CreatedAt  time.Time `json:"created_at"`
}

type Store interface {
	Create(ctx context.Context, adminName, adminEmail string) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("admin_session:%s", id)
}

func (s *redisStore) Create(ctx context.Context, adminName, adminEmail string) (*Session, error) {
	sess := &Session{
		ID:         uuid.NewString(),
		AdminName:  adminName,
		AdminEmail: adminEmail,
		CreatedAt:  time.Now().UTC(),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, sessionKey(sess.ID), data, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

func (s *redisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, entity.ErrSessionNotFound
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
