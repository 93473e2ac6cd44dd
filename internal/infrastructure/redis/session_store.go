package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/srikanthravipati27/environment-hub/internal/domain/entity"
	"github.com/srikanthravipati27/environment-hub/internal/domain/repository"
)

const (
	fieldUser      = "user"
	fieldCreatedAt = "created_at"
)

func sessionKey(id string) string {
	return "session:" + id
}

// SessionStore keeps each session as a Redis hash with a fixed TTL.
type SessionStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *goredis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func (s *SessionStore) Create(ctx context.Context, userName string) (*entity.Session, error) {
	sess := &entity.Session{
		ID:        uuid.NewString(),
		UserName:  userName,
		CreatedAt: time.Now().UTC(),
	}
	key := sessionKey(sess.ID)
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, map[string]any{
		fieldUser:      sess.UserName,
		fieldCreatedAt: sess.CreatedAt.Format(time.RFC3339Nano),
	})
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	if id == "" {
		return nil, repository.ErrNotFound
	}
	data, err := s.rdb.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(data) == 0 {
		return nil, repository.ErrNotFound
	}
	sess := &entity.Session{ID: id, UserName: data[fieldUser]}
	if ts, err := time.Parse(time.RFC3339Nano, data[fieldCreatedAt]); err == nil {
		sess.CreatedAt = ts
	}
	return sess, nil
}

func (s *SessionStore) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.rdb.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

var _ repository.SessionStore = (*SessionStore)(nil)
