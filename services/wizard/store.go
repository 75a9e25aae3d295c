// File: services/wizard/store.go
package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"meishimail/models"
	"meishimail/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for unknown or expired session IDs.
var ErrSessionNotFound = errors.New("wizard session not found")

// SessionStore holds wizard sessions for their (short) lifetime. Sessions are
// transient by design: expiry is the only cleanup, and nothing survives it.
type SessionStore interface {
	Create(ctx context.Context) (*models.WizardSession, error)
	Get(ctx context.Context, id string) (*models.WizardSession, error)
	Save(ctx context.Context, sess *models.WizardSession) error
	Delete(ctx context.Context, id string) error
}

func newSession() *models.WizardSession {
	return &models.WizardSession{
		ID:              uuid.NewString(),
		MyProgress:      models.SingleFront,
		PartnerProgress: models.SingleFront,
		CreatedAt:       time.Now().UTC(),
	}
}

// RedisSessionStore keeps sessions as JSON blobs under a TTL that is
// refreshed on every save.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Create(ctx context.Context) (*models.WizardSession, error) {
	sess := newSession()
	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.WizardSession, error) {
	key := utils.SessionCachePrefix + id
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess models.WizardSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *models.WizardSession) error {
	key := utils.SessionCachePrefix + sess.ID
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, utils.SessionCachePrefix+id).Err()
}

// MemorySessionStore is a mutex-guarded in-process store. The wizard state
// is shared mutable data, so concurrent handlers must serialize through the
// lock here rather than assume single-threaded execution.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.WizardSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.WizardSession)}
}

func (s *MemorySessionStore) Create(ctx context.Context) (*models.WizardSession, error) {
	sess := newSession()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = cloneSession(sess)
	return sess, nil
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*models.WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cloneSession(sess), nil
}

func (s *MemorySessionStore) Save(ctx context.Context, sess *models.WizardSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = cloneSession(sess)
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// cloneSession deep-copies via the JSON codec so callers never share slices
// or record pointers with the stored copy. Same round-trip the Redis store
// performs.
func cloneSession(sess *models.WizardSession) *models.WizardSession {
	b, err := json.Marshal(sess)
	if err != nil {
		cp := *sess
		return &cp
	}
	var out models.WizardSession
	if err := json.Unmarshal(b, &out); err != nil {
		cp := *sess
		return &cp
	}
	return &out
}
