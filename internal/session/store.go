package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/example/giro-certo-ops/internal/models"
)

// Record is what survives a console restart: the platform bearer token and
// the user it belongs to, keyed by session id. This is the server-side
// analog of the browser's local key-value store.
type Record struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Store persists session records. Implementations must treat a missing key
// as (zero, false, nil), not an error.
type Store interface {
	Save(ctx context.Context, sid string, rec Record) error
	Load(ctx context.Context, sid string) (Record, bool, error)
	Delete(ctx context.Context, sid string) error
}

type MemoryStore struct {
	mu   sync.RWMutex
	recs map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{recs: make(map[string]Record)}
}

func (m *MemoryStore) Save(_ context.Context, sid string, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs[sid] = rec
	return nil
}

func (m *MemoryStore) Load(_ context.Context, sid string) (Record, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.recs[sid]
	return rec, ok, nil
}

func (m *MemoryStore) Delete(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.recs, sid)
	return nil
}

// RedisStore keeps session records in Redis with a TTL so abandoned
// sessions age out on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr, password string, ttl time.Duration) *RedisStore {
	c := redis.NewClient(&redis.Options{Addr: addr, Password: password})
	return &RedisStore{client: c, ttl: ttl}
}

func (r *RedisStore) Save(ctx context.Context, sid string, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(sid), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context, sid string) (Record, bool, error) {
	data, err := r.client.Get(ctx, sessionKey(sid)).Bytes()
	if err == redis.Nil {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("session load: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, false, fmt.Errorf("session decode: %w", err)
	}
	return rec, true, nil
}

func (r *RedisStore) Delete(ctx context.Context, sid string) error {
	if err := r.client.Del(ctx, sessionKey(sid)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func sessionKey(sid string) string { return "ops:session:" + sid }
