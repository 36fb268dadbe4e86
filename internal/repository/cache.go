package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/parishtools/attendance-register/internal/model"
)

// Cache keys, one per ledger.  A save deletes its ledger's key so the
// next read always reflects the write.
const (
	keyAttendance = "ledger:attendance"
	keyMembers    = "ledger:members"
	keyAbsences   = "ledger:absences"
)

// CachedStore wraps another Store with a short-lived Redis read cache.
// Loads are served from Redis when a fresh copy exists; otherwise the
// inner store is read and the result cached with a fixed TTL.  Every
// mutation invalidates the ledger's key immediately.  Redis failures are
// logged and degrade to uncached reads, never to request failures.
type CachedStore struct {
	inner Store
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedStore wraps inner with a Redis cache.  When rdb is nil or ttl
// is not positive the inner store is returned unchanged.
func NewCachedStore(inner Store, rdb *redis.Client, ttl time.Duration) Store {
	if rdb == nil || ttl <= 0 {
		return inner
	}
	return &CachedStore{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheGet[T any](ctx context.Context, rdb *redis.Client, key string) ([]T, bool) {
	bs, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var out []T
	if err := json.Unmarshal(bs, &out); err != nil {
		return nil, false
	}
	return out, true
}

func cacheSet[T any](ctx context.Context, rdb *redis.Client, key string, rows []T, ttl time.Duration) {
	bs, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := rdb.SetEx(ctx, key, bs, ttl).Err(); err != nil {
		log.Printf("cache: set %s failed: %v", key, err)
	}
}

func (s *CachedStore) invalidate(ctx context.Context, key string) {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		log.Printf("cache: invalidate %s failed: %v", key, err)
	}
}

func (s *CachedStore) LoadAttendance(ctx context.Context) ([]model.AttendanceRecord, error) {
	if rows, ok := cacheGet[model.AttendanceRecord](ctx, s.rdb, keyAttendance); ok {
		return rows, nil
	}
	rows, err := s.inner.LoadAttendance(ctx)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, s.rdb, keyAttendance, rows, s.ttl)
	return rows, nil
}

func (s *CachedStore) SaveAttendance(ctx context.Context, rows []model.AttendanceRecord) error {
	if err := s.inner.SaveAttendance(ctx, rows); err != nil {
		return err
	}
	s.invalidate(ctx, keyAttendance)
	return nil
}

func (s *CachedStore) LoadMembers(ctx context.Context) ([]model.Member, error) {
	if rows, ok := cacheGet[model.Member](ctx, s.rdb, keyMembers); ok {
		return rows, nil
	}
	rows, err := s.inner.LoadMembers(ctx)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, s.rdb, keyMembers, rows, s.ttl)
	return rows, nil
}

func (s *CachedStore) SaveMembers(ctx context.Context, rows []model.Member) error {
	if err := s.inner.SaveMembers(ctx, rows); err != nil {
		return err
	}
	s.invalidate(ctx, keyMembers)
	return nil
}

func (s *CachedStore) LoadAbsences(ctx context.Context) ([]model.AbsenceNote, error) {
	if rows, ok := cacheGet[model.AbsenceNote](ctx, s.rdb, keyAbsences); ok {
		return rows, nil
	}
	rows, err := s.inner.LoadAbsences(ctx)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, s.rdb, keyAbsences, rows, s.ttl)
	return rows, nil
}

func (s *CachedStore) SaveAbsences(ctx context.Context, rows []model.AbsenceNote) error {
	if err := s.inner.SaveAbsences(ctx, rows); err != nil {
		return err
	}
	s.invalidate(ctx, keyAbsences)
	return nil
}
