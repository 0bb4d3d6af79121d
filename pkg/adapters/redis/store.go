package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/dfa/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix is the key namespace used when WithPrefix is not given.
const DefaultPrefix = "dfa:report:"

// Store implements ports.ReportStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for reports.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for reports.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the report to Redis and indexes it in a sorted set scored by creation time.
func (s *Store) Save(ctx context.Context, report *domain.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	created := report.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	score := float64(created.UnixMilli())

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(report.ID), data, s.ttl)
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: report.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the report from Redis.
func (s *Store) Load(ctx context.Context, id string) (*domain.Report, error) {
	val, err := s.client.Get(ctx, s.key(id)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var report domain.Report
	if err := json.Unmarshal([]byte(val), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

// Delete removes the report and its index entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(id))
	pipe.ZRem(ctx, s.indexKey(), id)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns the IDs of stored reports, oldest first.
// With a TTL, index entries older than the TTL are pruned before listing.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if s.ttl > 0 {
		cutoff := time.Now().Add(-s.ttl).UnixMilli()
		err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("(%d", cutoff)).Err()
		if err != nil {
			return nil, fmt.Errorf("failed to prune expired reports: %w", err)
		}
	}

	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return ids, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
