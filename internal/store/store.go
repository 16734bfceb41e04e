// Package store persists support records as ordered collections of JSON
// documents and hands out prefix-coded identifiers for them.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/support-assistant/internal/domain"
)

// ErrStorage is wrapped by every persistence failure surfaced to callers.
var ErrStorage = errors.New("storage error")

// Collection is the durable backend of one record type. Implementations
// return documents in insertion order and treat a missing collection as empty.
type Collection interface {
	EnsureExists(ctx context.Context) error
	ReadAll(ctx context.Context) ([]json.RawMessage, error)
	Append(ctx context.Context, id string, doc json.RawMessage) error
}

// FormatIdentifier renders prefix-NNNNN.
func FormatIdentifier(prefix string, n int) string {
	return fmt.Sprintf("%s-%05d", prefix, n)
}

// RecordStore is a typed view over a Collection. Identifier generation and
// append share one lock so concurrent callers never receive the same id.
type RecordStore[T domain.Record] struct {
	mu         sync.Mutex
	prefix     string
	collection Collection
	logger     *zap.Logger
}

// NewRecordStore wraps collection for records identified by prefix.
func NewRecordStore[T domain.Record](prefix string, collection Collection, logger *zap.Logger) *RecordStore[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordStore[T]{
		prefix:     prefix,
		collection: collection,
		logger:     logger.With(zap.String("collection", prefix)),
	}
}

// Prefix returns the identifier prefix of this store.
func (s *RecordStore[T]) Prefix() string { return s.prefix }

// EnsureExists creates the backing collection when absent. Existing content is
// never touched.
func (s *RecordStore[T]) EnsureExists(ctx context.Context) error {
	if err := s.collection.EnsureExists(ctx); err != nil {
		return fmt.Errorf("%w: ensure %s collection: %v", ErrStorage, s.prefix, err)
	}
	return nil
}

// NextIdentifier returns the identifier the next appended record would get.
// Read failures fall back to the first identifier instead of failing.
func (s *RecordStore[T]) NextIdentifier(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextIdentifier(ctx)
}

func (s *RecordStore[T]) nextIdentifier(ctx context.Context) string {
	docs, err := s.collection.ReadAll(ctx)
	if err != nil {
		s.logger.Warn("read collection for identifier failed; restarting sequence", zap.Error(err))
		return FormatIdentifier(s.prefix, 1)
	}
	return FormatIdentifier(s.prefix, len(docs)+1)
}

// Append persists record at the end of the collection.
func (s *RecordStore[T]) Append(ctx context.Context, record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.append(ctx, record)
}

func (s *RecordStore[T]) append(ctx context.Context, record T) error {
	doc, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrStorage, record.RecordID(), err)
	}
	if err := s.collection.Append(ctx, record.RecordID(), doc); err != nil {
		return fmt.Errorf("%w: append %s: %v", ErrStorage, record.RecordID(), err)
	}
	return nil
}

// Create assigns the next identifier, builds the record with it and appends
// it in one critical section.
func (s *RecordStore[T]) Create(ctx context.Context, build func(id string) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := build(s.nextIdentifier(ctx))
	if err := s.append(ctx, record); err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

// All decodes every record in insertion order.
func (s *RecordStore[T]) All(ctx context.Context) ([]T, error) {
	docs, err := s.collection.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s collection: %v", ErrStorage, s.prefix, err)
	}
	records := make([]T, 0, len(docs))
	for i, doc := range docs {
		var record T
		if err := json.Unmarshal(doc, &record); err != nil {
			return nil, fmt.Errorf("%w: decode %s record %d: %v", ErrStorage, s.prefix, i, err)
		}
		records = append(records, record)
	}
	return records, nil
}
