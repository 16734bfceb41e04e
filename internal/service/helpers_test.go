package service

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/support-assistant/internal/domain"
	"github.com/spec-kit/support-assistant/internal/events"
	"github.com/spec-kit/support-assistant/internal/store"
)

var errDiskFull = errors.New("disk full")

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// brokenCollection fails every append.
type brokenCollection struct {
	*store.MemoryCollection
}

func (brokenCollection) Append(context.Context, string, json.RawMessage) error {
	return errDiskFull
}

func newFileStore[T domain.Record](t *testing.T, prefix, name string) (*store.RecordStore[T], string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name+".json")
	s := store.NewRecordStore[T](prefix, store.NewFileCollection(path, zap.NewNop()), zap.NewNop())
	require.NoError(t, s.EnsureExists(context.Background()))
	return s, path
}

func newBrokenStore[T domain.Record](prefix string) *store.RecordStore[T] {
	return store.NewRecordStore[T](prefix, brokenCollection{store.NewMemoryCollection()}, zap.NewNop())
}

// recorder captures published events.
type recorder struct {
	events []events.Event
}

func newRecorder(types ...events.EventType) (*recorder, events.Dispatcher) {
	r := &recorder{}
	d := events.NewInMemoryDispatcher()
	for _, typ := range types {
		d.Subscribe(typ, func(_ context.Context, e events.Event) error {
			r.events = append(r.events, e)
			return nil
		})
	}
	return r, d
}

func ptr[T any](v T) *T { return &v }
