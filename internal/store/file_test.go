package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFileCollection_EnsureExistsCreatesEmptyArray(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "escalations.json")
	c := NewFileCollection(path, nil)

	require.NoError(t, c.EnsureExists(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestFileCollection_EnsureExistsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tickets.json")
	c := NewFileCollection(path, nil)

	require.NoError(t, c.EnsureExists(ctx))
	require.NoError(t, c.Append(ctx, "TKT-00001", json.RawMessage(`{"ticket_id":"TKT-00001"}`)))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, c.EnsureExists(ctx))
	}

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestFileCollection_EnsureExistsKeepsCorruptContent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "feedback.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	c := NewFileCollection(path, nil)
	require.NoError(t, c.EnsureExists(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestFileCollection_ReadAllMissingFile(t *testing.T) {
	c := NewFileCollection(filepath.Join(t.TempDir(), "absent.json"), nil)

	docs, err := c.ReadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestFileCollection_CorruptFileReadsEmptyAndIsReinitialized(t *testing.T) {
	tests := map[string]string{
		"garbage":   "{not json",
		"object":    `{"ticket_id":"TKT-00001"}`,
		"null":      "null",
		"truncated": `[{"ticket_id":"TKT-00001"`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "tickets.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			core, logs := observer.New(zapcore.WarnLevel)
			c := NewFileCollection(path, zap.New(core))

			docs, err := c.ReadAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, docs)

			require.NoError(t, c.Append(ctx, "TKT-00001", json.RawMessage(`{"ticket_id":"TKT-00001"}`)))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.JSONEq(t, `[{"ticket_id":"TKT-00001"}]`, string(data))

			if name != "null" {
				assert.NotZero(t, logs.FilterMessage("collection file corrupted; treating as empty").Len())
			}
		})
	}
}

func TestFileCollection_AppendPreservesOrder(t *testing.T) {
	ctx := context.Background()
	c := NewFileCollection(filepath.Join(t.TempDir(), "tickets.json"), nil)

	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, c.Append(ctx, id, json.RawMessage(`{"id":"`+id+`"}`)))
	}

	docs, err := c.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.JSONEq(t, `{"id":"A"}`, string(docs[0]))
	assert.JSONEq(t, `{"id":"C"}`, string(docs[2]))
}

func TestWriteFileAtomic_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")

	require.NoError(t, WriteFileAtomic(path, []byte(`{"a":"b"}`), 0o600))
	require.NoError(t, WriteFileAtomic(path, []byte(`{"a":"c"}`), 0o600))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "credentials.json", entries[0].Name())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":"c"}`, string(data))
}

func TestFileCollection_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewFileCollection(filepath.Join(t.TempDir(), "tickets.json"), nil)
	_, err := c.ReadAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
