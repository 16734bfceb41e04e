package credential

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUser     = "user123"
	testDefault  = "password123"
	sha256OfTest = "ef92b778bafe771e89245b89ecbc08a44a4e166c06659911881f383d4473e94f"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "credentials.json")
	return NewStore(Options{Path: path, UserID: testUser, DefaultPassword: testDefault}), path
}

func readEntries(t *testing.T, path string) map[string]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries map[string]string
	require.NoError(t, json.Unmarshal(data, &entries))
	return entries
}

func TestSHA256Hasher(t *testing.T) {
	h := SHA256Hasher{}
	digest, err := h.Hash(testDefault)
	require.NoError(t, err)
	assert.Equal(t, sha256OfTest, digest)
	assert.True(t, h.Compare(digest, testDefault))
	assert.False(t, h.Compare(digest, "password124"))
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: 4}
	digest, err := h.Hash("NewPassword123")
	require.NoError(t, err)
	assert.NotEqual(t, "NewPassword123", digest)
	assert.True(t, h.Compare(digest, "NewPassword123"))
	assert.False(t, h.Compare(digest, "NewPassword124"))
}

func TestNewHasher(t *testing.T) {
	h, err := NewHasher("", 0)
	require.NoError(t, err)
	assert.IsType(t, SHA256Hasher{}, h)

	h, err = NewHasher(" BCRYPT ", 5)
	require.NoError(t, err)
	assert.Equal(t, BcryptHasher{Cost: 5}, h)

	_, err = NewHasher("md5", 0)
	assert.Error(t, err)
}

func TestStore_EnsureInitializedCreatesDefault(t *testing.T) {
	s, path := newTestStore(t)
	require.NoError(t, s.EnsureInitialized(context.Background()))

	assert.Equal(t, map[string]string{testUser: sha256OfTest}, readEntries(t, path))

	ok, err := s.Verify(context.Background(), testDefault)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_EnsureInitializedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)
	require.NoError(t, s.EnsureInitialized(ctx))
	_, err := s.Reset(ctx, "NewPassword123")
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.EnsureInitialized(ctx))
	}

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStore_EnsureInitializedRepairsCorruptFile(t *testing.T) {
	for name, content := range map[string]string{
		"garbage": "not json at all",
		"array":   `["user123"]`,
		"null":    "null",
	} {
		t.Run(name, func(t *testing.T) {
			s, path := newTestStore(t)
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			require.NoError(t, s.EnsureInitialized(context.Background()))
			assert.Equal(t, map[string]string{testUser: sha256OfTest}, readEntries(t, path))
		})
	}
}

func TestStore_ResetPolicyViolationsDoNotTouchStorage(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)
	require.NoError(t, s.EnsureInitialized(ctx))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	tests := map[string]string{
		"short":        "Password must be at least 8 characters long",
		"lowercase123": "Password must contain at least one uppercase letter",
		"UPPERCASE123": "Password must contain at least one lowercase letter",
		"NoNumbers":    "Password must contain at least one number",
	}
	for password, wantMsg := range tests {
		res, err := s.Reset(ctx, password)
		require.NoError(t, err)
		assert.False(t, res.Valid, password)
		assert.Equal(t, wantMsg, res.Message, password)
	}

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStore_ResetReplacesDigest(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	require.NoError(t, s.EnsureInitialized(ctx))

	res, err := s.Reset(ctx, "NewPassword123")
	require.NoError(t, err)
	assert.True(t, res.Valid)

	ok, err := s.Verify(ctx, "NewPassword123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Verify(ctx, testDefault)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_ResetPreservesOtherUsers(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{"user123":"old","admin":"keep-me"}`), 0o600))

	_, err := s.Reset(ctx, "SecurePass2025!")
	require.NoError(t, err)

	entries := readEntries(t, path)
	assert.Equal(t, "keep-me", entries["admin"])
	assert.NotEqual(t, "old", entries[testUser])
	assert.Len(t, entries, 2)
}

func TestStore_ResetOnCorruptFileFallsBackToSingleEntry(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{"admin":`), 0o600))

	_, err := s.Reset(ctx, "NewPassword123")
	require.NoError(t, err)

	entries := readEntries(t, path)
	assert.Len(t, entries, 1)
	assert.Contains(t, entries, testUser)
}

func TestStore_ConfigurableUserIdentity(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "credentials.json")
	s := NewStore(Options{Path: path, UserID: "jane", DefaultPassword: testDefault, Hasher: BcryptHasher{Cost: 4}})

	require.NoError(t, s.EnsureInitialized(ctx))
	entries := readEntries(t, path)
	require.Contains(t, entries, "jane")
	assert.NotEqual(t, sha256OfTest, entries["jane"])

	ok, err := s.Verify(ctx, testDefault)
	require.NoError(t, err)
	assert.True(t, ok)
}
