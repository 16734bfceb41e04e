package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/support-assistant/internal/config"
	"github.com/spec-kit/support-assistant/internal/domain"
	"github.com/spec-kit/support-assistant/internal/service"
)

func testConfig(dir string, backend config.StorageBackend) *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{Backend: backend, DataDir: dir},
		Auth: config.AuthConfig{
			UserID:          "user123",
			UserName:        "John Doe",
			UserEmail:       "john.doe@example.com",
			DefaultPassword: "password123",
			PasswordScheme:  "sha256",
		},
		Redis: config.RedisConfig{AnswerTTLMinutes: 5},
	}
}

func TestNewFileBackendCreatesCollections(t *testing.T) {
	dir := t.TempDir()
	a, err := New(context.Background(), testConfig(dir, config.StorageFile), zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	for _, name := range []string{"tickets", "escalations", "feedback"} {
		data, err := os.ReadFile(filepath.Join(dir, name+".json"))
		require.NoError(t, err, name)
		assert.JSONEq(t, "[]", string(data), name)
	}
	_, err = os.Stat(filepath.Join(dir, "credentials.json"))
	assert.NoError(t, err)

	resp := a.Router.Dispatch(context.Background(), service.IntentTicket, service.Request{
		Subject:     "Login Issue",
		Description: "Cannot access my account",
	})
	assert.Equal(t, "TKT-00001", resp.RecordID)
}

func TestNewMemoryBackend(t *testing.T) {
	a, err := New(context.Background(), testConfig(t.TempDir(), config.StorageMemory), zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	resp := a.Services.Escalations.Handle(context.Background(), "Jane Smith", "5551234567", nil)
	assert.Equal(t, domain.ResponseSuccess, resp.Status)
	assert.Equal(t, "ESC-00001", resp.RecordID)
}

func TestNewRejectsUnknownPasswordScheme(t *testing.T) {
	cfg := testConfig(t.TempDir(), config.StorageMemory)
	cfg.Auth.PasswordScheme = "md5"
	_, err := New(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestNewPostgresBackendRequiresDSN(t *testing.T) {
	_, err := New(context.Background(), testConfig(t.TempDir(), config.StoragePostgres), zap.NewNop())
	assert.Error(t, err)
}
