// Package credential manages the password digest of the assistant's single
// account.
package credential

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/support-assistant/internal/store"
	"github.com/spec-kit/support-assistant/internal/validation"
)

const credentialFilePerm = 0o600

// Store keeps a {user_id: digest} mapping in a JSON file.
type Store struct {
	mu              sync.Mutex
	path            string
	userID          string
	defaultPassword string
	hasher          Hasher
	logger          *zap.Logger
}

// Options configures a Store.
type Options struct {
	Path            string
	UserID          string
	DefaultPassword string
	Hasher          Hasher
	Logger          *zap.Logger
}

// NewStore builds a credential store. It does not touch the filesystem.
func NewStore(opts Options) *Store {
	if opts.Hasher == nil {
		opts.Hasher = SHA256Hasher{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Store{
		path:            opts.Path,
		userID:          opts.UserID,
		defaultPassword: opts.DefaultPassword,
		hasher:          opts.Hasher,
		logger:          opts.Logger.With(zap.String("path", opts.Path)),
	}
}

// UserID returns the managed account.
func (s *Store) UserID() string { return s.userID }

// EnsureInitialized writes the default credential when the file is missing or
// unparsable. A readable file is left as is.
func (s *Store) EnsureInitialized(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.load()
	if err == nil {
		return nil
	}
	if !replaceable(err) {
		return err
	}
	entries, err := s.defaultEntries()
	if err != nil {
		return err
	}
	return s.save(entries)
}

// Reset replaces the account's digest when newPassword satisfies the policy.
// A policy violation is reported through the result and leaves storage alone.
func (s *Store) Reset(ctx context.Context, newPassword string) (validation.PolicyResult, error) {
	policy := validation.CheckPasswordPolicy(newPassword)
	if !policy.Valid {
		return policy, nil
	}
	if err := ctx.Err(); err != nil {
		return policy, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		if !replaceable(err) {
			return policy, err
		}
		s.logger.Warn("credential file unreadable; resetting to default entry", zap.Error(err))
		if entries, err = s.defaultEntries(); err != nil {
			return policy, err
		}
	}

	digest, err := s.hasher.Hash(newPassword)
	if err != nil {
		return policy, fmt.Errorf("%w: hash password: %v", store.ErrStorage, err)
	}
	entries[s.userID] = digest

	if err := s.save(entries); err != nil {
		return policy, err
	}
	s.logger.Info("password reset", zap.String("user_id", s.userID))
	return policy, nil
}

// Verify reports whether password matches the stored digest.
func (s *Store) Verify(ctx context.Context, password string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return false, err
	}
	digest, ok := entries[s.userID]
	if !ok {
		return false, nil
	}
	return s.hasher.Compare(digest, password), nil
}

var errCorrupt = errors.New("credential file corrupted")

func (s *Store) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: read credentials: %v", store.ErrStorage, err)
	}
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil || entries == nil {
		return nil, errCorrupt
	}
	return entries, nil
}

// replaceable reports whether a load error means the file may be rewritten
// from scratch.
func replaceable(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, errCorrupt)
}

func (s *Store) defaultEntries() (map[string]string, error) {
	digest, err := s.hasher.Hash(s.defaultPassword)
	if err != nil {
		return nil, fmt.Errorf("%w: hash default password: %v", store.ErrStorage, err)
	}
	return map[string]string{s.userID: digest}, nil
}

func (s *Store) save(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode credentials: %v", store.ErrStorage, err)
	}
	if err := store.WriteFileAtomic(s.path, data, credentialFilePerm); err != nil {
		return fmt.Errorf("%w: %v", store.ErrStorage, err)
	}
	return nil
}
