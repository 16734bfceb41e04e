package credential

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hasher derives and checks password digests.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(digest, password string) bool
}

const (
	SchemeSHA256 = "sha256"
	SchemeBcrypt = "bcrypt"
)

// NewHasher returns the hasher for scheme. An empty scheme selects SHA-256.
func NewHasher(scheme string, bcryptCost int) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", SchemeSHA256:
		return SHA256Hasher{}, nil
	case SchemeBcrypt:
		return BcryptHasher{Cost: bcryptCost}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// SHA256Hasher is a single unsalted SHA-256 pass rendered as hex. It keeps
// digests compatible with existing demo credential files and must not be used
// for real accounts.
type SHA256Hasher struct{}

// Hash implements Hasher.
func (SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// Compare implements Hasher.
func (h SHA256Hasher) Compare(digest, password string) bool {
	want, _ := h.Hash(password)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(want)) == 1
}

// BcryptHasher salts and stretches digests with bcrypt.
type BcryptHasher struct {
	Cost int
}

// Hash implements Hasher.
func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare implements Hasher.
func (BcryptHasher) Compare(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
