package login

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Authenticator checks a pair of credentials. Implementations return
// ErrInvalidCredentials for unknown users and wrong passwords alike.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) error
}

// MemoryDirectory is an in-memory Authenticator backed by bcrypt hashes,
// used for development and tests.
type MemoryDirectory struct {
	mu     sync.RWMutex
	hashes map[string][]byte
	cost   int
}

// NewMemoryDirectory creates an empty directory. Costs outside bcrypt's
// range fall back to bcrypt.DefaultCost.
func NewMemoryDirectory(cost int) *MemoryDirectory {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &MemoryDirectory{hashes: make(map[string][]byte), cost: cost}
}

// Add stores a user. Emails are compared case-insensitively.
func (d *MemoryDirectory) Add(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), d.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return d.put(ctx, normalizeEmail(email), hash)
}

// Seed adds seedadmin1@example.com through seedadmin{n}@example.com, all
// sharing one password. Existing users are kept.
func (d *MemoryDirectory) Seed(ctx context.Context, n int, password string) error {
	if n <= 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), d.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	for i := 1; i <= n; i++ {
		err := d.put(ctx, SeedEmail(i), hash)
		if err != nil && !errors.Is(err, ErrEmailAlreadyExists) {
			return err
		}
	}
	return nil
}

// SeedEmail returns the address of the i-th seeded user.
func SeedEmail(i int) string {
	return fmt.Sprintf("seedadmin%d@example.com", i)
}

func (d *MemoryDirectory) put(ctx context.Context, email string, hash []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.hashes[email]; ok {
		return ErrEmailAlreadyExists
	}
	d.hashes[email] = hash
	return nil
}

func (d *MemoryDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.hashes)
}

func (d *MemoryDirectory) Authenticate(ctx context.Context, email, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.RLock()
	hash, ok := d.hashes[normalizeEmail(email)]
	d.mu.RUnlock()
	if !ok {
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
