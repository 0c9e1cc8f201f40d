package login_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/T-Tommy0909/ray-system/modules/login"
)

func TestMemoryDirectory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("authenticates added users", func(t *testing.T) {
		t.Parallel()
		dir := login.NewMemoryDirectory(bcrypt.MinCost)
		require.NoError(t, dir.Add(ctx, "User@Example.com", "secret"))

		assert.NoError(t, dir.Authenticate(ctx, "user@example.com", "secret"))
		assert.NoError(t, dir.Authenticate(ctx, "  USER@example.com ", "secret"))
		assert.ErrorIs(t, dir.Authenticate(ctx, "user@example.com", "wrong"), login.ErrInvalidCredentials)
		assert.ErrorIs(t, dir.Authenticate(ctx, "nobody@example.com", "secret"), login.ErrInvalidCredentials)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		t.Parallel()
		dir := login.NewMemoryDirectory(bcrypt.MinCost)
		require.NoError(t, dir.Add(ctx, "a@example.com", "x"))
		assert.ErrorIs(t, dir.Add(ctx, "A@example.com", "y"), login.ErrEmailAlreadyExists)
		assert.Equal(t, 1, dir.Len())
	})

	t.Run("seeds numbered admins", func(t *testing.T) {
		t.Parallel()
		dir := login.NewMemoryDirectory(bcrypt.MinCost)
		require.NoError(t, dir.Add(ctx, login.SeedEmail(2), "own"))
		require.NoError(t, dir.Seed(ctx, 3, "password"))

		assert.Equal(t, 3, dir.Len())
		assert.Equal(t, "seedadmin1@example.com", login.SeedEmail(1))
		assert.NoError(t, dir.Authenticate(ctx, login.SeedEmail(1), "password"))
		assert.NoError(t, dir.Authenticate(ctx, login.SeedEmail(3), "password"))
		assert.NoError(t, dir.Authenticate(ctx, login.SeedEmail(2), "own"), "existing users are kept")
	})

	t.Run("zero seed is a no-op", func(t *testing.T) {
		t.Parallel()
		dir := login.NewMemoryDirectory(bcrypt.MinCost)
		require.NoError(t, dir.Seed(ctx, 0, "password"))
		assert.Zero(t, dir.Len())
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		dir := login.NewMemoryDirectory(bcrypt.MinCost)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, dir.Authenticate(cctx, "a@example.com", "x"), context.Canceled)
	})
}
