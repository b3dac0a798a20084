package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Malformed IDs must map to not-found instead of leaking a driver
// error, and must never reach the database
func TestStore_MalformedID(t *testing.T) {
	s := &Store[struct{}]{}
	ctx := context.Background()

	_, err := s.FindByID(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Replace(ctx, "", &struct{}{}), ErrNotFound)
	assert.ErrorIs(t, s.SetField(ctx, "xyz", "isActive", true), ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "123"), ErrNotFound)
}
