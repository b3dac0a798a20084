package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStamp(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	a := Affirmation{}
	a.Stamp(created, true)
	assert.Equal(t, created, a.CreatedAt)
	assert.Equal(t, created, a.UpdatedAt)

	a.Stamp(updated, false)
	assert.Equal(t, created, a.CreatedAt, "createdAt never changes after the first save")
	assert.Equal(t, updated, a.UpdatedAt)
}
