package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zealvibe/catalog-api/db"
	"zealvibe/catalog-api/middleware"
	"zealvibe/catalog-api/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type setCall struct {
	id    string
	field string
	value any
}

// fakeCatalogStore records every mutation so tests can assert exactly
// what a handler persisted
type fakeCatalogStore[T any] struct {
	setCalls   []setCall
	deleteIDs  []string
	setErr     error
	findAllErr error
}

func (f *fakeCatalogStore[T]) FindAll(ctx context.Context) ([]T, error) {
	return []T{}, f.findAllErr
}

func (f *fakeCatalogStore[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return nil, db.ErrNotFound
}

func (f *fakeCatalogStore[T]) SetField(ctx context.Context, id, field string, value any) error {
	f.setCalls = append(f.setCalls, setCall{id, field, value})
	return f.setErr
}

func (f *fakeCatalogStore[T]) Delete(ctx context.Context, id string) error {
	f.deleteIDs = append(f.deleteIDs, id)
	return nil
}

func newCatalogRouter(store catalogStore[model.Affirmation]) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.NewRequestIDMiddleware())

	h := &catalog[model.Affirmation]{name: "Affirmation", store: store}
	r.PATCH("/api/affirmations/:id/active", h.toggleActive)
	r.DELETE("/api/affirmations/:id", h.remove)

	return r
}

func TestToggleActive_PersistsOnlyIsActive(t *testing.T) {
	store := &fakeCatalogStore[model.Affirmation]{}
	r := newCatalogRouter(store)

	req := httptest.NewRequest("PATCH", "/api/affirmations/abc123/active", strings.NewReader(`{"isActive":false}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, store.setCalls, 1)
	assert.Equal(t, "abc123", store.setCalls[0].id)
	assert.Equal(t, "isActive", store.setCalls[0].field)
	assert.Equal(t, false, store.setCalls[0].value)
}

func TestToggleActive_MissingFieldRejected(t *testing.T) {
	store := &fakeCatalogStore[model.Affirmation]{}
	r := newCatalogRouter(store)

	req := httptest.NewRequest("PATCH", "/api/affirmations/abc123/active", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.setCalls)
}

func TestToggleActive_UnknownID(t *testing.T) {
	store := &fakeCatalogStore[model.Affirmation]{setErr: db.ErrNotFound}
	r := newCatalogRouter(store)

	req := httptest.NewRequest("PATCH", "/api/affirmations/abc123/active", strings.NewReader(`{"isActive":true}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Affirmation not found")
}

func TestRemove_DeletesByID(t *testing.T) {
	store := &fakeCatalogStore[model.Affirmation]{}
	r := newCatalogRouter(store)

	req := httptest.NewRequest("DELETE", "/api/affirmations/abc123", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"abc123"}, store.deleteIDs)
}
