package api

import (
	"context"
	"errors"
	"net/http"

	"zealvibe/catalog-api/db"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// catalogStore is the slice of db.Store the shared endpoints need
type catalogStore[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	SetField(ctx context.Context, id, field string, value any) error
	Delete(ctx context.Context, id string) error
}

// catalog bundles the read/toggle/delete endpoints shared by all three
// collections. The editors differ per schema but everything else is
// one implementation parameterized by record type
type catalog[T any] struct {
	// Shown in not-found messages, e.g. "Affirmation not found"
	name  string
	store catalogStore[T]
}

func (h *catalog[T]) fetchAll(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	items, err := h.store.FindAll(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch collection", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *catalog[T]) fetchOne(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	item, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     h.name + " not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch record", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, item)
}

type toggleBody struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// toggleActive persists only the isActive field and leaves every other
// field of the record untouched
func (h *catalog[T]) toggleActive(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data toggleBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	err := h.store.SetField(c.Request.Context(), c.Param("id"), "isActive", *data.IsActive)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     h.name + " not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to update",
			"requestID": requestID,
		})

		zap.L().Error("Failed to toggle record", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.Status(http.StatusOK)
}

// remove deletes immediately and irreversibly. Confirmation prompts
// are the client's job
func (h *catalog[T]) remove(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     h.name + " not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to delete",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete record", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.Status(http.StatusOK)
}
