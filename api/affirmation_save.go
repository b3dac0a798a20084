package api

import (
	"errors"
	"net/http"
	"time"

	"zealvibe/catalog-api/db"
	"zealvibe/catalog-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type affirmationBody struct {
	Text      string   `json:"text" binding:"required"`
	Category  string   `json:"category" binding:"required"`
	IsActive  *bool    `json:"isActive"`
	ViewCount int      `json:"viewCount" binding:"gte=0"`
	Tags      []string `json:"tags"`
}

// AffirmationSave handles both create (POST, no id) and full update
// (PUT with id)
func (a *API) AffirmationSave(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id := c.Param("id")
	isNew := id == "" || id == "new"

	var data affirmationBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Text and category are required",
			"requestID": requestID,
		})
		return
	}

	if !model.ValidCategory(model.AffirmationCategories, data.Category) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid category",
			"requestID": requestID,
		})
		return
	}

	isActive := true
	if data.IsActive != nil {
		isActive = *data.IsActive
	}

	now := time.Now().UTC()
	item := model.Affirmation{
		Text:      data.Text,
		Category:  data.Category,
		IsActive:  isActive,
		ViewCount: data.ViewCount,
		Tags:      data.Tags,
	}

	if isNew {
		item.Stamp(now, true)

		newID, err := a.Affirmations.Insert(c.Request.Context(), &item)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Failed to save",
				"requestID": requestID,
			})

			zap.L().Error("Failed to insert affirmation", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": newID})
		return
	}

	existing, err := a.Affirmations.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Affirmation not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch affirmation", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	item.Stamp(now, false)

	if err := a.Affirmations.Replace(c.Request.Context(), id, &item); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to save",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update affirmation", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, item)
}
