package api

import (
	"errors"
	"net/http"
	"time"

	"zealvibe/catalog-api/db"
	"zealvibe/catalog-api/model"
	"zealvibe/catalog-api/service"
	"zealvibe/catalog-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type videoForm struct {
	Title        string `form:"title" binding:"required"`
	Description  string `form:"description" binding:"required"`
	Category     string `form:"category" binding:"required"`
	Likes        int    `form:"likes" binding:"gte=0"`
	Views        int    `form:"views" binding:"gte=0"`
	IsActive     *bool  `form:"isActive"`
	Tags         string `form:"tags"`
	VideoURL     string `form:"videoUrl"`
	ThumbnailURL string `form:"thumbnailUrl"`
}

// VideoSave handles create and full update of one video record. The
// staged video file uploads before the thumbnail; any upload failure
// aborts the save with no database write
func (a *API) VideoSave(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id := c.Param("id")
	isNew := id == "" || id == "new"

	var data videoForm
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Title, description and category are required",
			"requestID": requestID,
		})
		return
	}

	if !model.ValidCategory(model.VideoCategories, data.Category) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid category",
			"requestID": requestID,
		})
		return
	}

	videoFh, _ := c.FormFile("video")
	thumbFh, _ := c.FormFile("thumbnail")

	if videoFh != nil {
		if code, err := validators.UploadValidator(videoFh, "video/"); err != nil {
			c.AbortWithStatusJSON(code, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
	}

	if thumbFh != nil {
		if code, err := validators.UploadValidator(thumbFh, "image/"); err != nil {
			c.AbortWithStatusJSON(code, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
	}

	var existing *model.Video
	if !isNew {
		var err error

		existing, err = a.Videos.FindByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
					"error":     "Video not found",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to fetch video", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	urls, err := service.UploadAssets(c.Request.Context(), a.S3, []service.Asset{
		{Kind: "video", Subpath: "videos", File: videoFh},
		{Kind: "thumbnail", Subpath: "videos/thumbnails", File: thumbFh},
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})

		zap.L().Error("Upload failed", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	videoURL := data.VideoURL
	thumbnailURL := data.ThumbnailURL
	if existing != nil {
		if videoURL == "" {
			videoURL = existing.VideoURL
		}
		if thumbnailURL == "" {
			thumbnailURL = existing.ThumbnailURL
		}
	}
	if u, ok := urls["video"]; ok {
		videoURL = u
	}
	if u, ok := urls["thumbnail"]; ok {
		thumbnailURL = u
	}

	// A brand new record may be saved before its video upload, but an
	// existing one must keep a resolvable URL
	if !isNew && videoURL == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Video file is required",
			"requestID": requestID,
		})
		return
	}

	isActive := true
	if data.IsActive != nil {
		isActive = *data.IsActive
	}

	now := time.Now().UTC()
	item := model.Video{
		Title:        data.Title,
		Description:  data.Description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Category:     data.Category,
		Likes:        data.Likes,
		Views:        data.Views,
		IsActive:     isActive,
		Tags:         model.ParseTags(data.Tags),
	}

	if isNew {
		item.Stamp(now, true)

		newID, err := a.Videos.Insert(c.Request.Context(), &item)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Failed to save",
				"requestID": requestID,
			})

			zap.L().Error("Failed to insert video", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": newID})
		return
	}

	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	item.Stamp(now, false)

	if err := a.Videos.Replace(c.Request.Context(), id, &item); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to save",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update video", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, item)
}
