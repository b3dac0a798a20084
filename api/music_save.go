package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"zealvibe/catalog-api/db"
	"zealvibe/catalog-api/model"
	"zealvibe/catalog-api/service"
	"zealvibe/catalog-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type musicForm struct {
	Title     string `form:"title" binding:"required"`
	Artist    string `form:"artist" binding:"required"`
	Category  string `form:"category" binding:"required"`
	Duration  int    `form:"duration" binding:"gte=0"`
	PlayCount int    `form:"playCount" binding:"gte=0"`
	IsActive  *bool  `form:"isActive"`
	Tags      string `form:"tags"`
	AudioURL  string `form:"audioUrl"`
	ImageURL  string `form:"imageUrl"`
}

// MusicSave handles create and full update of one music record. Staged
// files are uploaded before the database write, audio first, then
// image. An upload failure aborts the whole save
func (a *API) MusicSave(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id := c.Param("id")
	isNew := id == "" || id == "new"

	var data musicForm
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Title, artist and category are required",
			"requestID": requestID,
		})
		return
	}

	if !model.ValidCategory(model.MusicCategories, data.Category) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid category",
			"requestID": requestID,
		})
		return
	}

	// Staged file selections. Both are optional, a missing form file
	// just means nothing to upload for that slot
	audioFh, _ := c.FormFile("audio")
	imageFh, _ := c.FormFile("image")

	if audioFh != nil {
		if code, err := validators.UploadValidator(audioFh, "audio/"); err != nil {
			c.AbortWithStatusJSON(code, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
	}

	if imageFh != nil {
		if code, err := validators.UploadValidator(imageFh, "image/"); err != nil {
			c.AbortWithStatusJSON(code, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
	}

	var existing *model.Music
	if !isNew {
		var err error

		existing, err = a.Music.FindByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
					"error":     "Music not found",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to fetch music", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	// Duration auto-populates from the staged audio file's metadata,
	// but a manually provided value wins
	duration := data.Duration
	if duration == 0 && audioFh != nil {
		if d, err := probeUploadedDuration(audioFh); err == nil {
			duration = d
		} else {
			zap.L().Warn("Failed to probe audio duration", zap.Error(err), zap.String("requestID", requestID))
		}
	}

	urls, err := service.UploadAssets(c.Request.Context(), a.S3, []service.Asset{
		{Kind: "audio", Subpath: "music/audio", File: audioFh},
		{Kind: "image", Subpath: "music/images", File: imageFh},
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})

		zap.L().Error("Upload failed", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	audioURL := data.AudioURL
	imageURL := data.ImageURL
	if existing != nil {
		if audioURL == "" {
			audioURL = existing.AudioURL
		}
		if imageURL == "" {
			imageURL = existing.ImageURL
		}
	}
	if u, ok := urls["audio"]; ok {
		audioURL = u
	}
	if u, ok := urls["image"]; ok {
		imageURL = u
	}

	if audioURL == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Audio file is required",
			"requestID": requestID,
		})
		return
	}

	isActive := true
	if data.IsActive != nil {
		isActive = *data.IsActive
	}

	now := time.Now().UTC()
	item := model.Music{
		Title:     data.Title,
		Artist:    data.Artist,
		AudioURL:  audioURL,
		ImageURL:  imageURL,
		Category:  data.Category,
		Duration:  duration,
		IsActive:  isActive,
		PlayCount: data.PlayCount,
		Tags:      model.ParseTags(data.Tags),
	}

	if isNew {
		item.Stamp(now, true)

		newID, err := a.Music.Insert(c.Request.Context(), &item)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Failed to save",
				"requestID": requestID,
			})

			zap.L().Error("Failed to insert music", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": newID})
		return
	}

	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	item.Stamp(now, false)

	if err := a.Music.Replace(c.Request.Context(), id, &item); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to save",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update music", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, item)
}

// probeUploadedDuration copies the staged file to disk so ffprobe can
// read it
func probeUploadedDuration(fh *multipart.FileHeader) (int, error) {
	f, err := fh.Open()
	if err != nil {
		return 0, err
	}
	defer f.Close()

	temp, err := os.CreateTemp("", "probe-*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(temp.Name())
	defer temp.Close()

	if _, err := io.Copy(temp, f); err != nil {
		return 0, err
	}

	return service.ProbeDuration(temp.Name())
}
