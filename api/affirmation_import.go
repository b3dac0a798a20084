package api

import (
	"errors"
	"io"
	"net/http"

	"zealvibe/catalog-api/service"
	"zealvibe/catalog-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AffirmationImport bulk-inserts affirmations from an uploaded CSV
// file. Row inserts run concurrently with no atomicity, so a failed
// import may still have written some rows
func (a *API) AffirmationImport(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	fh, err := c.FormFile("file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No file provided",
			"requestID": requestID,
		})
		return
	}

	if code, err := validators.CSVValidator(fh); err != nil {
		c.AbortWithStatusJSON(code, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to open uploaded CSV", zap.Error(err), zap.String("requestID", requestID))
		return
	}
	defer f.Close()

	text, err := io.ReadAll(f)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to read uploaded CSV", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	count, err := service.ImportAffirmations(c.Request.Context(), a.Affirmations, string(text))
	if err != nil {
		if errors.Is(err, service.ErrNoValidRows) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "No valid rows found in CSV",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to import CSV",
			"requestID": requestID,
		})

		zap.L().Error("CSV import failed", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": count})
}
