package api

import (
	"net/http"

	"zealvibe/catalog-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ContentFetch returns all three catalogs in one response. The three
// collection reads run concurrently
func (a *API) ContentFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var (
		affirmations []model.Affirmation
		music        []model.Music
		videos       []model.Video
	)

	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() (err error) {
		affirmations, err = a.Affirmations.FindAll(ctx)
		return err
	})
	g.Go(func() (err error) {
		music, err = a.Music.FindAll(ctx)
		return err
	})
	g.Go(func() (err error) {
		videos, err = a.Videos.FindAll(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load content", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"affirmations": affirmations,
		"music":        music,
		"videos":       videos,
	})
}
