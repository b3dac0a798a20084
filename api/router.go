// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"zealvibe/catalog-api/aws"
	"zealvibe/catalog-api/db"
	"zealvibe/catalog-api/middleware"
	"zealvibe/catalog-api/model"
	"zealvibe/catalog-api/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB     *mongo.Database
	Router *gin.Engine
	Argon  *security.ArgonHash
	S3     *aws.S3Client

	Affirmations *db.Store[model.Affirmation]
	Music        *db.Store[model.Music]
	Videos       *db.Store[model.Video]
}

func NewRouter() (*API, error) {
	a := &API{}

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MongoDB connection, %w", err)
	}
	a.DB = database

	a.Affirmations = db.NewStore[model.Affirmation](database, "affirmations")
	a.Music = db.NewStore[model.Music](database, "music")
	a.Videos = db.NewStore[model.Video](database, "videos")

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	a.Router.MaxMultipartMemory = 5 << 20

	jwt := middleware.NewJWTMiddleware()
	maxUploadSize := viper.GetInt64("upload.max_size")

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// HEAD /api/validate		-> Validates a JWT token
		main.HEAD("/validate", jwt, a.Validate)

		// POST /api/login 		-> Logs in the admin and returns a JWT cookie
		main.POST("/login", middleware.BodySizeLimiter(1<<20), a.Login)

		// GET /api/content		-> Returns all three catalogs at once
		main.GET("/content", jwt, a.ContentFetch)
	}

	affirmations := main.Group("/affirmations", jwt)
	{
		h := &catalog[model.Affirmation]{name: "Affirmation", store: a.Affirmations}

		affirmations.GET("", h.fetchAll)
		affirmations.GET("/:id", h.fetchOne)
		affirmations.PATCH("/:id/active", h.toggleActive)
		affirmations.DELETE("/:id", h.remove)

		// POST /api/affirmations 			-> Creates a new affirmation
		affirmations.POST("", middleware.BodySizeLimiter(1<<20), a.AffirmationSave)

		// PUT /api/affirmations/:id			-> Full update of one affirmation
		affirmations.PUT("/:id", middleware.BodySizeLimiter(1<<20), a.AffirmationSave)

		// POST /api/affirmations/import		-> CSV bulk import
		affirmations.POST("/import", middleware.BodySizeLimiter(maxUploadSize), a.AffirmationImport)

		// GET /api/affirmations/template		-> Static CSV template download
		affirmations.GET("/template", cacheFor(300), a.AffirmationTemplate)
	}

	music := main.Group("/music", jwt)
	{
		h := &catalog[model.Music]{name: "Music", store: a.Music}

		music.GET("", h.fetchAll)
		music.GET("/:id", h.fetchOne)
		music.PATCH("/:id/active", h.toggleActive)
		music.DELETE("/:id", h.remove)

		// Multipart: form fields plus optional staged audio/image files
		music.POST("", middleware.BodySizeLimiter(maxUploadSize), a.MusicSave)
		music.PUT("/:id", middleware.BodySizeLimiter(maxUploadSize), a.MusicSave)
	}

	videos := main.Group("/videos", jwt)
	{
		h := &catalog[model.Video]{name: "Video", store: a.Videos}

		videos.GET("", h.fetchAll)
		videos.GET("/:id", h.fetchOne)
		videos.PATCH("/:id/active", h.toggleActive)
		videos.DELETE("/:id", h.remove)

		// Multipart: form fields plus optional staged video/thumbnail files
		videos.POST("", middleware.BodySizeLimiter(maxUploadSize), a.VideoSave)
		videos.PUT("/:id", middleware.BodySizeLimiter(maxUploadSize), a.VideoSave)
	}

	a.Argon = security.New()

	s3, err := aws.NewS3()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 client, %w", err)
	}
	a.S3 = s3

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
