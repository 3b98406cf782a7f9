package main

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/previewlab/thumbd/cmd/thumbd/config"
	"github.com/previewlab/thumbd/cmd/thumbd/inspector"
	"github.com/previewlab/thumbd/cmd/thumbd/storage"
)

var (
	rootCmd = &cobra.Command{
		Use:   "thumbd",
		Short: "Thumbnail format dictionary and eligibility API",
	}
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}).Level(zerolog.InfoLevel)

	configPath := rootCmd.PersistentFlags().StringP("config", "c", "thumbd.yml", "path to YAML config file")
	if err := rootCmd.Execute(); err != nil {
		log.Panic().Err(err).Msg("command line execute")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Err(err).Msg("")
		return
	}

	opts := []inspector.InspectorOption{
		inspector.WithExclusions(cfg.Thumbnail.ExcludedSet()),
	}
	var store storage.Storage
	if aws := storage.NewAWS(cfg.AWS); aws != nil {
		if err := aws.Ping(); err != nil {
			log.Err(err).Msg("thumbnail storage is unreachable")
			return
		}
		log.Info().Str("bucket", cfg.AWS.BucketName).Msg("thumbnail storage enabled")
		store = aws
		opts = append(opts, inspector.WithStorage(store))
	}

	h := newHandler(inspector.New(opts...), store)

	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.Server.RateLimit))))

	// Routes
	e.GET("/v1/formats", h.listFormats)
	e.GET("/v1/formats/:ext", h.getFormat)
	e.GET("/v1/formats/:ext/fit", h.fit)
	e.POST("/v1/check", h.check)
	e.GET("/v1/thumbnails/*", h.getThumbnail)
	e.PUT("/v1/thumbnails/*", h.putThumbnail)

	// Start server
	e.Logger.Fatal(e.Start(cfg.Server.Bind))
}
