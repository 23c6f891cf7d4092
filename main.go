package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/duecal/backend/internal/config"
	"github.com/duecal/backend/pkg/calendar"
	"github.com/duecal/backend/pkg/calendar/remote"
	"github.com/duecal/backend/pkg/confirm"
	v1 "github.com/duecal/backend/pkg/controllers/v1"
	"github.com/duecal/backend/pkg/models"
	"github.com/duecal/backend/pkg/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// cacheSize is the number of transaction batches the calendar keeps.
const cacheSize = 64

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	err = os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database
	err = models.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	var source calendar.Source = models.CalendarSource{}
	if cfg.SourceURL != nil {
		log.Info().Str("url", cfg.SourceURL.String()).Int("retries", cfg.SourceRetries).Msg("Using remote transaction source")
		source = remote.New(cfg.SourceURL, remote.WithRetries(cfg.SourceRetries))
	}

	co := v1.Controller{
		Calendar: calendar.NewService(
			source,
			calendar.WithLocation(cfg.CalendarTimezone),
			calendar.WithCache(cfg.CalendarCacheTTL, cacheSize),
		),
		Confirmer: confirm.Phrase(v1.CleanupPhrase),
	}

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(r.Group("/"), cfg, co)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("Starting duecal backend")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Msg(err.Error())
	}
}
