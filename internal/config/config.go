// Package config reads the backend configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// API
	Port             string
	APIURL           *url.URL
	CORSAllowOrigins []string
	EnablePprof      bool

	// Logging
	LogFormat string

	// Database
	DBPath string

	// Calendar
	CalendarTimezone *time.Location
	CalendarCacheTTL time.Duration

	// Remote transaction source. If SourceURL is nil, the local
	// database is used.
	SourceURL     *url.URL
	SourceRetries int
}

// Load reads a .env file from the working directory if it exists and
// parses the configuration from the environment.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("could not load .env file: %w", err)
	}

	return FromEnv()
}

// FromEnv parses the configuration from the environment. All problems
// are collected and returned as one error.
func FromEnv() (Config, error) {
	var problems []string

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogFormat:   os.Getenv("LOG_FORMAT"),
		DBPath:      getEnv("DB_PATH", "data/duecal.db"),
		EnablePprof: os.Getenv("ENABLE_PPROF") == "true",
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		problems = append(problems, "environment variable API_URL must be set")
	} else {
		u, err := url.Parse(apiURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, fmt.Sprintf("API_URL '%s' is not a valid URL", apiURL))
		}
		cfg.APIURL = u
	}

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid PORT '%s': must be a number between 1 and 65535", cfg.Port))
	}

	if origins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		cfg.CORSAllowOrigins = strings.Fields(origins)
	}

	if cfg.LogFormat != "" && cfg.LogFormat != "human" && cfg.LogFormat != "json" {
		problems = append(problems, fmt.Sprintf("invalid LOG_FORMAT '%s': must be 'human' or 'json'", cfg.LogFormat))
	}

	loc, err := time.LoadLocation(getEnv("CALENDAR_TIMEZONE", "UTC"))
	if err != nil {
		problems = append(problems, fmt.Sprintf("invalid CALENDAR_TIMEZONE: %v", err))
	}
	cfg.CalendarTimezone = loc

	ttl, err := time.ParseDuration(getEnv("CALENDAR_CACHE_TTL", "30s"))
	if err != nil || ttl < 0 {
		problems = append(problems, fmt.Sprintf("invalid CALENDAR_CACHE_TTL '%s': must be a non-negative duration", os.Getenv("CALENDAR_CACHE_TTL")))
	}
	cfg.CalendarCacheTTL = ttl

	if source := os.Getenv("CALENDAR_SOURCE_URL"); source != "" {
		u, err := url.Parse(source)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			problems = append(problems, fmt.Sprintf("invalid CALENDAR_SOURCE_URL '%s': must be an http or https URL", source))
		}
		cfg.SourceURL = u
	}

	retries, err := strconv.Atoi(getEnv("CALENDAR_SOURCE_RETRIES", "3"))
	if err != nil || retries < 0 {
		problems = append(problems, fmt.Sprintf("invalid CALENDAR_SOURCE_RETRIES '%s': must be a non-negative number", os.Getenv("CALENDAR_SOURCE_RETRIES")))
	}
	cfg.SourceRetries = retries

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("configuration errors: %s", strings.Join(problems, "; "))
	}

	log.Debug().Str("API URL", cfg.APIURL.String()).Str("Database", cfg.DBPath).Str("Timezone", cfg.CalendarTimezone.String()).Msg("Config")
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
