package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default values. The upload ceiling sits below Telegram's ~2GB hard limit
// so transport overhead cannot push a borderline file over the wire limit.
const (
	DefaultMaxUploadBytes     = 1_950_000_000
	DefaultFormatSpec         = "bestvideo*+bestaudio/best"
	DefaultPreferredContainer = "mp4"
	DefaultDownloadTimeout    = 30 * time.Minute
	DefaultMaxParallel        = 2
)

// Config holds process-wide settings read once at startup. It is passed by
// value and never mutated afterwards.
type Config struct {
	BotToken            string
	MaxUploadBytes      int64
	WorkspaceRoot       string
	FormatSpec          string
	PreferredContainer  string
	ProbeBeforeDownload bool
	DownloadTimeout     time.Duration
	MaxParallel         int
}

// FromEnv reads configuration from the environment, falling back to
// defaults for anything unset or unparsable.
func FromEnv() Config {
	return Config{
		BotToken:            strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		MaxUploadBytes:      envInt64("TELEGRAM_MAX_BYTES", DefaultMaxUploadBytes),
		WorkspaceRoot:       envString("WORKSPACE_ROOT", os.TempDir()),
		FormatSpec:          envString("YTDLP_FORMAT", DefaultFormatSpec),
		PreferredContainer:  strings.ToLower(envString("PREFERRED_CONTAINER", DefaultPreferredContainer)),
		ProbeBeforeDownload: envBool("PROBE_BEFORE_DOWNLOAD", false),
		DownloadTimeout:     envDuration("DOWNLOAD_TIMEOUT", DefaultDownloadTimeout),
		MaxParallel:         envInt("MAX_PARALLEL_DOWNLOADS", DefaultMaxParallel),
	}
}

// Validate checks that the configuration can run a bot at all. A missing
// token aborts the process before the update loop starts.
func (c Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("TELEGRAM_MAX_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	if c.DownloadTimeout <= 0 {
		return fmt.Errorf("DOWNLOAD_TIMEOUT must be positive, got %s", c.DownloadTimeout)
	}
	if c.MaxParallel < 1 {
		return fmt.Errorf("MAX_PARALLEL_DOWNLOADS must be at least 1, got %d", c.MaxParallel)
	}
	if strings.TrimSpace(c.WorkspaceRoot) == "" {
		return fmt.Errorf("WORKSPACE_ROOT must not be empty")
	}
	return nil
}

func envString(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envInt64(key string, fallback int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return value
}

func envInt(key string, fallback int) int {
	return int(envInt64(key, int64(fallback)))
}

func envBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return value
}
