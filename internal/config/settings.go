package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Settings holds all configuration options.
type Settings struct {
	// Download settings
	DownloadsPath          string  `json:"downloads_path"`
	MaxConcurrentDownloads int     `json:"max_concurrent_downloads"`
	DownloadMaxRetries     int     `json:"download_max_retries"`
	DownloadRetryCooldown  float64 `json:"download_retry_cooldown"`
	DownloadRetryExponent  float64 `json:"download_retry_exponent"`

	// AllowedFileSizeDifference is the relative size mismatch tolerated
	// when deciding whether an already-downloaded archive can be kept.
	AllowedFileSizeDifference float64 `json:"allowed_file_size_difference"`

	// HTTP settings
	HTTPTimeoutSeconds int    `json:"http_timeout_seconds"`
	UserAgent          string `json:"user_agent"`

	// ArchiveBaseURL overrides the public 3GPP archive root. Empty means
	// the default; mainly useful for mirrors and tests.
	ArchiveBaseURL string `json:"archive_base_url"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		DownloadsPath:          filepath.Join(homeDir, "Downloads", "3gpp-specs"),
		MaxConcurrentDownloads: 4,
		DownloadMaxRetries:     7,
		DownloadRetryCooldown:  0.2,
		DownloadRetryExponent:  4.0,

		AllowedFileSizeDifference: 0.05,

		HTTPTimeoutSeconds: 60,
	}
}

// HTTPTimeout returns the HTTP timeout as a duration.
func (s *Settings) HTTPTimeout() time.Duration {
	return time.Duration(s.HTTPTimeoutSeconds) * time.Second
}

// Load reads settings from a JSON file. A missing file yields the
// defaults, not an error.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
