// Package config provides configuration management for the 3GPP
// downloader.
//
// Use DefaultSettings() for sensible defaults (downloads under
// ~/Downloads/3gpp-specs, 60 second HTTP timeout, bounded concurrent
// downloads with retries), or Load a JSON file:
//
//	settings, err := config.Load("/path/to/config.json")
//	// Missing file falls back to defaults.
//
// Settings can be written back with Save.
package config
