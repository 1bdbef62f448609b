// SPDX-License-Identifier: EPL-2.0

// Package config holds the command line tool's settings.
package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds the player settings. Environment variables give the defaults;
// command line flags override them.
type Config struct {
	// Feeding
	BufferSize int
	MaxPayload uint32

	// Behaviour
	Realtime bool
	Strict   bool
	Sine     bool
	Output   string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		BufferSize: getEnvInt("WAVPLAY_BUFFER_SIZE", 4096),
		MaxPayload: getEnvUint32("WAVPLAY_MAX_PAYLOAD", 256<<20),

		Realtime: getEnvBool("WAVPLAY_REALTIME", false),
		Strict:   getEnvBool("WAVPLAY_STRICT", false),

		LogLevel:  getEnvString("LOG_LEVEL", "info"),
		LogFormat: getEnvString("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if c.BufferSize < 1 {
		return errors.New("WAVPLAY_BUFFER_SIZE must be at least 1")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return errors.New("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[c.LogFormat] {
		return errors.New("LOG_FORMAT must be one of: text, json")
	}

	return nil
}

// getEnvString returns the environment variable value or a default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as int or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvUint32 returns the environment variable as uint32 or a default.
// 0 is a valid value and disables the payload limit.
func getEnvUint32(key string, defaultValue uint32) uint32 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseUint(value, 10, 32); err == nil {
			return uint32(v)
		}
	}
	return defaultValue
}

// getEnvBool returns the environment variable as bool or a default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
