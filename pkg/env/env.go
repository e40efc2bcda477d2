// Package env reads typed settings from environment variables.
//
// An unset or empty variable yields the caller's default. A value that does
// not parse also yields the default, with a warning logged so a typo in a
// deployment manifest is visible without stopping the process.
package env

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// String returns $key, or def when it is empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Int parses $key with strconv.Atoi. Surrounding spaces are ignored.
func Int(key string, def int) int {
	return lookup(key, def, func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	})
}

// Bool parses $key with strconv.ParseBool.
func Bool(key string, def bool) bool {
	return lookup(key, def, strconv.ParseBool)
}

// Duration parses $key with time.ParseDuration, as "30s" or "1m30s".
func Duration(key string, def time.Duration) time.Duration {
	return lookup(key, def, time.ParseDuration)
}

func lookup[T any](key string, def T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		slog.Warn("ignoring unparsable environment variable",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Any("default", def),
			slog.Any("error", err))
		return def
	}
	return v
}
