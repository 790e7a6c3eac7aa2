package constants

import (
	"os"
	"strconv"
	"time"
)

const DefaultMaxChordSize = 8

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func GetAddr() string {
	return getEnvOrDefault("GCT_ADDR", ":8080")
}

func GetLogLevel() string {
	return getEnvOrDefault("LOG_LEVEL", "info")
}

// GetScalesPath is an optional YAML file with extra named scales.
func GetScalesPath() string {
	return os.Getenv("GCT_SCALES_PATH")
}

// GetMaxChordSize bounds the chords handed to the encoder. The permutation
// search is factorial in the chord size.
func GetMaxChordSize() int {
	n, err := strconv.Atoi(os.Getenv("GCT_MAX_CHORD_SIZE"))
	if err != nil || n <= 0 {
		return DefaultMaxChordSize
	}
	return n
}

func GetWatchInterval() time.Duration {
	return getDuration("GCT_WATCH_INTERVAL", 5*time.Second)
}

func GetDebounce() time.Duration {
	return getDuration("GCT_DEBOUNCE", time.Second)
}

func getDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
