package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// lookupEnv returns the trimmed value of key run through parse. Unset,
// blank and unparseable values give fallback.
func lookupEnv[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return fallback
	}

	value, err := parse(raw)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, raw, err)
		return fallback
	}
	return value
}

func GetEnvString(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(s string) (string, error) { return s, nil })
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	return lookupEnv(key, defaultValue, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// GetEnvStringSlice reads a comma separated list, dropping empty items. A
// list with no items gives defaultValue.
func GetEnvStringSlice(key string, defaultValue []string) []string {
	parts := lookupEnv(key, nil, func(s string) ([]string, error) {
		var parts []string
		for _, part := range strings.Split(s, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
		return parts, nil
	})
	if len(parts) == 0 {
		return defaultValue
	}
	return parts
}
