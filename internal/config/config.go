package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Planner  PlannerConfig
}

type ServerConfig struct {
	Port        int
	CorsOrigins []string
}

// UpstreamConfig covers the geocoding and POI collaborators.
type UpstreamConfig struct {
	NominatimURL string
	OverpassURL  string
	UserAgent    string
	Timeout      time.Duration

	// RadiusKm is the default POI search radius around the anchor.
	RadiusKm float64

	// MaxPerCategory caps how many places survive per raw category tag.
	MaxPerCategory int
}

type PlannerConfig struct {
	DefaultProfile string
	SessionTTL     time.Duration
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnvAsInt("PORT", 8080),
			CorsOrigins: getEnvAsSlice("CORS_ORIGINS", []string{"*"}),
		},
		Upstream: UpstreamConfig{
			NominatimURL:   getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org/search"),
			OverpassURL:    getEnv("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
			UserAgent:      getEnv("GEOCODER_USER_AGENT", "Wayfare/1.0 (wayfare@example.com)"),
			Timeout:        getEnvAsDuration("UPSTREAM_TIMEOUT", 30*time.Second),
			RadiusKm:       getEnvAsFloat("POI_RADIUS_KM", 5.0),
			MaxPerCategory: getEnvAsInt("POI_MAX_PER_CATEGORY", 10),
		},
		Planner: PlannerConfig{
			DefaultProfile: getEnv("PLANNER_PROFILE", "detailed"),
			SessionTTL:     getEnvAsDuration("SESSION_TTL", 2*time.Hour),
		},
	}
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	return strings.Split(value, ",")
}
