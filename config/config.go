package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	HTTPPort    string
	DB          DB
	MetricsPort string

	// Study protocol knobs.
	ReviewQuota        int
	MaxOpenAssignments int

	// Artifact storage.
	ArtifactRoot     string
	ArtifactMaxBytes int64

	// Transcription service.
	TranscriberURL   string
	TranscriberKey   string
	TranscriberModel string

	PyroscopeEnabled   bool
	PyroscopeAddress   string
	JaegerCollectorURL string
}

type DB struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func Load() *Config {
	return &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DB:          loadDB(),
		MetricsPort: getEnv("METRICS_PORT", "9100"),

		ReviewQuota:        getEnvInt("REVIEW_QUOTA", 4),
		MaxOpenAssignments: getEnvInt("MAX_OPEN_ASSIGNMENTS", 1),

		ArtifactRoot:     getEnv("ARTIFACT_ROOT", "/var/lib/reviewer-survey/artifacts"),
		ArtifactMaxBytes: getEnvInt64("ARTIFACT_MAX_BYTES", 1<<30),

		TranscriberURL:   getEnv("TRANSCRIBER_URL", ""),
		TranscriberKey:   getEnv("TRANSCRIBER_KEY", ""),
		TranscriberModel: getEnv("TRANSCRIBER_MODEL", "whisper-1"),

		PyroscopeEnabled:   getEnv("PYROSCOPE_ENABLED", "false") == "true",
		PyroscopeAddress:   getEnv("PYROSCOPE_SERVER_ADDRESS", "http://pyroscope:4040"),
		JaegerCollectorURL: getEnv("JAEGER_COLLECTOR_URL", ""),
	}
}

func loadDB() DB {
	return DB{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		Name:     getEnv("DB_NAME", "reviewer_survey"),
	}
}

func (d DB) DSN() string {
	hostPort := net.JoinHostPort(d.Host, d.Port)
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=disable",
		d.User, d.Password, hostPort, d.Name,
	)
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}
