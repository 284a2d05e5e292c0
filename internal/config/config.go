package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-feed/internal/platform/logging"
)

// Config stores runtime configuration for the feed client and CLI.
type Config struct {
	AppEnv               string
	ServiceName          string
	ServiceVersion       string
	LogLevel             logging.Level
	CricbuzzBaseURL      string
	CricbuzzSeriesURL    string
	CricbuzzTimeout      time.Duration
	CricbuzzVerifySSL    bool
	CricbuzzUserAgent    string
	CricbuzzMatchWorkers int
	CricbuzzLocation     *time.Location
	ProxyURL             string
	UptraceEnabled       bool
	UptraceDSN           string
}

// ErrInvalid marks every Load failure: the environment holds a value the client cannot use.
var ErrInvalid = errors.New("invalid configuration")

func Load() (Config, error) {
	cfg, err := load()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg, nil
}

func load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	// Zero keeps the upstream behaviour of no client-side deadline.
	cricbuzzTimeout, err := time.ParseDuration(getEnv("CRICBUZZ_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_TIMEOUT: %w", err)
	}
	if cricbuzzTimeout < 0 {
		return Config{}, fmt.Errorf("CRICBUZZ_TIMEOUT must be >= 0")
	}

	cricbuzzVerifySSL, err := strconv.ParseBool(getEnv("CRICBUZZ_VERIFY_SSL", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_VERIFY_SSL: %w", err)
	}

	cricbuzzMatchWorkers, err := getEnvAsInt("CRICBUZZ_MATCH_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_MATCH_WORKERS: %w", err)
	}
	if cricbuzzMatchWorkers <= 0 {
		return Config{}, fmt.Errorf("CRICBUZZ_MATCH_WORKERS must be > 0")
	}

	cricbuzzLocation, err := parseLocation(getEnv("CRICBUZZ_LOCAL_TZ", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_LOCAL_TZ: %w", err)
	}

	cricbuzzBaseURL := strings.TrimSpace(getEnv("CRICBUZZ_BASE_URL", "http://mapps.cricbuzz.com/cbzios/match/"))
	if err := validateURL(cricbuzzBaseURL); err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_BASE_URL: %w", err)
	}
	cricbuzzSeriesURL := strings.TrimSpace(getEnv("CRICBUZZ_SERIES_BASE_URL", "http://mapps.cricbuzz.com/cbzios/series/"))
	if err := validateURL(cricbuzzSeriesURL); err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_SERIES_BASE_URL: %w", err)
	}

	proxyURL := strings.TrimSpace(getEnv("http_proxy", getEnv("HTTP_PROXY", "")))
	if proxyURL != "" {
		if err := validateURL(proxyURL); err != nil {
			return Config{}, fmt.Errorf("parse http_proxy: %w", err)
		}
	}

	return Config{
		AppEnv:               appEnv,
		ServiceName:          getEnv("APP_SERVICE_NAME", "cricket-feed"),
		ServiceVersion:       getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:             logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		CricbuzzBaseURL:      cricbuzzBaseURL,
		CricbuzzSeriesURL:    cricbuzzSeriesURL,
		CricbuzzTimeout:      cricbuzzTimeout,
		CricbuzzVerifySSL:    cricbuzzVerifySSL,
		CricbuzzUserAgent:    strings.TrimSpace(getEnv("CRICBUZZ_USER_AGENT", "")),
		CricbuzzMatchWorkers: cricbuzzMatchWorkers,
		CricbuzzLocation:     cricbuzzLocation,
		ProxyURL:             proxyURL,
		UptraceEnabled:       uptraceEnabled,
		UptraceDSN:           uptraceDSN,
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func parseLocation(raw string) (*time.Location, error) {
	name := strings.TrimSpace(raw)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

func validateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%q must include scheme and host", raw)
	}
	return nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
