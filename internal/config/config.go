package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hoopsight/hoopsight/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level

	CORSAllowedOrigins []string
	InternalJobToken   string

	CacheEnabled bool
	CacheTTL     time.Duration

	DataAPIBaseURL                 string
	DataAPIKey                     string
	DataAPITimeout                 time.Duration
	DataAPIMaxRetries              int
	DataAPICircuitEnabled          bool
	DataAPICircuitFailureCount     int
	DataAPICircuitOpenTimeout      time.Duration
	DataAPICircuitHalfOpenMaxReq   int
	LiveStatsEnabled               bool
	LiveStatsBaseURL               string
	LiveStatsTimeout               time.Duration
	LiveStatsMaxRetries            int
	LiveStatsCircuitEnabled        bool
	LiveStatsCircuitFailureCount   int
	LiveStatsCircuitOpenTimeout    time.Duration
	LiveStatsCircuitHalfOpenMaxReq int

	WarmMaxWorkers int

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	dataAPITimeout, err := time.ParseDuration(getEnv("DATA_API_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DATA_API_TIMEOUT: %w", err)
	}
	if dataAPITimeout <= 0 {
		return Config{}, fmt.Errorf("DATA_API_TIMEOUT must be > 0")
	}
	dataAPIMaxRetries, err := getEnvAsInt("DATA_API_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse DATA_API_MAX_RETRIES: %w", err)
	}
	if dataAPIMaxRetries < 0 {
		return Config{}, fmt.Errorf("DATA_API_MAX_RETRIES must be >= 0")
	}
	dataAPICircuitEnabled, err := strconv.ParseBool(getEnv("DATA_API_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DATA_API_CIRCUIT_ENABLED: %w", err)
	}
	dataAPICircuitFailureCount, err := getEnvAsInt("DATA_API_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse DATA_API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if dataAPICircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("DATA_API_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	dataAPICircuitOpenTimeout, err := time.ParseDuration(getEnv("DATA_API_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DATA_API_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if dataAPICircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("DATA_API_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	dataAPICircuitHalfOpenMaxReq, err := getEnvAsInt("DATA_API_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse DATA_API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if dataAPICircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("DATA_API_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	liveStatsEnabled, err := strconv.ParseBool(getEnv("LIVE_STATS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_STATS_ENABLED: %w", err)
	}
	liveStatsTimeout, err := time.ParseDuration(getEnv("LIVE_STATS_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_STATS_TIMEOUT: %w", err)
	}
	if liveStatsTimeout <= 0 {
		return Config{}, fmt.Errorf("LIVE_STATS_TIMEOUT must be > 0")
	}
	liveStatsMaxRetries, err := getEnvAsInt("LIVE_STATS_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_STATS_MAX_RETRIES: %w", err)
	}
	if liveStatsMaxRetries < 0 {
		return Config{}, fmt.Errorf("LIVE_STATS_MAX_RETRIES must be >= 0")
	}
	liveStatsCircuitEnabled, err := strconv.ParseBool(getEnv("LIVE_STATS_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_STATS_CIRCUIT_ENABLED: %w", err)
	}
	liveStatsCircuitFailureCount, err := getEnvAsInt("LIVE_STATS_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_STATS_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if liveStatsCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("LIVE_STATS_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	liveStatsCircuitOpenTimeout, err := time.ParseDuration(getEnv("LIVE_STATS_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_STATS_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if liveStatsCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("LIVE_STATS_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	liveStatsCircuitHalfOpenMaxReq, err := getEnvAsInt("LIVE_STATS_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_STATS_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if liveStatsCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("LIVE_STATS_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	warmMaxWorkers, err := getEnvAsInt("WARM_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse WARM_MAX_WORKERS: %w", err)
	}
	if warmMaxWorkers < 1 {
		return Config{}, fmt.Errorf("WARM_MAX_WORKERS must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "hoopsight-api"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:       getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		LogLevel:       logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),

		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		InternalJobToken:   strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),

		CacheEnabled: cacheEnabled,
		CacheTTL:     cacheTTL,

		DataAPIBaseURL:               strings.TrimSpace(getEnv("DATA_API_BASE_URL", "http://localhost:8000")),
		DataAPIKey:                   strings.TrimSpace(getEnv("DATA_API_KEY", "")),
		DataAPITimeout:               dataAPITimeout,
		DataAPIMaxRetries:            dataAPIMaxRetries,
		DataAPICircuitEnabled:        dataAPICircuitEnabled,
		DataAPICircuitFailureCount:   dataAPICircuitFailureCount,
		DataAPICircuitOpenTimeout:    dataAPICircuitOpenTimeout,
		DataAPICircuitHalfOpenMaxReq: dataAPICircuitHalfOpenMaxReq,

		LiveStatsEnabled:               liveStatsEnabled,
		LiveStatsBaseURL:               strings.TrimSpace(getEnv("LIVE_STATS_BASE_URL", "")),
		LiveStatsTimeout:               liveStatsTimeout,
		LiveStatsMaxRetries:            liveStatsMaxRetries,
		LiveStatsCircuitEnabled:        liveStatsCircuitEnabled,
		LiveStatsCircuitFailureCount:   liveStatsCircuitFailureCount,
		LiveStatsCircuitOpenTimeout:    liveStatsCircuitOpenTimeout,
		LiveStatsCircuitHalfOpenMaxReq: liveStatsCircuitHalfOpenMaxReq,

		WarmMaxWorkers: warmMaxWorkers,

		PprofEnabled: pprofEnabled,
		PprofAddr:    pprofAddr,

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}

	if cfg.DataAPIBaseURL == "" {
		return Config{}, fmt.Errorf("DATA_API_BASE_URL cannot be empty")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}

	return cfg, nil
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

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
