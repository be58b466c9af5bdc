package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/hoops-league/internal/platform/logging"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration

	CORSAllowedOrigins []string
	InternalJobToken   string

	DataDir      string
	BackupDir    string
	TimezoneName string
	Timezone     *time.Location

	ManagerCount int
	RosterSize   int
	ActiveSlots  int
	SeasonStart  string
	SeasonEnd    string
	BracketSize  int

	CacheEnabled bool
	CacheTTL     time.Duration

	SaveRetryAttempts   int
	SaveRetryBackoffMin time.Duration
	SaveRetryBackoffMax time.Duration
	RecalcWorkers       int

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

	LogLevel logging.Level
}

// DraftRounds is one round per roster slot: every manager picks once per round.
func (c Config) DraftRounds() int {
	return c.RosterSize
}

// TotalDraftPicks is the configured pick count the draft must reach to be
// considered complete.
func (c Config) TotalDraftPicks() int {
	return c.ManagerCount * c.RosterSize
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	dataDir := strings.TrimSpace(getEnv("DATA_DIR", "./data"))
	if dataDir == "" {
		return Config{}, fmt.Errorf("DATA_DIR must not be empty")
	}

	backupDir := strings.TrimSpace(getEnv("BACKUP_DIR", "./backups"))
	if backupDir == "" {
		return Config{}, fmt.Errorf("BACKUP_DIR must not be empty")
	}

	tzName := strings.TrimSpace(getEnv("LEAGUE_TIMEZONE", "America/New_York"))
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return Config{}, fmt.Errorf("load LEAGUE_TIMEZONE %q: %w", tzName, err)
	}

	managerCount, err := getEnvAsInt("LEAGUE_MANAGER_COUNT", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse LEAGUE_MANAGER_COUNT: %w", err)
	}
	if managerCount <= 0 {
		return Config{}, fmt.Errorf("LEAGUE_MANAGER_COUNT must be > 0")
	}
	rosterSize, err := getEnvAsInt("LEAGUE_ROSTER_SIZE", 6)
	if err != nil {
		return Config{}, fmt.Errorf("parse LEAGUE_ROSTER_SIZE: %w", err)
	}
	if rosterSize <= 0 {
		return Config{}, fmt.Errorf("LEAGUE_ROSTER_SIZE must be > 0")
	}
	activeSlots, err := getEnvAsInt("LEAGUE_ACTIVE_SLOTS", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse LEAGUE_ACTIVE_SLOTS: %w", err)
	}
	if activeSlots <= 0 || activeSlots > rosterSize {
		return Config{}, fmt.Errorf("LEAGUE_ACTIVE_SLOTS must be between 1 and LEAGUE_ROSTER_SIZE")
	}

	seasonStart := getEnv("LEAGUE_SEASON_START", "2026-01-05")
	if _, err := time.Parse("2006-01-02", seasonStart); err != nil {
		return Config{}, fmt.Errorf("parse LEAGUE_SEASON_START: %w", err)
	}
	seasonEnd := getEnv("LEAGUE_SEASON_END", "2026-02-27")
	if _, err := time.Parse("2006-01-02", seasonEnd); err != nil {
		return Config{}, fmt.Errorf("parse LEAGUE_SEASON_END: %w", err)
	}

	bracketSize, err := getEnvAsInt("LEAGUE_BRACKET_SIZE", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse LEAGUE_BRACKET_SIZE: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	saveRetryAttempts, err := getEnvAsInt("LINEUP_SAVE_RETRY_ATTEMPTS", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse LINEUP_SAVE_RETRY_ATTEMPTS: %w", err)
	}
	if saveRetryAttempts <= 0 {
		return Config{}, fmt.Errorf("LINEUP_SAVE_RETRY_ATTEMPTS must be > 0")
	}
	backoffMin, err := time.ParseDuration(getEnv("LINEUP_SAVE_BACKOFF_MIN", "50ms"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LINEUP_SAVE_BACKOFF_MIN: %w", err)
	}
	backoffMax, err := time.ParseDuration(getEnv("LINEUP_SAVE_BACKOFF_MAX", "250ms"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LINEUP_SAVE_BACKOFF_MAX: %w", err)
	}
	if backoffMin <= 0 || backoffMax < backoffMin {
		return Config{}, fmt.Errorf("lineup save backoff window must satisfy 0 < min <= max")
	}

	recalcWorkers, err := getEnvAsInt("RECALC_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse RECALC_WORKERS: %w", err)
	}
	if recalcWorkers <= 0 {
		return Config{}, fmt.Errorf("RECALC_WORKERS must be > 0")
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

	return Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("SERVICE_NAME", "hoops-league"),
		ServiceVersion: getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,

		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		InternalJobToken:   strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),

		DataDir:      dataDir,
		BackupDir:    backupDir,
		TimezoneName: tzName,
		Timezone:     loc,

		ManagerCount: managerCount,
		RosterSize:   rosterSize,
		ActiveSlots:  activeSlots,
		SeasonStart:  seasonStart,
		SeasonEnd:    seasonEnd,
		BracketSize:  bracketSize,

		CacheEnabled: cacheEnabled,
		CacheTTL:     cacheTTL,

		SaveRetryAttempts:   saveRetryAttempts,
		SaveRetryBackoffMin: backoffMin,
		SaveRetryBackoffMax: backoffMax,
		RecalcWorkers:       recalcWorkers,

		PprofEnabled: pprofEnabled,
		PprofAddr:    pprofAddr,

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAppName:           getEnv("PYROSCOPE_APP_NAME", "hoops-league"),
		PyroscopeAuthToken:         getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeBasicAuthUser:     getEnv("PYROSCOPE_BASIC_AUTH_USER", ""),
		PyroscopeBasicAuthPassword: getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""),
		PyroscopeUploadRate:        pyroscopeUploadRate,

		LogLevel: parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
}

func parseAppEnv(value string) (string, error) {
	env := strings.ToLower(strings.TrimSpace(value))
	switch env {
	case EnvDev, EnvProd:
		return env, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: must be %q or %q", value, EnvDev, EnvProd)
	}
}

func parseLogLevel(value string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	return parsed, nil
}
