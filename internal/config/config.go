package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	SessionBackendSQLite = "sqlite"
	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"
)

// ClientConfig configures the jobmatch command line client.
type ClientConfig struct {
	APIURL       string
	HTTPTimeout  time.Duration
	PollInterval time.Duration
	BrowsePolicy string
	Session      SessionConfig
}

type SessionConfig struct {
	Backend string
	// Path is the SQLite file for the sqlite backend.
	Path  string
	Redis RedisConfig
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Prefix   string
}

// ServerConfig configures the reference backend.
type ServerConfig struct {
	App      AppConfig
	JWT      JWTConfig
	MediaDir string

	// DatabasePath is the SQLite file backing the store. Empty keeps the
	// data in memory for the life of the process.
	DatabasePath string
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// fileConfig is the optional YAML overlay named by JOBMATCH_CONFIG.
// Environment variables win over it.
type fileConfig struct {
	APIURL         string `yaml:"api_url"`
	HTTPTimeout    string `yaml:"http_timeout"`
	PollInterval   string `yaml:"poll_interval"`
	BrowsePolicy   string `yaml:"browse_policy"`
	SessionBackend string `yaml:"session_backend"`
	SessionPath    string `yaml:"session_path"`
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// LoadDotEnv loads .env files when present. Variables already set in the
// environment are kept.
func LoadDotEnv(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
		}
	}
}

func LoadClient() (ClientConfig, error) {
	file, err := readOverlay(strings.TrimSpace(os.Getenv("JOBMATCH_CONFIG")))
	if err != nil {
		return ClientConfig{}, err
	}

	var missing, invalid []string
	pick := func(key, fromFile string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return strings.TrimSpace(fromFile)
	}
	req := func(key, fromFile string) string {
		v := pick(key, fromFile)
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	dur := func(key, fromFile string, def time.Duration) time.Duration {
		v := pick(key, fromFile)
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}

	cfg := ClientConfig{
		APIURL:       req("JOBMATCH_API_URL", file.APIURL),
		HTTPTimeout:  dur("JOBMATCH_HTTP_TIMEOUT", file.HTTPTimeout, 30*time.Second),
		PollInterval: dur("JOBMATCH_POLL_INTERVAL", file.PollInterval, 10*time.Second),
		BrowsePolicy: strings.ToLower(pick("JOBMATCH_BROWSE_POLICY", file.BrowsePolicy)),
		Session: SessionConfig{
			Backend: strings.ToLower(pick("JOBMATCH_SESSION_BACKEND", file.SessionBackend)),
			Path:    pick("JOBMATCH_SESSION_PATH", file.SessionPath),
			Redis: RedisConfig{
				Host:     pick("REDIS_HOST", "localhost"),
				Port:     pick("REDIS_PORT", "6379"),
				Password: os.Getenv("REDIS_PASSWORD"),
				Prefix:   pick("JOBMATCH_REDIS_PREFIX", "jobmatch:session"),
			},
		},
	}
	if cfg.PollInterval == 0 {
		invalid = append(invalid, "JOBMATCH_POLL_INTERVAL")
	}

	if v := pick("REDIS_DB", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			invalid = append(invalid, "REDIS_DB")
		}
		cfg.Session.Redis.DB = n
	}

	switch cfg.Session.Backend {
	case "":
		cfg.Session.Backend = SessionBackendSQLite
	case SessionBackendSQLite, SessionBackendRedis, SessionBackendMemory:
	default:
		invalid = append(invalid, "JOBMATCH_SESSION_BACKEND")
	}
	if cfg.Session.Backend == SessionBackendSQLite && cfg.Session.Path == "" {
		cfg.Session.Path = defaultSessionPath()
	}

	if len(missing) > 0 {
		return ClientConfig{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return ClientConfig{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}
	return cfg, nil
}

func LoadServer() (ServerConfig, error) {
	cfg := ServerConfig{}

	var missing, invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	dur := func(key string, def time.Duration) time.Duration {
		v := opt(key)
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    opt("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  dur("JWT_ACCESS_TTL", 24*time.Hour),
		RefreshExpiresIn: dur("JWT_REFRESH_TTL", 7*24*time.Hour),
	}
	cfg.MediaDir = opt("MEDIA_DIR")
	cfg.DatabasePath = opt("DATABASE_PATH")

	if len(missing) > 0 {
		return ServerConfig{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return ServerConfig{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}
	return cfg, nil
}

func readOverlay(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "jobmatch-session.db"
	}
	return filepath.Join(dir, "jobmatch", "session.db")
}
