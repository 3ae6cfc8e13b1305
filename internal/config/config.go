package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete contractlens configuration.
// The structure matches the config.yaml file and can be overridden by environment variables
// such as CONTRACTLENS_SERVER_ADDR.

type Config struct {
	Server  ServerConfig  `json:"server" mapstructure:"server"`
	Auth    AuthConfig    `json:"auth" mapstructure:"auth"`
	Log     LogConfig     `json:"log" mapstructure:"log"`
	Storage StorageConfig `json:"storage" mapstructure:"storage"`
	History HistoryConfig `json:"history" mapstructure:"history"`
	Report  ReportConfig  `json:"report" mapstructure:"report"`
}

// ServerConfig contains HTTP gateway configuration

type ServerConfig struct {
	Addr            string `json:"addr" mapstructure:"addr"`
	ReadTimeout     string `json:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    string `json:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout string `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64  `json:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// AuthConfig contains bearer token authentication configuration

type AuthConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Token   string `json:"token" mapstructure:"token"`
}

// LogConfig contains logrus configuration

type LogConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
}

// StorageConfig contains SQLite database locations

type StorageConfig struct {
	HistoryPath string `json:"history_path" mapstructure:"history_path"`
	AuditPath   string `json:"audit_path" mapstructure:"audit_path"`
	// DocumentsDir is the folder the documents tools read contracts from.
	// Ignored when Bucket.Endpoint is set; empty disables the tools.
	DocumentsDir string       `json:"documents_dir" mapstructure:"documents_dir"`
	Bucket       BucketConfig `json:"bucket" mapstructure:"bucket"`
}

// BucketConfig points the documents tools at an S3-compatible bucket

type BucketConfig struct {
	Endpoint  string `json:"endpoint" mapstructure:"endpoint"`
	AccessKey string `json:"access_key" mapstructure:"access_key"`
	SecretKey string `json:"secret_key" mapstructure:"secret_key"`
	Bucket    string `json:"bucket" mapstructure:"bucket"`
	Prefix    string `json:"prefix" mapstructure:"prefix"`
	UseSSL    bool   `json:"use_ssl" mapstructure:"use_ssl"`
}

// HistoryConfig contains analysis history retention configuration

type HistoryConfig struct {
	Retention     string `json:"retention" mapstructure:"retention"`
	PruneSchedule string `json:"prune_schedule" mapstructure:"prune_schedule"`
	ListLimit     int    `json:"list_limit" mapstructure:"list_limit"`
}

type ReportConfig struct {
	DefaultFormat string `json:"default_format" mapstructure:"default_format"`
}

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	// Load .env first (ignore error if not present)
	_ = godotenv.Load()
	return load(viper.New(), ".", "$HOME/.contractlens")
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("CONTRACTLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logrus.Debug("No config file found, using defaults")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Resolve paths (expand ~)
	cfg.Storage.HistoryPath = resolvePath(cfg.Storage.HistoryPath)
	cfg.Storage.AuditPath = resolvePath(cfg.Storage.AuditPath)
	cfg.Storage.DocumentsDir = resolvePath(cfg.Storage.DocumentsDir)
	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.max_body_bytes", 5<<20)

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.token", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("storage.history_path", "~/.contractlens/history.db")
	v.SetDefault("storage.audit_path", "~/.contractlens/audit.db")
	v.SetDefault("storage.documents_dir", "~/.contractlens/contracts")
	v.SetDefault("storage.bucket.endpoint", "")
	v.SetDefault("storage.bucket.access_key", "")
	v.SetDefault("storage.bucket.secret_key", "")
	v.SetDefault("storage.bucket.bucket", "")
	v.SetDefault("storage.bucket.prefix", "")
	v.SetDefault("storage.bucket.use_ssl", true)

	// Keep a month of analyses, pruned nightly
	v.SetDefault("history.retention", "720h")
	v.SetDefault("history.prune_schedule", "0 3 * * *")
	v.SetDefault("history.list_limit", 50)

	v.SetDefault("report.default_format", "markdown")
}

// Durations returns the parsed server timeouts. Call Validate first.
func (s ServerConfig) Durations() (read, write, shutdown time.Duration) {
	read, _ = time.ParseDuration(s.ReadTimeout)
	write, _ = time.ParseDuration(s.WriteTimeout)
	shutdown, _ = time.ParseDuration(s.ShutdownTimeout)
	return read, write, shutdown
}

// RetentionDuration returns the parsed retention window. Call Validate first.
func (h HistoryConfig) RetentionDuration() time.Duration {
	d, _ := time.ParseDuration(h.Retention)
	return d
}

// NewLogger builds a logrus logger from the log section.
func NewLogger(c LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetLevel(level)
	if c.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}

// resolvePath resolves ~ to home directory and cleans the path
func resolvePath(p string) string {
	if p == "" || p == ":memory:" {
		return p
	}
	if p[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return filepath.Clean(p)
}

// EnsureDirs creates the parent directories of the storage files.
func (c *Config) EnsureDirs() error {
	for _, p := range []string{c.Storage.HistoryPath, c.Storage.AuditPath} {
		if p == ":memory:" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
	}
	return nil
}
