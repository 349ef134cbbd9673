package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	RedisURI          string
	SFTPAddress       string
	SFTPUser          string
	SFTPPassword      string
	SFTPDialTimeout   time.Duration
	SimulatedOrderTTL time.Duration
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress        = ":8080"
	defaultRedisURI          = "redis://localhost:6379/0"
	defaultSFTPDialTimeout   = 15 * time.Second
	defaultSimulatedOrderTTL = 24 * time.Hour
	defaultShutdownTimeout   = 10 * time.Second
)

// Load parses configuration from flags and environment variables. A .env
// file in the working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		RedisURI:          getString(lookup, "REDIS_URI", defaultRedisURI),
		SFTPAddress:       getString(lookup, "SFTP_ADDRESS", ""),
		SFTPUser:          getString(lookup, "SFTP_USER", ""),
		SFTPPassword:      getString(lookup, "SFTP_PASSWORD", ""),
		SFTPDialTimeout:   getDuration(lookup, "SFTP_DIAL_TIMEOUT", defaultSFTPDialTimeout),
		SimulatedOrderTTL: getDuration(lookup, "SIMULATED_ORDER_TTL", defaultSimulatedOrderTTL),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("partnersync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		simTTLStr          = cfg.SimulatedOrderTTL.String()
		dialTimeoutStr     = cfg.SFTPDialTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisURI, "r", cfg.RedisURI, "Redis URI for the simulated-order store")
	fs.StringVar(&cfg.SFTPAddress, "sftp-addr", cfg.SFTPAddress, "Partner SFTP endpoint host:port")
	fs.StringVar(&cfg.SFTPUser, "sftp-user", cfg.SFTPUser, "Partner SFTP user")
	fs.StringVar(&cfg.SFTPPassword, "sftp-password", cfg.SFTPPassword, "Partner SFTP password")
	fs.StringVar(&dialTimeoutStr, "sftp-dial-timeout", dialTimeoutStr, "SFTP connection timeout")
	fs.StringVar(&simTTLStr, "sim-ttl", simTTLStr, "Simulated order retention")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SimulatedOrderTTL, err = time.ParseDuration(simTTLStr); err != nil {
		return nil, fmt.Errorf("invalid simulated order ttl: %w", err)
	}

	if cfg.SFTPDialTimeout, err = time.ParseDuration(dialTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid sftp dial timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if passwordFile, ok := lookup("SFTP_PASSWORD_FILE"); ok && passwordFile != "" {
		content, err := os.ReadFile(passwordFile)
		if err != nil {
			return nil, fmt.Errorf("read sftp password file: %w", err)
		}
		cfg.SFTPPassword = string(content)
	}

	if cfg.SimulatedOrderTTL <= 0 {
		cfg.SimulatedOrderTTL = defaultSimulatedOrderTTL
	}

	if cfg.SFTPDialTimeout <= 0 {
		cfg.SFTPDialTimeout = defaultSFTPDialTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.SFTPAddress == "" {
		return nil, fmt.Errorf("sftp address must be provided")
	}

	if cfg.SFTPUser == "" {
		return nil, fmt.Errorf("sftp user must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
