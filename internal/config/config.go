package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config is the application configuration as read from a YAML file.
type Config struct {
	RPCEndpoint             string  `yaml:"rpc_endpoint"`
	ServerAddr              string  `yaml:"server_addr"`
	PollIntervalSeconds     float64 `yaml:"poll_interval_seconds"`
	WindowSize              int     `yaml:"window_size"`
	MaxRecentTransactions   int     `yaml:"max_recent_transactions"`
	TransactionsPerBlock    int     `yaml:"transactions_per_block"`
	StatsScanDepth          int     `yaml:"stats_scan_depth"`
	StatsChunkSize          int     `yaml:"stats_chunk_size"`
	DefaultBlockTimeSeconds float64 `yaml:"default_block_time_seconds"`
	RequestTimeoutSeconds   float64 `yaml:"request_timeout_seconds"`
	// ReadyTimeoutSeconds bounds the startup readiness probe; 0 probes the node once.
	ReadyTimeoutSeconds     float64 `yaml:"ready_timeout_seconds"`
	FailureJournalSize      int     `yaml:"failure_journal_size"`
	LogLevel                string  `yaml:"log_level"`
}

// Default returns the configuration used for every key missing from the file.
func Default() Config {
	return Config{
		RPCEndpoint:             "http://localhost:8545",
		ServerAddr:              "localhost:8080",
		PollIntervalSeconds:     4,
		WindowSize:              10,
		MaxRecentTransactions:   10,
		TransactionsPerBlock:    5,
		StatsScanDepth:          1000,
		StatsChunkSize:          50,
		DefaultBlockTimeSeconds: 2,
		RequestTimeoutSeconds:   10,
		ReadyTimeoutSeconds:     30,
		FailureJournalSize:      64,
		LogLevel:                "info",
	}
}

// Load reads configuration from a YAML file on top of the defaults.
// ${VAR} references in the file are expanded from the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	expandedData := os.ExpandEnv(string(data))
	err = yaml.UnmarshalStrict([]byte(expandedData), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.RPCEndpoint == "" {
		errs = append(errs, errors.New("rpc_endpoint is required"))
	} else if u, err := url.Parse(c.RPCEndpoint); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("rpc_endpoint %q must be an http(s) url", c.RPCEndpoint))
	}
	if c.ServerAddr == "" {
		errs = append(errs, errors.New("server_addr is required"))
	}
	if c.PollIntervalSeconds < 1 {
		errs = append(errs, errors.New("poll_interval_seconds cannot be less than 1"))
	}
	if c.WindowSize < 1 {
		errs = append(errs, errors.New("window_size must be at least 1"))
	}
	if c.MaxRecentTransactions < 1 {
		errs = append(errs, errors.New("max_recent_transactions must be at least 1"))
	}
	if c.TransactionsPerBlock < 1 {
		errs = append(errs, errors.New("transactions_per_block must be at least 1"))
	}
	if c.StatsScanDepth < 0 {
		errs = append(errs, errors.New("stats_scan_depth cannot be negative"))
	}
	if c.StatsChunkSize < 1 {
		errs = append(errs, errors.New("stats_chunk_size must be at least 1"))
	}
	if c.DefaultBlockTimeSeconds <= 0 {
		errs = append(errs, errors.New("default_block_time_seconds must be positive"))
	}
	if c.RequestTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("request_timeout_seconds must be positive"))
	}
	if c.ReadyTimeoutSeconds < 0 {
		errs = append(errs, errors.New("ready_timeout_seconds cannot be negative"))
	}
	if c.FailureJournalSize < 1 {
		errs = append(errs, errors.New("failure_journal_size must be at least 1"))
	}

	return errors.Join(errs...)
}

func (c Config) PollInterval() time.Duration {
	return seconds(c.PollIntervalSeconds)
}

func (c Config) RequestTimeout() time.Duration {
	return seconds(c.RequestTimeoutSeconds)
}

func (c Config) ReadyTimeout() time.Duration {
	return seconds(c.ReadyTimeoutSeconds)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
