package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/chainpulse/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_RPC_URL", "https://rpc.example.org")

	tests := map[string]struct {
		content     string
		expected    func() config.Config
		errContains string
	}{
		"defaults for missing keys": {
			content: "window_size: 20\n",
			expected: func() config.Config {
				cfg := config.Default()
				cfg.WindowSize = 20
				return cfg
			},
		},
		"env substitution": {
			content: "rpc_endpoint: ${TEST_RPC_URL}\npoll_interval_seconds: 6.5\n",
			expected: func() config.Config {
				cfg := config.Default()
				cfg.RPCEndpoint = "https://rpc.example.org"
				cfg.PollIntervalSeconds = 6.5
				return cfg
			},
		},
		"unknown key": {
			content:     "window: 3\n",
			errContains: "failed to parse config file",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := config.Load(writeConfig(t, test.content))
			if test.errContains != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, test.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected(), cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		mutate      func(cfg *config.Config)
		errContains []string
	}{
		"defaults are valid": {
			mutate: func(cfg *config.Config) {},
		},
		"zero ready timeout probes once": {
			mutate: func(cfg *config.Config) { cfg.ReadyTimeoutSeconds = 0 },
		},
		"negative ready timeout": {
			mutate:      func(cfg *config.Config) { cfg.ReadyTimeoutSeconds = -1 },
			errContains: []string{"ready_timeout_seconds cannot be negative"},
		},
		"zero scan depth is valid": {
			mutate: func(cfg *config.Config) { cfg.StatsScanDepth = 0 },
		},
		"bad endpoint scheme": {
			mutate:      func(cfg *config.Config) { cfg.RPCEndpoint = "ws://localhost:8546" },
			errContains: []string{"must be an http(s) url"},
		},
		"several problems at once": {
			mutate: func(cfg *config.Config) {
				cfg.PollIntervalSeconds = 0.5
				cfg.StatsChunkSize = 0
				cfg.DefaultBlockTimeSeconds = 0
			},
			errContains: []string{
				"poll_interval_seconds cannot be less than 1",
				"stats_chunk_size must be at least 1",
				"default_block_time_seconds must be positive",
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			test.mutate(&cfg)
			err := cfg.Validate()
			if len(test.errContains) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, msg := range test.errContains {
				assert.ErrorContains(t, err, msg)
			}
		})
	}
}

func TestDurations(t *testing.T) {
	cfg := config.Default()
	cfg.PollIntervalSeconds = 1.5
	assert.Equal(t, 1500*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout())
}
