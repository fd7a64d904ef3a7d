package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/eurolens/pkg/constants"
)

func TestLoadConfigurationDefaults(t *testing.T) {
	conf, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration returned error: %v", err)
	}

	if conf.Server.Address != constants.DefaultServerAddress {
		t.Errorf("expected default address %s, got %s", constants.DefaultServerAddress, conf.Server.Address)
	}
	if conf.Server.ReadTimeout != constants.DefaultReadTimeout {
		t.Errorf("expected default read timeout, got %s", conf.Server.ReadTimeout)
	}
	if !conf.Cache.Enabled || conf.Cache.TTL != constants.DefaultCacheTTL {
		t.Errorf("unexpected cache defaults: %+v", conf.Cache)
	}
	if !conf.RateLimit.Enabled || conf.RateLimit.Burst != constants.DefaultRequestBurst {
		t.Errorf("unexpected rate limit defaults: %+v", conf.RateLimit)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults, got %v", err)
	}
	if conf.Server.Address != constants.DefaultServerAddress {
		t.Errorf("expected default address, got %s", conf.Server.Address)
	}
}

func TestLoadConfigurationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eurolens.yaml")
	content := `server:
  address: "127.0.0.1:9000"
  writeTimeout: 30s
logging:
  level: debug
  format: console
cache:
  enabled: false
rateLimit:
  requestsPerSecond: 2.5
  burst: 5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration returned error: %v", err)
	}

	if conf.Server.Address != "127.0.0.1:9000" {
		t.Errorf("unexpected address %s", conf.Server.Address)
	}
	if conf.Server.WriteTimeout != 30*time.Second {
		t.Errorf("unexpected write timeout %s", conf.Server.WriteTimeout)
	}
	if conf.Server.ReadTimeout != constants.DefaultReadTimeout {
		t.Errorf("unset read timeout should keep its default, got %s", conf.Server.ReadTimeout)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("unexpected logging config %+v", conf.Logging)
	}
	if conf.Cache.Enabled {
		t.Error("expected cache to be disabled")
	}
	if conf.RateLimit.RequestsPerSecond != 2.5 || conf.RateLimit.Burst != 5 {
		t.Errorf("unexpected rate limit config %+v", conf.RateLimit)
	}
}

func TestLoadConfigurationExample(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join("..", "..", constants.ExampleConfigFile))
	if err != nil {
		t.Fatalf("example configuration failed to load: %v", err)
	}
	if conf.Logging.Level != "info" || conf.Logging.Format != "json" {
		t.Errorf("unexpected logging config %+v", conf.Logging)
	}
}

func TestLoadConfigurationEnvOverride(t *testing.T) {
	t.Setenv("EUROLENS_SERVER_ADDRESS", ":9191")
	t.Setenv("EUROLENS_CACHE_ENABLED", "false")

	conf, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration returned error: %v", err)
	}
	if conf.Server.Address != ":9191" {
		t.Errorf("expected env address, got %s", conf.Server.Address)
	}
	if conf.Cache.Enabled {
		t.Error("expected env to disable the cache")
	}
}

func TestLoadConfigurationInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "server: [",
			wantErr: "error reading config data",
		},
		{
			name:    "bad log level",
			content: "logging:\n  level: verbose\n",
			wantErr: "invalid log level: verbose",
		},
		{
			name:    "bad log format",
			content: "logging:\n  format: xml\n",
			wantErr: "invalid log format: xml",
		},
		{
			name:    "negative timeout",
			content: "server:\n  readTimeout: -1s\n",
			wantErr: "server.readTimeout must not be negative",
		},
		{
			name:    "zero burst",
			content: "rateLimit:\n  burst: 0\n",
			wantErr: "rateLimit.burst must be positive",
		},
		{
			name:    "empty address",
			content: "server:\n  address: \" \"\n",
			wantErr: "server.address must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigurationFromReader(strings.NewReader(tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateDisabledRateLimit(t *testing.T) {
	conf := Configuration{
		Server:    ServerConfig{Address: ":8080"},
		RateLimit: RateLimitConfig{Enabled: false},
	}
	if err := conf.Validate(); err != nil {
		t.Errorf("disabled rate limit should not require settings, got %v", err)
	}
}
