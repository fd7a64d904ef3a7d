package main

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/eurolens/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.LoggingConfig
		override string
		level    zapcore.Level
		wantErr  bool
	}{
		{name: "defaults to info", level: zapcore.InfoLevel},
		{name: "config level", cfg: config.LoggingConfig{Level: "warn"}, level: zapcore.WarnLevel},
		{name: "override wins", cfg: config.LoggingConfig{Level: "error"}, override: "debug", level: zapcore.DebugLevel},
		{name: "console format", cfg: config.LoggingConfig{Format: "console"}, level: zapcore.InfoLevel},
		{name: "bad level", override: "loud", wantErr: true},
		{name: "bad format", cfg: config.LoggingConfig{Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.cfg, tt.override)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !logger.Core().Enabled(tt.level) {
				t.Errorf("expected level %s to be enabled", tt.level)
			}
			if tt.level > zapcore.DebugLevel && logger.Core().Enabled(tt.level-1) {
				t.Errorf("expected level %s to be disabled", tt.level-1)
			}
		})
	}
}

func TestInitializeLoggerOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "eurolens.log")
	logger, err := initializeLogger(config.LoggingConfig{OutputFile: path}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()
}

func TestInitializeLoggerUnwritableFile(t *testing.T) {
	// A directory cannot be opened as the log file.
	_, err := initializeLogger(config.LoggingConfig{OutputFile: t.TempDir()}, "")
	if err == nil {
		t.Fatal("expected error for a log file path that is a directory")
	}
	if !strings.Contains(err.Error(), "failed to open log file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestServerOptions(t *testing.T) {
	conf := &config.Configuration{
		Cache:     config.CacheConfig{Enabled: true, TTL: time.Minute},
		RateLimit: config.RateLimitConfig{Enabled: false, RequestsPerSecond: 5, Burst: 10},
	}
	opts := serverOptions(conf)
	if opts.CacheTTL != time.Minute {
		t.Errorf("expected cache TTL, got %s", opts.CacheTTL)
	}
	if opts.RequestsPerSecond != 0 || opts.Burst != 0 {
		t.Errorf("disabled rate limit leaked into options: %+v", opts)
	}

	conf.Cache.Enabled = false
	conf.RateLimit.Enabled = true
	opts = serverOptions(conf)
	if opts.CacheTTL != 0 || opts.RequestsPerSecond != 5 || opts.Burst != 10 {
		t.Errorf("unexpected options %+v", opts)
	}
}
