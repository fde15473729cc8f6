package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid file backend config",
			config: Config{
				Port:            "8081",
				DataBackend:     "file",
				DataDir:         "./data",
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				Port:            "8081",
				DataBackend:     "memory",
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "valid sqlite backend config",
			config: Config{
				Port:            "8081",
				DataBackend:     "sqlite",
				SQLiteDBPath:    "./test.db",
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:            "abc",
				DataBackend:     "memory",
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range low",
			config: Config{
				Port:            "0",
				DataBackend:     "memory",
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid port 0: must be between 1 and 65535",
		},
		{
			name: "invalid port - out of range high",
			config: Config{
				Port:            "70000",
				DataBackend:     "memory",
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name: "invalid data backend",
			config: Config{
				Port:            "8080",
				DataBackend:     "postgres",
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid data backend 'postgres'",
		},
		{
			name: "sqlite backend missing database path",
			config: Config{
				Port:            "8080",
				DataBackend:     "sqlite",
				SQLiteDBPath:    "",
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name: "file backend missing data dir",
			config: Config{
				Port:            "8080",
				DataBackend:     "file",
				DataDir:         "",
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr:     true,
			errorString: "data directory cannot be empty when using file backend",
		},
		{
			name: "shutdown timeout too small",
			config: Config{
				Port:            "8080",
				DataBackend:     "memory",
				ShutdownTimeout: 100 * time.Millisecond,
			},
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name: "multiple problems reported together",
			config: Config{
				Port:            "abc",
				DataBackend:     "postgres",
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid data backend 'postgres'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Validate() error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestConfig_ValidateAccumulatesAllErrors(t *testing.T) {
	cfg := Config{
		Port:            "abc",
		DataBackend:     "postgres",
		ShutdownTimeout: 0,
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"invalid port", "invalid data backend", "invalid shutdown timeout"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("combined error missing %q: %v", want, err)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_BACKEND", "SQLITE_DB_PATH", "DATA_DIR", "SHUTDOWN_TIMEOUT"} {
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != "8081" {
		t.Errorf("Port = %q, want default 8081", cfg.Port)
	}
	if cfg.DataBackend != "file" {
		t.Errorf("DataBackend = %q, want default file", cfg.DataBackend)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want default 30s", cfg.ShutdownTimeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Errorf("DataBackend = %q, want sqlite", cfg.DataBackend)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
}
