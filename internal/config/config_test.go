package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
app:
  name: "phongtro"
  environment: "test"
api:
  base_url: "https://api.example.com/"
  timeout_seconds: 5
  cache_seconds: 30
redis:
  address: "localhost:6379"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.API.BaseURL != "https://api.example.com" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 5 {
		t.Errorf("expected timeout 5, got %d", cfg.API.TimeoutSeconds)
	}
	if cfg.API.CacheTTL.Seconds() != 30 {
		t.Errorf("expected cache ttl 30s, got %s", cfg.API.CacheTTL)
	}
	if cfg.Store.Path == "" {
		t.Errorf("expected default store path")
	}
}

func TestLoadConfigEnvExpansion(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	t.Setenv("PHONGTRO_API_URL", "http://localhost:3000")

	yamlContent := "api:\n  base_url: \"${PHONGTRO_API_URL}\"\n"
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:3000" {
		t.Errorf("expected env expansion, got %s", cfg.API.BaseURL)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "valid config",
			cfg:     Config{API: APIConfig{BaseURL: "https://api.example.com", TimeoutSeconds: 10}},
			wantErr: false,
		},
		{
			name:    "missing base url",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name:    "non-http base url",
			cfg:     Config{API: APIConfig{BaseURL: "ftp://api.example.com"}},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			cfg:     Config{API: APIConfig{BaseURL: "https://api.example.com", TimeoutSeconds: -1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
