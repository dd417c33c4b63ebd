package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every environment variable the loader consults so the
// host environment cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TEABLE_API_URL", "TEABLE_API_TOKEN", "TEABLE_TOKEN", "TEABLE_TABLE_ID",
		"NTFY_URL", "NTFY_TOKEN", "NTFY_ACCESS_TOKEN",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}

	if cfg.Teable.APIURL != DefaultTeableAPIURL {
		t.Errorf("Teable.APIURL = %q, want %q", cfg.Teable.APIURL, DefaultTeableAPIURL)
	}
	if cfg.Ntfy.BaseURL != DefaultNtfyURL {
		t.Errorf("Ntfy.BaseURL = %q, want %q", cfg.Ntfy.BaseURL, DefaultNtfyURL)
	}
	if cfg.Teable.Token != "" {
		t.Errorf("Teable.Token = %q, want empty", cfg.Teable.Token)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `teable:
  api_url: https://teable.internal/api
  token: file-token
  table_id: tbl123
ntfy:
  base_url: https://ntfy.internal
  token: ntfy-file-token
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) returned error: %v", path, err)
	}

	if cfg.Teable.APIURL != "https://teable.internal/api" {
		t.Errorf("Teable.APIURL = %q, want file value", cfg.Teable.APIURL)
	}
	if cfg.Teable.Token != "file-token" {
		t.Errorf("Teable.Token = %q, want %q", cfg.Teable.Token, "file-token")
	}
	if cfg.Teable.TableID != "tbl123" {
		t.Errorf("Teable.TableID = %q, want %q", cfg.Teable.TableID, "tbl123")
	}
	if cfg.Ntfy.BaseURL != "https://ntfy.internal" {
		t.Errorf("Ntfy.BaseURL = %q, want file value", cfg.Ntfy.BaseURL)
	}
	if cfg.Ntfy.Token != "ntfy-file-token" {
		t.Errorf("Ntfy.Token = %q, want %q", cfg.Ntfy.Token, "ntfy-file-token")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `teable:
  token: file-token
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("TEABLE_API_TOKEN", "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) returned error: %v", path, err)
	}
	if cfg.Teable.Token != "env-token" {
		t.Errorf("Teable.Token = %q, want env override %q", cfg.Teable.Token, "env-token")
	}
}

func TestLoadEnvFallbackKeys(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected string
	}{
		{
			name:     "primary key wins",
			envVars:  map[string]string{"TEABLE_API_TOKEN": "primary", "TEABLE_TOKEN": "secondary"},
			expected: "primary",
		},
		{
			name:     "secondary key used when primary blank",
			envVars:  map[string]string{"TEABLE_API_TOKEN": "  ", "TEABLE_TOKEN": "secondary"},
			expected: "secondary",
		},
		{
			name:     "none set",
			envVars:  map[string]string{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load(\"\") returned error: %v", err)
			}
			if cfg.Teable.Token != tt.expected {
				t.Errorf("Teable.Token = %q, want %q", cfg.Teable.Token, tt.expected)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Fatal("Load() with missing file returned nil error")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("teable: [unclosed"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() with invalid YAML returned nil error")
	}
}
