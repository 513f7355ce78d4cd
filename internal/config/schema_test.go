package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/libcat/internal/config"
)

func TestDefault_IsValid(t *testing.T) {
	if err := config.Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"unknown backend", func(c *config.Config) { c.Storage.Backend = "mongodb" }, "storage.backend must be one of"},
		{"empty backend", func(c *config.Config) { c.Storage.Backend = "" }, "storage.backend is required"},
		{"empty data dir", func(c *config.Config) { c.Storage.DataDir = "" }, "storage.data_dir is required"},
		{"bad level", func(c *config.Config) { c.Log.Level = "verbose" }, "log.level must be one of"},
		{"bad format", func(c *config.Config) { c.Log.Format = "xml" }, "log.format must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestValidate_UnimplementedBackendPasses(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Backend = "xml"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("LIBCAT_STORAGE_DATA_DIR", "")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != "json" {
		t.Errorf("Backend = %q, want %q", cfg.Storage.Backend, "json")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "storage:\n  data_dir: /srv/libcat\n  atomic_commit: true\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LIBCAT_LOG_FORMAT", "json")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.DataDir != "/srv/libcat" {
		t.Errorf("DataDir = %q, want %q", cfg.Storage.DataDir, "/srv/libcat")
	}
	if !cfg.Storage.AtomicCommit {
		t.Error("AtomicCommit = false, want true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want env override %q", cfg.Log.Format, "json")
	}
}

func TestLoad_InvalidValueFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("storage:\n  backend: mongodb\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Error("Load with unknown backend = nil error, want error")
	}
}

func TestSave_ThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yml")
	cfg := config.Default()
	cfg.Storage.DataDir = "/tmp/catalog"
	cfg.Log.Level = "info"

	if err := config.Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Storage.DataDir != "/tmp/catalog" || got.Log.Level != "info" {
		t.Errorf("Load after Save = %+v", got)
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv("LIBCAT_CONFIG", "/etc/libcat.yml")
	if got := config.ResolvePath("/opt/x.yml"); got != "/opt/x.yml" {
		t.Errorf("ResolvePath(explicit) = %q", got)
	}
	if got := config.ResolvePath(""); got != "/etc/libcat.yml" {
		t.Errorf("ResolvePath(env) = %q, want %q", got, "/etc/libcat.yml")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got, want := config.ExpandHome("~/data"), filepath.Join(home, "data"); got != want {
		t.Errorf("ExpandHome = %q, want %q", got, want)
	}
	if got := config.ExpandHome("/abs/data"); got != "/abs/data" {
		t.Errorf("ExpandHome(abs) = %q, want unchanged", got)
	}
}
