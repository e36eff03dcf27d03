package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	apperrors "github.com/kbukum/apiruntime/errors"
)

type testHTTP struct {
	BaseURL string            `mapstructure:"base_url"`
	Timeout time.Duration     `mapstructure:"timeout"`
	Headers map[string]string `mapstructure:"headers"`
}

type testRateLimit struct {
	RPS float64 `mapstructure:"rps"`
}

type testConfig struct {
	Name         string         `mapstructure:"name"`
	PrependPath  string         `mapstructure:"prepend_path"`
	TransformHAL bool           `mapstructure:"transform_hal"`
	Tags         []string       `mapstructure:"tags"`
	HTTP         testHTTP       `mapstructure:"http"`
	RateLimit    *testRateLimit `mapstructure:"rate_limit"`
	Secret       string         `mapstructure:"-"`
	Untagged     string

	applied bool
}

func (c *testConfig) ApplyDefaults() {
	c.applied = true
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = 30 * time.Second
	}
}

func (c *testConfig) Validate() error {
	if c.HTTP.BaseURL == "" {
		return apperrors.InvalidConfig("http.base_url is required")
	}
	return nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestKeys(t *testing.T) {
	want := []string{
		"name",
		"prepend_path",
		"transform_hal",
		"tags",
		"http.base_url",
		"http.timeout",
		"http.headers",
		"rate_limit.rps",
		"untagged",
	}
	if got := Keys(&testConfig{}); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestKeys_Squash(t *testing.T) {
	type Base struct {
		Name string `mapstructure:"name"`
	}
	type Outer struct {
		Base  `mapstructure:",squash"`
		Extra string `mapstructure:"extra"`
	}
	want := []string{"name", "extra"}
	if got := Keys(Outer{}); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestKeys_NotAStruct(t *testing.T) {
	if got := Keys(42); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestEnvPrefix(t *testing.T) {
	tests := map[string]string{
		"petstore":     "PETSTORE",
		"pet-store":    "PET_STORE",
		"acme.billing": "ACME_BILLING",
	}
	for in, want := range tests {
		if got := EnvPrefix(in); got != want {
			t.Errorf("EnvPrefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "petstore.yml", `
name: petstore
prepend_path: /v2
transform_hal: true
tags: [a, b]
http:
  base_url: https://api.example.com
  timeout: 5s
  headers:
    x-tenant: acme
rate_limit:
  rps: 2.5
`)

	var cfg testConfig
	if err := Load("petstore", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Name != "petstore" || cfg.PrependPath != "/v2" || !cfg.TransformHAL {
		t.Errorf("unexpected top-level values: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Tags, []string{"a", "b"}) {
		t.Errorf("unexpected tags %v", cfg.Tags)
	}
	if cfg.HTTP.BaseURL != "https://api.example.com" || cfg.HTTP.Timeout != 5*time.Second {
		t.Errorf("unexpected http values: %+v", cfg.HTTP)
	}
	if cfg.HTTP.Headers["x-tenant"] != "acme" {
		t.Errorf("unexpected headers %v", cfg.HTTP.Headers)
	}
	if cfg.RateLimit == nil || cfg.RateLimit.RPS != 2.5 {
		t.Errorf("unexpected rate limit %+v", cfg.RateLimit)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "petstore.yml", `
http:
  base_url: https://file.example.com
  timeout: 5s
`)
	t.Setenv("PETSTORE_HTTP_BASE_URL", "https://env.example.com")
	t.Setenv("PETSTORE_TRANSFORM_HAL", "true")
	t.Setenv("PETSTORE_RATE_LIMIT_RPS", "10")

	var cfg testConfig
	if err := Load("petstore", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTP.BaseURL != "https://env.example.com" {
		t.Errorf("expected env to win, got %q", cfg.HTTP.BaseURL)
	}
	if cfg.HTTP.Timeout != 5*time.Second {
		t.Errorf("expected file timeout to survive, got %v", cfg.HTTP.Timeout)
	}
	if !cfg.TransformHAL {
		t.Error("expected transform_hal from env")
	}
	if cfg.RateLimit == nil || cfg.RateLimit.RPS != 10 {
		t.Errorf("expected rate limit from env, got %+v", cfg.RateLimit)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "ACME_HTTP_BASE_URL=https://dotenv.example.com\nACME_PREPEND_PATH=/v3\n")
	t.Setenv("ACME_PREPEND_PATH", "/from-env")
	t.Cleanup(func() { _ = os.Unsetenv("ACME_HTTP_BASE_URL") })

	var cfg testConfig
	if err := Load("acme", &cfg, WithEnvFile(envPath), WithConfigFile(filepath.Join(dir, "missing.yml"))); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTP.BaseURL != "https://dotenv.example.com" {
		t.Errorf("expected value from .env, got %q", cfg.HTTP.BaseURL)
	}
	if cfg.PrependPath != "/from-env" {
		t.Errorf("expected process env to win over .env, got %q", cfg.PrependPath)
	}
}

func TestLoadWithEnvPrefix(t *testing.T) {
	t.Setenv("CUSTOM_NAME", "custom")

	var cfg testConfig
	err := Load("petstore", &cfg, WithEnvPrefix("CUSTOM"), WithConfigFile("/nonexistent/path.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "custom" {
		t.Errorf("expected name from CUSTOM_NAME, got %q", cfg.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	var cfg testConfig
	// With no config file found, Load should still succeed (just empty config)
	if err := Load("nonexistent-service", &cfg, WithConfigFile("/nonexistent/path.yml")); err != nil {
		t.Fatalf("expected Load to succeed with missing file, got %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.yml", "http: [unclosed")

	var cfg testConfig
	err := Load("petstore", &cfg, WithConfigFile(path))
	if !apperrors.HasCode(err, apperrors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestLoadAndValidate(t *testing.T) {
	t.Run("applies defaults and validates", func(t *testing.T) {
		t.Setenv("PETSTORE_HTTP_BASE_URL", "https://api.example.com")
		var cfg testConfig
		if err := LoadAndValidate("petstore", &cfg, WithConfigFile("/nonexistent/path.yml")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.applied || cfg.HTTP.Timeout != 30*time.Second {
			t.Errorf("expected defaults applied, got %+v", cfg)
		}
	})

	t.Run("returns validation error", func(t *testing.T) {
		var cfg testConfig
		err := LoadAndValidate("petstore", &cfg, WithConfigFile("/nonexistent/path.yml"))
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) || !strings.Contains(appErr.Message, "base_url") {
			t.Fatalf("expected base_url validation error, got %v", err)
		}
	})
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config/my-svc.yaml": true,
		"./config/.env":        true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("my-svc", LoaderConfig{})
	if files.ConfigFile != "./config/my-svc.yaml" {
		t.Errorf("expected config file at ./config/my-svc.yaml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./config/.env" {
		t.Errorf("expected env file at ./config/.env, got %q", files.EnvFile)
	}
}

func TestResolverPrefersExplicitPaths(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"./my-svc.yml": true}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("my-svc", LoaderConfig{ConfigFile: "/etc/svc.yml", EnvFile: "/etc/.env"})
	if files.ConfigFile != "/etc/svc.yml" || files.EnvFile != "/etc/.env" {
		t.Errorf("expected explicit paths, got %+v", files)
	}
}

func TestLoadUsesFileSystem(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"./.env.my-svc": true}}
	var cfg testConfig
	if err := Load("my-svc", &cfg, WithFileSystem(fs)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(fs.loaded, []string{"./.env.my-svc"}) {
		t.Errorf("expected env file loaded through the filesystem, got %v", fs.loaded)
	}
}

type mockFS struct {
	files  map[string]bool
	loaded []string
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }

func (m *mockFS) LoadEnv(path string) error {
	m.loaded = append(m.loaded, path)
	return nil
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("APP")(&lc)

	if lc.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/config.yml" {
		t.Errorf("expected config file path, got %q", lc.ConfigFile)
	}
	if lc.EnvFile != "/path/to/.env" {
		t.Errorf("expected env file path, got %q", lc.EnvFile)
	}
	if lc.EnvPrefix != "APP" {
		t.Errorf("expected env prefix, got %q", lc.EnvPrefix)
	}
}
