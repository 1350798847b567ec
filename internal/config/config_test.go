package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"smartcloth/internal/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SMARTCLOTH_AUTH_SIGNING_KEY", "secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.DB.Path != "smartcloth.db" {
		t.Fatalf("unexpected defaults: port=%q db=%q", cfg.Port, cfg.DB.Path)
	}
	if cfg.Engine.Tick != 50*time.Millisecond {
		t.Fatalf("tick: %v", cfg.Engine.Tick)
	}
	if cfg.Scale.Threshold != 5 || cfg.Scale.ReleaseBand != 20 {
		t.Fatalf("scale: %+v", cfg.Scale)
	}
	if cfg.Network.Addr != "" || cfg.Network.DialTimeout != 2*time.Second {
		t.Fatalf("network: %+v", cfg.Network)
	}
	if got := cfg.EngineTimeouts(); got != engine.DefaultConfig() {
		t.Fatalf("engine timeouts differ from defaults: %+v", got)
	}
	if cfg.ServiceAuth().TokenTTL != time.Hour {
		t.Fatalf("token ttl: %v", cfg.Auth.TokenTTL)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
port: "9090"
db:
  path: /tmp/device.db
engine:
  error_timeout: 4s
network:
  addr: 127.0.0.1:7000
  read_timeout: 1500ms
scale:
  threshold: 2.5
`)
	t.Setenv("SMARTCLOTH_PORT", "7070")
	t.Setenv("SMARTCLOTH_AUTH_SIGNING_KEY", "secret")
	t.Setenv("SMARTCLOTH_ENGINE_CANCEL_TIMEOUT", "250ms")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "7070" {
		t.Fatalf("env must override file, port=%q", cfg.Port)
	}
	if cfg.DB.Path != "/tmp/device.db" || cfg.Network.Addr != "127.0.0.1:7000" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Auth.SigningKey != "secret" {
		t.Fatalf("signing key: %q", cfg.Auth.SigningKey)
	}
	ec := cfg.EngineTimeouts()
	if ec.ErrorTimeout != 4*time.Second || ec.CancelTimeout != 250*time.Millisecond {
		t.Fatalf("engine timeouts: error=%v cancel=%v", ec.ErrorTimeout, ec.CancelTimeout)
	}
	if ec.ReadTimeout != 1500*time.Millisecond {
		t.Fatalf("read timeout: %v", ec.ReadTimeout)
	}
	if ec.ConfirmTimeout != 15*time.Second {
		t.Fatalf("unset keys keep defaults, confirm=%v", ec.ConfirmTimeout)
	}
	if cfg.Scale.Threshold != 2.5 || cfg.Scale.ReleaseBand != 20 {
		t.Fatalf("scale: %+v", cfg.Scale)
	}
}

func TestLoad_RequiresSigningKey(t *testing.T) {
	t.Setenv("SMARTCLOTH_AUTH_SIGNING_KEY", "")

	if _, err := Load(""); !errors.Is(err, ErrNoSigningKey) {
		t.Fatalf("expected ErrNoSigningKey with defaults only, got %v", err)
	}

	path := writeConfig(t, "auth:\n  signing_key: \"  \"\n")
	if _, err := Load(path); !errors.Is(err, ErrNoSigningKey) {
		t.Fatalf("expected ErrNoSigningKey for a blank key, got %v", err)
	}

	path = writeConfig(t, "auth:\n  signing_key: from-file\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServiceAuth().SigningKey != "from-file" {
		t.Fatalf("signing key: %q", cfg.Auth.SigningKey)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("SMARTCLOTH_AUTH_SIGNING_KEY", "secret")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("expected error for an explicit missing file")
	}

	path := writeConfig(t, "engine:\n  tick: 0s\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for a zero tick")
	}

	path = writeConfig(t, "scale:\n  threshold: -1\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for a negative threshold")
	}
}
