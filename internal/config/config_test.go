package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calyx-ui/calyx/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeConfig(t, `
name = "demo"

[server]
host = "0.0.0.0"
port = 8080
dev = true
metrics = true

[build]
output = "out"

[deploy]
bucket = "demo-site"
region = "us-east-1"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "demo" {
		t.Fatalf("Name = %q", cfg.Name)
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 8080 {
		t.Fatalf("Server = %+v", cfg.Server)
	}
	if !cfg.Server.Metrics {
		t.Fatal("metrics flag lost")
	}
	if cfg.Build.Output != "out" {
		t.Fatalf("Build.Output = %q", cfg.Build.Output)
	}
	if cfg.Deploy.Bucket != "demo-site" || cfg.Deploy.Region != "us-east-1" {
		t.Fatalf("Deploy = %+v", cfg.Deploy)
	}
	if cfg.Dir() != dir {
		t.Fatalf("Dir = %q, want %q", cfg.Dir(), dir)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := writeConfig(t, `name = "demo"`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != DefaultHost || cfg.Server.Port != DefaultPort {
		t.Fatalf("server defaults not applied: %+v", cfg.Server)
	}
	if cfg.Build.Output != DefaultOutput {
		t.Fatalf("Build.Output = %q", cfg.Build.Output)
	}
	if cfg.Static.Dir != "public" || cfg.Static.Prefix != "/static/" {
		t.Fatalf("static defaults not applied: %+v", cfg.Static)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error")
	}
	ce, ok := err.(*errors.CalyxError)
	if !ok || ce.Code != "C080" {
		t.Fatalf("got %v, want C080", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := writeConfig(t, `name = [broken`)

	_, err := Load(dir)
	ce, ok := err.(*errors.CalyxError)
	if !ok || ce.Code != "C060" {
		t.Fatalf("got %v, want C060", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	cfg := New()
	cfg.Name = "demo"
	cfg.Deploy.Bucket = "demo-site"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Name != "demo" || loaded.Deploy.Bucket != "demo-site" {
		t.Fatalf("round trip lost fields: %+v", loaded)
	}
}

func TestSaveWithoutPath(t *testing.T) {
	if err := New().Save(); err == nil {
		t.Fatal("Save without a load path should fail")
	}
}

func TestValidate(t *testing.T) {
	cfg := New()
	cfg.Name = "demo"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg.Server.Port = 70000
	err := cfg.Validate()
	ce, ok := err.(*errors.CalyxError)
	if !ok || ce.Code != "C062" {
		t.Fatalf("got %v, want C062", err)
	}

	cfg = New()
	err = cfg.Validate()
	ce, ok = err.(*errors.CalyxError)
	if !ok || ce.Code != "C061" {
		t.Fatalf("got %v, want C061", err)
	}
}

func TestAddr(t *testing.T) {
	cfg := New()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 4000
	if got := cfg.Addr(); got != "127.0.0.1:4000" {
		t.Fatalf("Addr = %q", got)
	}
	if got := (&Config{}).Addr(); !strings.HasPrefix(got, DefaultHost+":") {
		t.Fatalf("Addr = %q", got)
	}
}
