package config

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("QUERYKIT_ENDPOINT", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DialTimeout != 5*time.Second {
		t.Errorf("expected 5s dial timeout, got %v", cfg.DialTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %q", cfg.LogLevel)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("QUERYKIT_ENDPOINT", "ledger:9000")
	t.Setenv("QUERYKIT_CREATOR", "alice@test")
	t.Setenv("QUERYKIT_DIAL_TIMEOUT", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Endpoint != "ledger:9000" || cfg.Creator != "alice@test" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.DialTimeout != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", cfg.DialTimeout)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("QUERYKIT_DIAL_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestConfig_Signer(t *testing.T) {
	if _, err := (Config{}).Signer(); err == nil {
		t.Fatal("expected error for missing seed")
	}
	if _, err := (Config{SignerSeed: "zz"}).Signer(); err == nil {
		t.Fatal("expected error for bad hex")
	}
	k, err := (Config{SignerSeed: strings.Repeat("ab", 32)}).Signer()
	if err != nil {
		t.Fatalf("Signer: %v", err)
	}
	if len(k.PublicKey()) != 32 {
		t.Fatalf("unexpected public key length %d", len(k.PublicKey()))
	}
}

func TestConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	l, err := (Config{LogLevel: "warn"}).Logger(&buf)
	if err != nil {
		t.Fatalf("Logger: %v", err)
	}
	l.Info("hidden")
	l.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected log output %q", buf.String())
	}

	if _, err := (Config{LogLevel: "loud"}).Logger(&buf); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
