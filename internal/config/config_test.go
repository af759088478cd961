package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.APIPort != "3000" {
		t.Errorf("expected default port 3000, got %s", cfg.APIPort)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected default session TTL 24h, got %s", cfg.SessionTTL)
	}
	if cfg.SessionCookieName != "pp_session" {
		t.Errorf("expected default cookie name pp_session, got %s", cfg.SessionCookieName)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT_OK", "42")
	t.Setenv("TEST_INT_BAD", "not-a-number")

	if v := getEnvInt("TEST_INT_OK", 7); v != 42 {
		t.Errorf("expected 42, got %d", v)
	}
	if v := getEnvInt("TEST_INT_BAD", 7); v != 7 {
		t.Errorf("expected fallback 7 for unparseable value, got %d", v)
	}
	if v := getEnvInt("TEST_INT_MISSING", 7); v != 7 {
		t.Errorf("expected fallback 7 for missing key, got %d", v)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL_OK", "true")
	t.Setenv("TEST_BOOL_BAD", "yep")

	if !getEnvBool("TEST_BOOL_OK", false) {
		t.Error("expected true")
	}
	if getEnvBool("TEST_BOOL_BAD", false) {
		t.Error("expected fallback false for unparseable value")
	}
}
