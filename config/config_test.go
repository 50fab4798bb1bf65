package config

import "testing"

func TestGetEnvFallback(t *testing.T) {
	if got := GetEnv("FOODSHARE_TEST_UNSET", "default"); got != "default" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestGetEnvSet(t *testing.T) {
	t.Setenv("FOODSHARE_TEST_KEY", "value")
	if got := GetEnv("FOODSHARE_TEST_KEY", "default"); got != "value" {
		t.Fatalf("expected env value to win, got %q", got)
	}
}

func TestGetEnvEmptyUsesFallback(t *testing.T) {
	t.Setenv("FOODSHARE_TEST_EMPTY", "")
	if got := GetEnv("FOODSHARE_TEST_EMPTY", "default"); got != "default" {
		t.Fatalf("expected fallback for empty value, got %q", got)
	}
}
