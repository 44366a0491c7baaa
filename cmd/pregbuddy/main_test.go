package main

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("PREGBUDDY_TEST_KEY", "set")
	if got := getEnv("PREGBUDDY_TEST_KEY", "fallback"); got != "set" {
		t.Fatalf("getEnv with value = %q, want set", got)
	}

	t.Setenv("PREGBUDDY_TEST_KEY", "")
	if got := getEnv("PREGBUDDY_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv without value = %q, want fallback", got)
	}
}

func TestMustLoadLocation(t *testing.T) {
	if got := mustLoadLocation("UTC"); got != time.UTC {
		t.Fatalf("mustLoadLocation(UTC) = %v", got)
	}
	if got := mustLoadLocation("Not/AZone"); got != time.UTC {
		t.Fatalf("invalid zone must fall back to UTC, got %v", got)
	}
}
