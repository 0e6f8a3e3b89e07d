package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("BOOKING_HOLD_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.StoreDriver != DriverPostgres {
		t.Fatalf("store driver = %q, want %q", cfg.StoreDriver, DriverPostgres)
	}
	if cfg.BookingHoldTTL != 0 {
		t.Fatalf("hold ttl = %v, want 0", cfg.BookingHoldTTL)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("addr = %q, want %q", cfg.Addr(), ":8080")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BOOKING_HOLD_TTL", "2h")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.StoreDriver != DriverMemory {
		t.Fatalf("store driver = %q, want %q", cfg.StoreDriver, DriverMemory)
	}
	if cfg.ServerPort != "9090" {
		t.Fatalf("port = %q", cfg.ServerPort)
	}
	if cfg.BookingHoldTTL != 2*time.Hour {
		t.Fatalf("hold ttl = %v, want 2h", cfg.BookingHoldTTL)
	}
	origins := cfg.AllowedOrigins()
	if len(origins) != 2 || origins[1] != "https://b.example" {
		t.Fatalf("origins = %v", origins)
	}
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid driver")
	}
}
