package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("EVENTS_DRIVER", "")

	cfg := Load()
	if cfg.HTTPAddr != ":5000" {
		t.Fatalf("HTTPAddr=%q", cfg.HTTPAddr)
	}
	if cfg.JWTTTL != 7*24*time.Hour {
		t.Fatalf("JWTTTL=%s", cfg.JWTTTL)
	}
	if cfg.EventsDriver != "none" {
		t.Fatalf("EventsDriver=%q", cfg.EventsDriver)
	}
}

func TestLoad_SecretFromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "jwt")
	if err := os.WriteFile(p, []byte("  s3cr3t\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("JWT_SECRET_FILE", p)
	t.Setenv("JWT_SECRET", "ignored")

	if got := Load().JWTSecret; got != "s3cr3t" {
		t.Fatalf("JWTSecret=%q", got)
	}
}

func TestLoad_KafkaBrokersList(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "a:9092, b:9092,,")
	got := Load().KafkaBrokers
	if len(got) != 2 || got[0] != "a:9092" || got[1] != "b:9092" {
		t.Fatalf("brokers=%v", got)
	}
}
