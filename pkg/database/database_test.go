package database_test

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/sustainassess/pkg/database"
)

func TestFinalizeDefaults(t *testing.T) {
	var cfg database.Config
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	want := "postgres://sustainassess:@localhost:5432/sustainassess?sslmode=disable"
	if got := cfg.URL(); got != want {
		t.Errorf("url: got %s, want %s", got, want)
	}
	if cfg.MaxOpenConns != 25 || cfg.MaxIdleConns != 5 {
		t.Errorf("pool: got %d/%d", cfg.MaxOpenConns, cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetimeDuration() != 15*time.Minute || cfg.ConnTimeoutDuration() != 5*time.Second {
		t.Errorf("durations: got %v/%v", cfg.ConnMaxLifetimeDuration(), cfg.ConnTimeoutDuration())
	}
}

func TestFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db.internal")
	t.Setenv("TEST_DB_PORT", "6543")
	t.Setenv("TEST_DB_PASSWORD", "s3cret")
	t.Setenv("TEST_DB_MAX_OPEN", "50")

	env := &database.Env{
		Host:         "TEST_DB_HOST",
		Port:         "TEST_DB_PORT",
		Password:     "TEST_DB_PASSWORD",
		MaxOpenConns: "TEST_DB_MAX_OPEN",
	}

	var cfg database.Config
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	want := "host=db.internal port=6543 dbname=sustainassess user=sustainassess password=s3cret sslmode=disable"
	if got := cfg.Dsn(); got != want {
		t.Errorf("dsn: got %s, want %s", got, want)
	}
	if cfg.MaxOpenConns != 50 {
		t.Errorf("max_open_conns: got %d, want 50", cfg.MaxOpenConns)
	}
}

func TestFinalizeValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     database.Config
		wantErr string
	}{
		{"idle exceeds open", database.Config{MaxOpenConns: 2, MaxIdleConns: 4}, "exceeds max_open_conns"},
		{"invalid conn_max_lifetime", database.Config{ConnMaxLifetime: "bad"}, "invalid conn_max_lifetime"},
		{"invalid conn_timeout", database.Config{ConnTimeout: "bad"}, "invalid conn_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize(nil)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := database.Config{Host: "localhost", Port: 5432, Name: "basedb", User: "baseuser", MaxOpenConns: 25}
	base.Merge(&database.Config{Host: "remotehost", Port: 5433})

	if base.Host != "remotehost" || base.Port != 5433 {
		t.Errorf("overlay not applied: %s:%d", base.Host, base.Port)
	}
	if base.Name != "basedb" || base.User != "baseuser" || base.MaxOpenConns != 25 {
		t.Errorf("zero overlay fields should preserve base: %+v", base)
	}
}

func TestNewNotReadyBeforeStart(t *testing.T) {
	var cfg database.Config
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	db, err := database.New(&cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer db.Connection().Close()

	if db.Ready() {
		t.Error("database should not report ready before the startup ping")
	}
	if stats := db.Connection().Stats(); stats.MaxOpenConnections != 25 {
		t.Errorf("max open connections: got %d, want 25", stats.MaxOpenConnections)
	}
}
