package storage_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/JaimeStill/sustainassess/pkg/storage"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	if err := store.Upload(ctx, "uploads/COMP000001/a.pdf", strings.NewReader("pdf"), "application/pdf"); err != nil {
		t.Fatalf("upload: %v", err)
	}

	ok, err := store.Exists(ctx, "uploads/COMP000001/a.pdf")
	if err != nil || !ok {
		t.Fatalf("exists = %v, %v", ok, err)
	}

	rc, err := store.Download(ctx, "uploads/COMP000001/a.pdf")
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if string(data) != "pdf" {
		t.Errorf("data = %q", data)
	}
	if ct := store.ContentType("uploads/COMP000001/a.pdf"); ct != "application/pdf" {
		t.Errorf("content type = %s", ct)
	}

	if err := store.Delete(ctx, "uploads/COMP000001/a.pdf"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Download(ctx, "uploads/COMP000001/a.pdf"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("download after delete err = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, "uploads/COMP000001/a.pdf"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestKeyValidation(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	tests := []struct {
		key  string
		want error
	}{
		{"", storage.ErrEmptyKey},
		{"uploads/../secrets", storage.ErrInvalidKey},
		{"..", storage.ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := store.Upload(ctx, tt.key, strings.NewReader("x"), "text/plain")
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if err := store.Upload(ctx, "uploads/report..final.pdf", strings.NewReader("x"), "application/pdf"); err != nil {
		t.Errorf("dots inside a segment should be allowed: %v", err)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{storage.ErrNotFound, http.StatusNotFound},
		{storage.ErrEmptyKey, http.StatusBadRequest},
		{storage.ErrInvalidKey, http.StatusBadRequest},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := storage.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestConfigFinalize(t *testing.T) {
	t.Run("memory needs no connection string", func(t *testing.T) {
		cfg := storage.Config{Provider: storage.ProviderMemory}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("finalize: %v", err)
		}
	})

	t.Run("azure requires connection string", func(t *testing.T) {
		cfg := storage.Config{}
		if err := cfg.Finalize(nil); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("TEST_STORAGE_PROVIDER", "memory")
		cfg := storage.Config{}
		if err := cfg.Finalize(&storage.Env{Provider: "TEST_STORAGE_PROVIDER"}); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		if cfg.Provider != storage.ProviderMemory {
			t.Errorf("provider = %s", cfg.Provider)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := storage.Config{Provider: "s3"}
		if err := cfg.Finalize(nil); err == nil {
			t.Fatal("expected error")
		}
	})
}
