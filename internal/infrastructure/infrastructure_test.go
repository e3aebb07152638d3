package infrastructure_test

import (
	"testing"

	"github.com/JaimeStill/sustainassess/internal/config"
	"github.com/JaimeStill/sustainassess/internal/infrastructure"
	"github.com/JaimeStill/sustainassess/pkg/storage"
)

func validConfig() *config.Config {
	cfg := &config.Config{
		Storage: storage.Config{Provider: storage.ProviderMemory},
	}
	if err := cfg.Database.Finalize(nil); err != nil {
		panic(err)
	}
	return cfg
}

func TestNew(t *testing.T) {
	infra, err := infrastructure.New(validConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer infra.Database.Connection().Close()

	if infra.Lifecycle == nil || infra.Logger == nil || infra.Database == nil || infra.Storage == nil {
		t.Fatalf("incomplete infrastructure: %+v", infra)
	}
	if _, ok := infra.Storage.(*storage.Memory); !ok {
		t.Errorf("storage: got %T, want *storage.Memory", infra.Storage)
	}
}

func TestNewInvalidStorageConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Storage = storage.Config{
		Provider:         storage.ProviderAzure,
		ContainerName:    "evidence",
		ConnectionString: "not-a-connection-string",
	}

	if _, err := infrastructure.New(cfg); err == nil {
		t.Fatal("expected error for invalid storage connection string")
	}
}
