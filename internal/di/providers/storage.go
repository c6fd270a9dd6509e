package providers

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/do/v2"

	"github.com/appengine-ltd/podo-rush/internal/config"
	"github.com/appengine-ltd/podo-rush/internal/store"
	"github.com/appengine-ltd/podo-rush/internal/store/sqlite"
)

// StoreHandle wraps the configured backend with shutdown capability.
type StoreHandle struct {
	store.KV
	Backend string
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	kv, err := openStore(cfg, log)
	if err != nil {
		return nil, err
	}
	log.Info("store opened", "backend", cfg.Storage.Backend, "data_dir", cfg.App.DataDir)
	return &StoreHandle{KV: kv, Backend: cfg.Storage.Backend}, nil
}

func openStore(cfg *config.Config, log *slog.Logger) (store.KV, error) {
	if cfg.Storage.Backend == config.StoreMemory {
		return store.NewMemory(), nil
	}
	if err := os.MkdirAll(cfg.App.DataDir, 0o750); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	switch cfg.Storage.Backend {
	case config.StoreSQLite:
		return sqlite.Open(cfg.SQLitePath(), log)
	case config.StoreBadger:
		return store.OpenBadger(cfg.BadgerDir(), log)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Storage.Backend)
	}
}
