package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/shieldledger-backend/internal/metrics"
	"github.com/goodnatureofminers/shieldledger-backend/internal/store"
	"github.com/goodnatureofminers/shieldledger-backend/internal/store/badger"
	"github.com/goodnatureofminers/shieldledger-backend/internal/store/clickhouse"
	"github.com/goodnatureofminers/shieldledger-backend/internal/store/memory"
)

func openStore(cfg config, logger *zap.Logger) (store.ChainStore, error) {
	var (
		chain store.ChainStore
		err   error
	)
	switch cfg.Store {
	case "memory":
		chain = memory.New()
	case "badger":
		chain, err = badger.Open(badger.Options{
			Path:       cfg.BadgerPath,
			SyncWrites: cfg.BadgerSync,
		}, logger.Named("badger"), metrics.NewChainStore("badger"))
	case "clickhouse":
		if cfg.ClickhouseDSN == "" {
			return nil, fmt.Errorf("clickhouse dsn is required for store %q", cfg.Store)
		}
		chain, err = clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewChainStore("clickhouse"))
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s store: %w", cfg.Store, err)
	}

	if cfg.CacheSize <= 0 || cfg.Store == "memory" {
		return chain, nil
	}
	cached, err := store.NewCached(chain, cfg.CacheSize, metrics.NewCache())
	if err != nil {
		return nil, fmt.Errorf("init block cache: %w", err)
	}
	return cached, nil
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
