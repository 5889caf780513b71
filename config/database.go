package config

import (
	"context"

	"ormcheatsheet/pkg/logger"
	"ormcheatsheet/services/store"
)

// OpenStore starts the in-memory store described by Cfg.
func OpenStore(ctx context.Context) (*store.Store, error) {
	logger.Infof("Opening in-memory store %s on %s:%d", Cfg.StoreDBName, Cfg.StoreHost, Cfg.StorePort)

	st, err := store.Open(ctx, store.Options{
		Database:       Cfg.StoreDBName,
		Host:           Cfg.StoreHost,
		Port:           Cfg.StorePort,
		MaxOpenConns:   Cfg.StoreMaxOpenConns,
		StartupTimeout: Cfg.StoreStartupTimeout,
		Logger:         logger.NewGormLogger(Cfg.EnableSQLTrace, Cfg.SlowQueryThreshold),
	})
	if err != nil {
		logger.Errorf("Store startup failed: %v", err)
		return nil, err
	}
	logger.Infof("Store %s ready at %s", st.ID, st.Addr)
	return st, nil
}
