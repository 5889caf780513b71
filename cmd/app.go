package cmd

import (
	"context"
	"fmt"

	"ormcheatsheet/bootstrap"
	"ormcheatsheet/config"
	"ormcheatsheet/pkg/logger"
	"ormcheatsheet/services/catalog"
	"ormcheatsheet/services/dataset"
	"ormcheatsheet/services/job"
	"ormcheatsheet/services/store"
	"ormcheatsheet/services/tables"
)

// app is the loaded dataset, its store and the services over it.
type app struct {
	Dataset *dataset.Dataset
	Store   *store.Store
	History *job.RunHistory
	Queries catalog.Service
	Tables  tables.Service
}

// openApp generates the dataset from config, starts the store and loads it.
func openApp(ctx context.Context) (*app, error) {
	ds, err := dataset.Generate(dataset.Options{
		Seed:        config.Cfg.DatasetSeed,
		PolicyCount: config.Cfg.PolicyCount,
		ClaimCount:  config.Cfg.ClaimCount,
	})
	if err != nil {
		return nil, err
	}
	logger.Infof("Generated dataset: seed=%d, policies=%d, claims=%d", ds.Seed, len(ds.Policies), len(ds.Claims))

	st, err := config.OpenStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("OpenStore error: %w", err)
	}
	if err := bootstrap.LoadData(ctx, st.DB, ds); err != nil {
		st.Close()
		return nil, fmt.Errorf("load data error: %w", err)
	}

	history := job.NewRunHistory(config.Cfg.RunHistorySize)
	return &app{
		Dataset: ds,
		Store:   st,
		History: history,
		Queries: catalog.NewQueryService(st, catalog.WithHistory(history)),
		Tables:  tables.NewTableService(st),
	}, nil
}

func (a *app) Close() {
	if err := a.Store.Close(); err != nil {
		logger.Warnf("Store close failed: %v", err)
	}
}
