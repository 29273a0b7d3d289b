package xata

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/vectoradapters/std/v1/logger"
	"github.com/vectoradapters/std/v1/vectorstore"
)

// FXModule defines the Fx module for the Xata adapter.
//
// The module:
//  1. Provides NewConfig so the adapter reads its settings from the
//     environment unless the application supplies its own *Config.
//  2. Provides the Store factory, also exposed as vectorstore.Store so
//     application code can stay backend-agnostic.
//  3. Invokes RegisterStoreLifecycle to connect on startup and
//     disconnect on shutdown.
//
// Usage:
//
//	app := fx.New(
//	    xata.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("xata",
	fx.Provide(
		NewConfig,
		NewStoreWithDI,
		func(s *Store) vectorstore.Store { return s },
	),
	fx.Invoke(RegisterStoreLifecycle),
)

// StoreParams groups the dependencies needed to create the Store.
type StoreParams struct {
	fx.In

	Config   *Config
	Logger   *logger.Logger        `optional:"true"`
	Registry prometheus.Registerer `optional:"true"`
}

// NewStoreWithDI creates the Store using dependency injection. The
// logger and prometheus registerer are optional; when absent the store
// logs nowhere and records no metrics.
func NewStoreWithDI(p StoreParams) *Store {
	opts := make([]Option, 0, 2)
	if p.Logger != nil {
		opts = append(opts, WithLogger(p.Logger.Zap))
	}
	if p.Registry != nil {
		opts = append(opts, WithObserver(NewObserver(p.Registry)))
	}
	return NewStore(p.Config, opts...)
}

// RegisterStoreLifecycle connects the store when the application
// starts and disconnects it on shutdown. Connect performs no network
// traffic; the first operation's round trip surfaces reachability.
func RegisterStoreLifecycle(lc fx.Lifecycle, s *Store) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Connect(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return s.Disconnect()
		},
	})
}
