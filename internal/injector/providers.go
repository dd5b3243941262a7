// Package injector assembles the logger, codec and store from a Config.
package injector

import (
	"context"

	"github.com/google/wire"

	"github.com/zeusync/gnr/internal/config"
	"github.com/zeusync/gnr/internal/core/observability/log"
	"github.com/zeusync/gnr/internal/core/schema/registry"
	"github.com/zeusync/gnr/internal/store"
)

var ProviderSet = wire.NewSet(ProvideLogger, ProvideCodec, ProvideStore)

func ProvideLogger(cfg config.Config) (*log.Logger, func(), error) {
	logger, err := log.NewWithOptions(cfg.LogOptions())
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func ProvideCodec(cfg config.Config, logger *log.Logger) (*registry.Codec, error) {
	opts := []registry.Option{registry.WithLogger(logger)}
	if cfg.Codec.StrictVersions {
		opts = append(opts, registry.WithStrictVersions())
	}
	return registry.NewDefault(opts...)
}

// ProvideStore opens the configured database and brings its schema up to date.
func ProvideStore(ctx context.Context, cfg config.Config, logger *log.Logger, codec *registry.Codec) (*store.Store, func(), error) {
	s, err := store.Open(ctx, config.ExpandHome(cfg.Database.Path),
		store.WithLogger(logger),
		store.WithCodec(codec),
		store.WithEcho(cfg.Database.Echo),
		store.WithCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval),
	)
	if err != nil {
		return nil, nil, err
	}
	if _, err = s.Migrate(); err != nil {
		_ = s.Close()
		return nil, nil, err
	}
	return s, func() { _ = s.Close() }, nil
}
