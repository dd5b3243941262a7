//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"context"

	"github.com/google/wire"

	"github.com/zeusync/gnr/internal/config"
	"github.com/zeusync/gnr/internal/core/schema/registry"
	"github.com/zeusync/gnr/internal/store"
)

func InitializeCodec(cfg config.Config) (*registry.Codec, func(), error) {
	wire.Build(ProvideLogger, ProvideCodec)
	return nil, nil, nil
}

func InitializeStore(ctx context.Context, cfg config.Config) (*store.Store, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
