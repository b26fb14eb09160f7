package grpcclient

import (
	"context"

	"github.com/hirestack/company-portal/internal/company/domain"
	"go.uber.org/fx"
)

func registerShutdown(lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = ctx
			Release()
			return nil
		},
	})
}

// Module wires the gRPC backend service.
var Module = fx.Module("company.grpc",
	fx.Provide(
		NewBackend,
		func(b *Backend) domain.Service { return b },
	),
	fx.Invoke(registerShutdown),
)
