package company

import (
	"github.com/hirestack/company-portal/internal/company/domain"
	"github.com/hirestack/company-portal/internal/company/grpcclient"
	"github.com/hirestack/company-portal/internal/company/stub"
	"github.com/hirestack/company-portal/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewDirectory selects the directory implementation by configuration: the
// in-memory stub by default, the gRPC backend when the operations exist
// server-side.
func NewDirectory(cfg config.Config, backend *grpcclient.Backend, log *zap.Logger) domain.Directory {
	if cfg.DirectoryBackend == config.DirectoryBackendGRPC {
		log.Info("directory backend: grpc")
		return grpcclient.NewDirectory(backend)
	}
	log.Info("directory backend: in-memory stub")
	return stub.NewDirectory()
}

// Module wires the company backend service and directory.
var Module = fx.Module("company",
	grpcclient.Module,
	fx.Provide(NewDirectory),
)
