package service

import (
	"context"

	"github.com/MKhiriev/go-type-keeper/internal/config"
	"github.com/MKhiriev/go-type-keeper/internal/logger"
)

// appInfoService reports the build version the server was started with.
type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService fails with [ErrVersionIsNotSpecified] when cfg carries no
// version; the version endpoint has nothing to report without one.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", cfg.Version).Msg("app info service created")
	return &appInfoService{version: cfg.Version, logger: logger}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
