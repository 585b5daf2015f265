package service

import (
	"github.com/MKhiriev/go-type-keeper/internal/config"
	"github.com/MKhiriev/go-type-keeper/internal/logger"
)

type Services struct {
	ValidationService ValidationService
	AppInfoService    AppInfoService
}

func NewServices(registry TypeRegistry, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validationService, err := NewValidationService(registry, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ValidationService: validationService,
		AppInfoService:    appInfoService,
	}, nil
}
