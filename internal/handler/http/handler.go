package http

import (
	"github.com/MKhiriev/go-type-keeper/internal/config"
	"github.com/MKhiriev/go-type-keeper/internal/logger"
	"github.com/MKhiriev/go-type-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	maxBodyBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		maxBodyBytes: cfg.MaxBodyBytes,
		logger:       logger,
	}
}
