package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

type appInfoService struct {
	version string

	logger *logger.Logger
}

// NewAppInfoService constructs an [AppInfoService] that reports the version
// from the application configuration.
func NewAppInfoService(appCfg config.App, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		version: appCfg.Version,
		logger:  logger,
	}
}

// GetAppVersion implements [AppInfoService].
func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
