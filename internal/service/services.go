package service

import (
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	PersonService  PersonService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.Auth, logger),
		PersonService: NewPersonValidationService().
			Wrap(NewPersonService(storages.PersonRepository, logger)),
		AppInfoService: NewAppInfoService(cfg.App, logger),
	}
}
