package service

import (
	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
)

type ClientServices struct {
	AuthService   ClientAuthService
	PersonService ClientPersonService
	SyncService   ClientSyncService
	SyncJob       ClientSyncJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(localStore.SessionRepository, serverAdapter, cfg.Auth, logger)
	personSvc := NewClientPersonService(localStore.PersonRepository, logger)
	syncSvc := NewClientSyncService(localStore.PersonRepository, serverAdapter, logger)

	return &ClientServices{
		AuthService:   authSvc,
		PersonService: personSvc,
		SyncService:   syncSvc,
		SyncJob:       NewClientSyncJob(syncSvc),
	}
}
