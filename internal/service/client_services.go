package service

import (
	"github.com/MKhiriev/go-movie-client/internal/adapter"
	"github.com/MKhiriev/go-movie-client/internal/logger"
	"github.com/MKhiriev/go-movie-client/internal/store"
)

type ClientServices struct {
	CatalogService ClientCatalogService
	SessionService ClientSessionService
}

func NewClientServices(storages *store.ClientStorages, api adapter.MovieAPI, logger *logger.Logger) *ClientServices {
	catalogSvc := NewClientCatalogService(api, logger)
	sessionSvc := NewClientSessionService(catalogSvc, storages.SessionStore, logger)

	return &ClientServices{
		CatalogService: catalogSvc,
		SessionService: sessionSvc,
	}
}
