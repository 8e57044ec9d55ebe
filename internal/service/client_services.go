// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/market-pulse/internal/adapter"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/store"
)

// ClientServices is the service container of the terminal client.
type ClientServices struct {
	SessionService ClientSessionService
	DataService    ClientDataService
}

func NewClientServices(local store.LocalRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService: NewClientSessionService(local, serverAdapter, logger),
		DataService:    NewClientDataService(serverAdapter, logger),
	}
}
