// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/market-pulse/internal/app"
	"github.com/MKhiriev/market-pulse/internal/catalog"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/market"
	"github.com/MKhiriev/market-pulse/internal/service"
	"github.com/MKhiriev/market-pulse/internal/store"
	"github.com/MKhiriev/market-pulse/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidRange:            http.StatusBadRequest,
	service.ErrInvalidSource:           http.StatusBadRequest,
	market.ErrInvalidSymbol:            http.StatusBadRequest,
	market.ErrInvalidAmount:            http.StatusBadRequest,
	service.ErrNoAccountFound:          http.StatusUnauthorized,
	service.ErrIncorrectPassword:       http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,
	catalog.ErrAssetNotFound:           http.StatusNotFound,
	service.ErrSignUpNotImplemented:    http.StatusNotImplemented,
	service.ErrKeyGenerationFailed:     http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrEncodingValue:    http.StatusInternalServerError,
}

// errorMessageMap holds the body written for an error. Forbidden errors
// carry the guard's reason and are written as is.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	service.ErrInvalidRange:            app.MsgInvalidRange,
	service.ErrInvalidSource:           app.MsgInvalidSource,
	market.ErrInvalidSymbol:            app.MsgInvalidSymbol,
	market.ErrInvalidAmount:            app.MsgInvalidAmount,
	service.ErrNoAccountFound:          app.MsgNoAccountFound,
	service.ErrIncorrectPassword:       app.MsgIncorrectPassword,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	catalog.ErrAssetNotFound:           app.MsgAssetNotFound,
	service.ErrSignUpNotImplemented:    app.MsgSignUpPlaceholder,
	service.ErrKeyGenerationFailed:     app.MsgKeyGenerationFailed,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	if errors.Is(err, service.ErrForbidden) {
		return err.Error()
	}
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeServiceError logs err and writes its mapped status and message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Info().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, messageFromError(err), status)
}
