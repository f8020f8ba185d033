package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:           http.StatusBadRequest,
	service.ErrWrongPassword:                 http.StatusUnauthorized,
	service.ErrTokenIsExpired:                http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:       http.StatusUnauthorized,
	service.ErrValidationNoPersonsProvided:   http.StatusBadRequest,
	service.ErrValidationNoDeleteIDsProvided: http.StatusBadRequest,
	service.ErrValidationNoUserID:            http.StatusBadRequest,
	service.ErrAccessDenied:                  http.StatusForbidden,
	service.ErrRegisterOnServer:              http.StatusBadGateway,
	service.ErrLoginOnServer:                 http.StatusBadGateway,

	validators.ErrUnknownField:        http.StatusBadRequest,
	validators.ErrInvalidUserID:       http.StatusBadRequest,
	validators.ErrInvalidClientSideID: http.StatusBadRequest,
	validators.ErrEmptyName:           http.StatusBadRequest,
	validators.ErrInvalidIncome:       http.StatusBadRequest,
	validators.ErrInvalidAge:          http.StatusBadRequest,
	validators.ErrEmptyIDs:            http.StatusBadRequest,
	validators.ErrEmptyPersons:        http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrPersonNotSaved:     http.StatusInternalServerError,
	store.ErrPersonNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
