package http

import (
	"errors"
	"net/http"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/crypto"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/service"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrKeyNotPublished:     http.StatusNotFound,

	crypto.ErrExpired:              http.StatusGone,
	crypto.ErrUnsupportedVersion:   http.StatusBadRequest,
	crypto.ErrMalformedEnvelope:    http.StatusBadRequest,
	crypto.ErrKeyUnwrapFailed:      http.StatusUnprocessableEntity,
	crypto.ErrAuthenticationFailed: http.StatusUnprocessableEntity,

	store.ErrDirectoryEntryNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
