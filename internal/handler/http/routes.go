package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// every endpoint of the key service requires a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/crypto/generate-keypair", h.generateKeyPair)
		r.Post("/api/crypto/public-key", h.publishPublicKey)
		r.Get("/api/crypto/public-key/{accountID}", h.lookupPublicKey)
		r.Post("/api/messages/decrypt-preview", h.decryptPreview)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
