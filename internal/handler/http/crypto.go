package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/app"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/service"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/utils"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

func (h *Handler) generateKeyPair(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	pair, err := h.services.KeyIssueService.IssueKeyPair(ctx)
	if err != nil {
		log.Err(err).Msg("keypair issuance failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}

func (h *Handler) publishPublicKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.PublishKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.DirectoryService.Publish(ctx, req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid publish request")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during key publication")
			http.Error(w, app.MsgInternalServerError, statusFromError(err))
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) lookupPublicKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID := chi.URLParam(r, "accountID")
	if accountID == "" {
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	resp, err := h.services.DirectoryService.Lookup(ctx, accountID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrKeyNotPublished):
			log.Err(err).Str("accountID", accountID).Msg("no key published")
			http.Error(w, app.MsgKeyNotPublished, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("accountID", accountID).Msg("unexpected error occurred during key lookup")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
