package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/app"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/crypto"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/service"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/utils"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

func (h *Handler) decryptPreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DecryptPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.PreviewService.DecryptPreview(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid preview request")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, crypto.ErrExpired):
			http.Error(w, app.MsgEnvelopeExpired, http.StatusGone)
			return
		case errors.Is(err, crypto.ErrUnsupportedVersion):
			http.Error(w, app.MsgUnsupportedVersion, http.StatusBadRequest)
			return
		case errors.Is(err, crypto.ErrMalformedEnvelope):
			http.Error(w, app.MsgEnvelopeMalformed, http.StatusBadRequest)
			return
		case errors.Is(err, crypto.ErrKeyUnwrapFailed), errors.Is(err, crypto.ErrAuthenticationFailed):
			// Wrong key and tampered envelope are deliberately reported alike.
			log.Err(err).Str("messageID", req.Envelope.MessageID).Msg("preview decryption rejected")
			http.Error(w, app.MsgDecryptionFailed, http.StatusUnprocessableEntity)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during preview decryption")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
