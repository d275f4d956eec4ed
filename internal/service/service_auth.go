package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/config"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/utils"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/models"
)

// authService is the concrete implementation of AuthService.
// It verifies the HMAC-SHA256 JWT bearer tokens presented on authenticated
// key service endpoints.
type authService struct {
	// tokenSignKey is the HMAC secret used to verify JWT signatures.
	tokenSignKey string

	// tokenIssuer is the "iss" claim every accepted token must carry.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService populated with the token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ParseToken validates the signature, issuer and expiry of tokenString and
// returns the parsed token.
//
// Returns:
//   - ErrInvalidDataProvided if tokenString is empty.
//   - ErrTokenIsExpired if the token's expiry time has passed.
//   - A wrapped parsing error for any other validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		log.Error().Msg("empty token string provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		log.Err(err).Msg("token validation failed")
		return models.Token{}, fmt.Errorf("token validation failed: %w", err)
	}

	return token, nil
}
