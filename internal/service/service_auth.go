package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-goal-keeper/internal/config"
	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/internal/utils"
	"github.com/MKhiriev/go-goal-keeper/models"
)

// tokenService is the concrete implementation of TokenService.
// It signs and verifies HS256 JWT tokens whose "sub" claim carries the owner
// identifier.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the server configuration.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewTokenService(cfg config.ServerConfig, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed JWT for ownerID.
//
// Returns ErrInvalidToken for a non-positive owner and ErrTokenCreationFailed
// if signing fails.
func (a *tokenService) CreateToken(ctx context.Context, ownerID int64) (models.Token, error) {
	log := logger.FromContext(ctx)

	if ownerID <= 0 {
		return models.Token{}, ErrInvalidToken
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, ownerID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "tokenService.CreateToken").Int64("owner_id", ownerID).Msg("error creating JWT token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates tokenString and extracts its claims.
//
// Returns ErrTokenIsExpiredOrInvalid for any signature, issuer or expiry
// failure.
func (a *tokenService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "tokenService.ParseToken").Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
