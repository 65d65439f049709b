package service

import (
	"context"

	"github.com/MKhiriev/coach-courier/internal/config"
	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/internal/utils"
	"github.com/MKhiriev/coach-courier/models"
)

// tokenService is the concrete implementation of [TokenService].
type tokenService struct {
	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

// NewTokenService constructs the service-token validator from the
// application security parameters.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ParseToken implements [TokenService]. Any validation failure (expired,
// wrong issuer, malformed, bad signature) is normalised to
// [ErrTokenIsExpiredOrInvalid] so that callers do not need to inspect
// low-level JWT errors.
func (t *tokenService) ParseToken(ctx context.Context, tokenString string) (models.ServiceToken, error) {
	token, err := utils.ValidateAndParseServiceToken(tokenString, t.tokenSignKey, t.tokenIssuer)
	if err != nil {
		return models.ServiceToken{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
