// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/coach-courier/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateServiceToken creates a signed HMAC-SHA256 JWT for an internal
// caller of the trigger API.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the calling service name
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateServiceToken(issuer, caller string, tokenDuration time.Duration, signKey string) (models.ServiceToken, error) {
	if issuer == "" || caller == "" || tokenDuration == 0 || signKey == "" {
		return models.ServiceToken{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   caller,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.ServiceToken{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.ServiceToken{Token: token, SignedString: tokenString, Caller: caller}, nil
}

// ValidateAndParseServiceToken validates the given JWT token string and
// extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence (the calling service name)
func ValidateAndParseServiceToken(tokenString, tokenSignKey, tokenIssuer string) (models.ServiceToken, error) {
	serviceToken := &models.ServiceToken{}
	token, err := jwt.ParseWithClaims(tokenString, &serviceToken.RegisteredClaims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.ServiceToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	serviceToken.Token = token

	caller, err := serviceToken.GetCaller()
	if err != nil {
		return models.ServiceToken{}, err
	}
	if caller == "" {
		return models.ServiceToken{}, errors.New("empty subject error")
	}
	serviceToken.Caller = caller

	return *serviceToken, nil
}

// ParseBearerToken extracts the token part of an "Authorization: Bearer x"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
