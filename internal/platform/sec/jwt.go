// Copyright (c) 2026 Syllabase. All rights reserved.
// Author: duc.tran.canh@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces ([TokenVerifier] in middleware,
// TokenIssuer in the auth service).
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside a JWT access token.
//
// The custom claim is deliberately minimal: a single identity reference.
// Everything else about the account is resolved from the credential store
// per request, so a stale token can never resurrect deleted profile data.
type AuthClaims struct {
	jwt.RegisteredClaims

	// UserID is the identity reference of the account the token was issued for.
	UserID string `json:"user_id"`
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// # Concurrency
//
// The signing secret and issuer are established once at startup and never
// mutated, so a single TokenService is safe for concurrent use by every
// request handler.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a new TokenService.
//
// The secret is a configuration value injected at startup — it must never be
// a literal in source. An empty secret is refused outright.
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: signing secret must not be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("sec: token ttl must be positive, got %s", ttl)
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// IssueToken creates a new signed JWT access token for the given account.
//
// # Wire Format
//
// Standard three-segment compact JWT: base64url(header).base64url(payload).signature,
// signed with HMAC-SHA256 over header+payload.
func (service *TokenService) IssueToken(userID string) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
//
// # Algorithm Pinning
//
// The verifier never trusts the token's own "alg" header to select the
// verification method. Accepting only HS256 defends against downgrade
// forgeries such as the "none" algorithm or an RS256/HS256 confusion.
//
// All failures — malformed structure, bad signature, wrong secret, expired
// claims — are returned as error values. This function never panics.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return service.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
