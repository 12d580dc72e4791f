// Copyright (c) 2026 Syllabase. All rights reserved.
// Author: duc.tran.canh@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/ductran/syllabase/internal/platform/apperr"
	"github.com/ductran/syllabase/internal/platform/constants"
	"github.com/ductran/syllabase/internal/platform/sec"
	"github.com/ductran/syllabase/pkg/uuidv7"
)

// TokenIssuer defines the contract for generating signed bearer tokens.
//
// # Parameters
//   - userID: The identity reference embedded as the token claim.
//
// # Returns
//   - A signed compact token string, or an error if signing fails.
type TokenIssuer interface {
	IssueToken(userID string) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully: the generic login failure contract
// is what prevents account enumeration.
type Service struct {
	userRepository UserRepository
	tokenIssuer    TokenIssuer
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, issuer TokenIssuer) *Service {
	return &Service{
		userRepository: userRepo,
		tokenIssuer:    issuer,
	}
}

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Bio       string
	AvatarURL string
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// AuthSession represents a successfully established stateless session:
// the account plus the bearer token that proves it.
type AuthSession struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Register validates, hashes, and persists a brand new user account,
// then issues a token so the client is logged in immediately.
//
// # Business Rules
//   - Emails must be unique, compared case-insensitively.
//   - The plaintext password is bcrypt-hashed before it ever reaches storage.
//   - No password strength policy is applied beyond presence.
//
// # Returns
//   - [*AuthSession] with the created user and a fresh token.
//   - [apperr.Conflict] if the email already exists.
func (service *Service) Register(ctx context.Context, input RegisterInput) (*AuthSession, error) {
	// ── 1. Uniqueness Check ───────────────────────────────────────────────

	// Verify email uniqueness. Return a client-safe Conflict error.
	// The unique index on LOWER(email) backstops this under concurrency.
	_, err := service.userRepository.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// ── 2. Security ───────────────────────────────────────────────────────

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// ── 3. Entity Construction ────────────────────────────────────────────

	user := &User{
		ID:           uuidv7.New(), // Time-sortable ID to prevent PG index fragmentation.
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Bio:          input.Bio,
		AvatarURL:    input.AvatarURL,
	}

	// ── 4. Persistence ────────────────────────────────────────────────────

	if err := service.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}

	// ── 5. Token Issuance ─────────────────────────────────────────────────

	token, err := service.tokenIssuer.IssueToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &AuthSession{Token: token, User: user}, nil
}

// Login validates user credentials and issues a bearer token.
//
// # Flow
//  1. Look up user by email (case-insensitive).
//  2. Verify password hash using bcrypt.
//  3. Issue a signed token carrying the identity reference.
//
// # Enumeration Resistance
//
// "No such email" and "wrong password" both return the exact same
// [apperr.Unauthorized] value, so the two are indistinguishable on the wire.
func (service *Service) Login(ctx context.Context, input LoginInput) (*AuthSession, error) {
	// ── 1. Fetch User Profile ─────────────────────────────────────────────

	user, err := service.userRepository.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized(constants.LoginFailureMessage)
	}

	// ── 2. Security Verification ──────────────────────────────────────────

	// bcrypt performs the digest comparison in constant time.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized(constants.LoginFailureMessage)
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	token, err := service.tokenIssuer.IssueToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &AuthSession{Token: token, User: user}, nil
}
