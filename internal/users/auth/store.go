// Copyright (c) 2026 Syllabase. All rights reserved.
// Author: duc.tran.canh@gmail.com

package auth

import "context"

// UserRepository is the credential store contract of the identity layer.
//
// # Semantics
//
//   - Create persists a new account whose PasswordHash is already a bcrypt
//     digest; it must never receive plaintext.
//   - FindByEmail matches case-insensitively, mirroring the unique index on
//     LOWER(email).
//   - Lookups for missing rows return an [apperr.AppError] with NOT_FOUND
//     semantics rather than a raw storage error.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}
