// Copyright (c) 2026 Syllabase. All rights reserved.
// Author: duc.tran.canh@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ductran/syllabase/internal/platform/apperr"
	"github.com/ductran/syllabase/internal/platform/dberr"
)

// PostgresUserRepository implements [UserRepository] using pgx.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE constraint codes) are
// mapped to domain-friendly [apperr.AppError] values so no storage detail
// ever leaks past this boundary.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the [UserRepository].
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

/*
Create persists a new user record into the users_account table.

Parameters:
  - ctx: context.Context
  - user: *User (Entity to persist; PasswordHash must already be a digest)

Returns:
  - error: apperr.Conflict on a duplicate email, apperr.Internal otherwise
*/
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	const query = `
		INSERT INTO users_account (
			id, name, email, password_hash, bio, avatar_url, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Bio,
		user.AvatarURL,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		// The unique index on LOWER(email) is the last line of defense
		// behind the service-level uniqueness pre-check.
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Email is already registered")
		}
		return apperr.Internal(fmt.Errorf("postgres_user_repo_create_failed: %w", err))
	}

	return nil
}

/*
FindByEmail retrieves a user record by their unique email address.

Description: The lookup is case-insensitive, matching the LOWER(email)
unique index that enforces the uniqueness invariant.

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or apperr.Internal
*/
func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	const query = `
		SELECT id, name, email, password_hash, bio, avatar_url, created_at, updated_at
		FROM users_account
		WHERE LOWER(email) = LOWER($1)`

	return repository.scanOne(ctx, query, email)
}

/*
FindByID retrieves a user record by their unique ID.

Description: Primary key resolution for the session resolver. A deleted
account simply stops resolving, which the gate turns into a uniform 401.

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or apperr.Internal
*/
func (repository *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	const query = `
		SELECT id, name, email, password_hash, bio, avatar_url, created_at, updated_at
		FROM users_account
		WHERE id = $1`

	return repository.scanOne(ctx, query, id)
}

// scanOne runs a single-row account query and hydrates the entity.
func (repository *PostgresUserRepository) scanOne(ctx context.Context, query string, arg any) (*User, error) {
	user := &User{}
	err := repository.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Bio,
		&user.AvatarURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, apperr.Internal(fmt.Errorf("postgres_user_repo_find_failed: %w", err))
	}

	return user, nil
}
