// Copyright (c) 2026 Syllabase. All rights reserved.
// Author: duc.tran.canh@gmail.com

/*
Package auth implements the user identity layer of Syllabase.

It defines the core domain entity (User) plus the registration, login, and
request-gating logic built on top of it.

# Architecture

This layer is the "Truth" of the system for identity. Entities defined here
encapsulate all business rules related to user accounts; storage and token
mechanics are injected behind interfaces.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered member of the Syllabase platform.
//
// The password digest is the only secret the system ever stores — plaintext
// passwords exist solely in-flight during registration and login.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	Bio          string    `json:"bio,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldBio       = "bio"
	FieldAvatarURL = "avatar_url"
)
