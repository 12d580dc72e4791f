// Copyright (c) 2026 Syllabase. All rights reserved.
// Author: duc.tran.canh@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ductran/syllabase/internal/platform/apperr"
	"github.com/ductran/syllabase/internal/platform/constants"
	requestutil "github.com/ductran/syllabase/internal/platform/request"
	"github.com/ductran/syllabase/internal/platform/respond"
	"github.com/ductran/syllabase/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages the user lifecycle entry points (registration, login)
// and the protected "who am I" profile endpoint. It is strictly responsible
// for transport concerns (status codes, headers, JSON).
type Handler struct {
	authService *Service
	guard       *Guard
}

// NewHandler constructs a new [Handler] with its service and gate dependencies.
func NewHandler(service *Service, guard *Guard) *Handler {
	return &Handler{authService: service, guard: guard}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /signup  : Creates a new account (exempt from the gate).
//   - POST /login   : Authenticates and returns a token (exempt from the gate).
//   - GET  /profile : Returns the current identity (behind the gate).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Exempt endpoints
	router.Post("/signup", handler.signup)
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(handler.guard.RequireUser)
		r.Get("/profile", handler.profile)
	})

	return router
}

// # Request Payloads

type signupRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Signup handles the creation of a new user account.

POST /api/v1/auth/signup

Description: Validates input, checks for identity conflicts, persists the new
profile, and returns it together with a fresh bearer token.

Request:
  - Body: signupRequest (Name, Email, Password, optional Bio/AvatarURL)

Response:
  - 201: AuthSession: Created user profile + token
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Email already exists
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// Registration rules are presence-only on purpose: no password strength
	// or email format policy is part of the contract. Email uniqueness is
	// enforced case-insensitively by the service and the store index.
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		Required(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Register(request.Context(), RegisterInput{
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		Bio:       input.Bio,
		AvatarURL: input.AvatarURL,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, session)
}

/*
Login authenticates a user and issues a bearer token.

POST /api/v1/auth/login

Description: Verifies credentials and returns a signed stateless token
alongside the user profile.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: AuthSession: Token and user profile
  - 401: ErrUnauthorized: Generic invalid-credentials message
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

/*
Profile returns the public data of the currently authenticated identity.

GET /api/v1/auth/profile

Description: The account was already resolved by the access gate; this handler
only shapes the response. The password digest is never serialized.

Response:
  - 200: User: Resolved identity
  - 401: ErrUnauthorized: Uniform gate rejection
*/
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	user := CurrentUser(request.Context())
	if user == nil {
		// Unreachable behind the gate; kept for handlers wired without it.
		respond.Error(writer, request, apperr.Unauthorized(constants.GateRejectionMessage))
		return
	}

	respond.OK(writer, user)
}
