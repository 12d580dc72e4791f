// Copyright (c) 2026 Syllabase. All rights reserved.
// Author: duc.tran.canh@gmail.com

package auth

import (
	"context"
	"net/http"

	"github.com/ductran/syllabase/internal/platform/apperr"
	"github.com/ductran/syllabase/internal/platform/constants"
	"github.com/ductran/syllabase/internal/platform/ctxkey"
	"github.com/ductran/syllabase/internal/platform/ctxutil"
	"github.com/ductran/syllabase/internal/platform/respond"
)

// Guard is the access gate in front of every protected operation.
//
// # Flow
//
// It completes the session resolution that [middleware.Authenticate] starts:
// the middleware verifies the bearer token and stores the claims; the guard
// resolves those claims to a live account through the credential store and
// injects it request-scoped. Routes mounted outside the guard (login, signup,
// health probes) form the exemption list.
//
// # Uniform Denial
//
// A missing header, a malformed or forged token, and a token for a deleted
// account are indistinguishable to the client: all short-circuit with the
// same 401 body. The downstream handler never runs on the denial path.
type Guard struct {
	users UserRepository
}

// NewGuard constructs the access gate over the given credential store.
func NewGuard(users UserRepository) *Guard {
	return &Guard{users: users}
}

// RequireUser blocks requests that do not resolve to an existing account.
//
// # Usage
//
// Must be registered in the router AFTER [middleware.Authenticate]. The
// account lookup happens at most once per request; handlers read the result
// via [CurrentUser].
func (guard *Guard) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		// ── 1. Claims Check ───────────────────────────────────────────────
		claims := ctxutil.GetClaims(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized(constants.GateRejectionMessage))
			return
		}

		// ── 2. Identity Resolution ────────────────────────────────────────
		// A valid signature is not enough: the account must still exist.
		user, err := guard.users.FindByID(request.Context(), claims.UserID)
		if err != nil {
			// Only a missing account is an authentication failure. A store
			// outage is a server fault and must never masquerade as a 401,
			// or every client gets logged out during a database incident.
			if appError := apperr.As(err); appError != nil && appError.HTTPStatus == http.StatusNotFound {
				respond.Error(writer, request, apperr.Unauthorized(constants.GateRejectionMessage))
				return
			}
			respond.Error(writer, request, err)
			return
		}

		// ── 3. Context Injection ──────────────────────────────────────────
		ctx := context.WithValue(request.Context(), ctxkey.KeyAccount, user)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// CurrentUser retrieves the account resolved by [Guard.RequireUser].
//
// # Returns
//   - The resolved [*User] for gated requests.
//   - nil outside the gate (anonymous or exempt routes).
func CurrentUser(ctx context.Context) *User {
	user, ok := ctx.Value(ctxkey.KeyAccount).(*User)
	if !ok {
		return nil
	}
	return user
}
