// Copyright (c) 2026 Syllabase. All rights reserved.
// Author: duc.tran.canh@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ductran/syllabase/internal/platform/apperr"
	"github.com/ductran/syllabase/internal/platform/constants"
	"github.com/ductran/syllabase/internal/platform/ctxutil"
	"github.com/ductran/syllabase/internal/platform/sec"
	"github.com/ductran/syllabase/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter (UUID/Slug) from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Claims extracts the verified token claims from the request context.

Returns nil if the request is anonymous.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetClaims(request.Context())
}

/*
RequiredUserID returns the identity reference of the currently logged-in user.

Handlers mounted behind the access gate can rely on this never failing; the
error path only fires if a handler is accidentally wired outside the gate.

Returns:
  - string: account UUID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (string, error) {
	claims := ctxutil.GetClaims(request.Context())
	if claims == nil {
		return "", apperr.Unauthorized(constants.GateRejectionMessage)
	}
	return claims.UserID, nil
}
