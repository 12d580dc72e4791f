// Copyright (c) 2026 Syllabase. All rights reserved.
// Author: duc.tran.canh@gmail.com

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ductran/syllabase/internal/platform/ctxutil"
	"github.com/ductran/syllabase/internal/platform/middleware"
	"github.com/ductran/syllabase/internal/platform/sec"
)

// stubVerifier accepts exactly one token string and rejects everything else.
type stubVerifier struct {
	validToken string
	claims     *sec.AuthClaims
}

func (s *stubVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == s.validToken {
		return s.claims, nil
	}
	return nil, errors.New("invalid token")
}

/*
TestAuthenticate covers the header-to-claims resolution policy: a valid
bearer token injects claims, and every failure mode (absent header, wrong
scheme, malformed header, rejected token) lets the request continue as
anonymous with no claims and no error response.
*/
func TestAuthenticate(t *testing.T) {
	verifier := &stubVerifier{
		validToken: "good-token",
		claims:     &sec.AuthClaims{UserID: "user-123"},
	}

	tests := []struct {
		name       string
		header     string
		wantUserID string
	}{
		{"valid_bearer", "Bearer good-token", "user-123"},
		{"scheme_case_insensitive", "bearer good-token", "user-123"},
		{"absent_header", "", ""},
		{"wrong_scheme", "Basic good-token", ""},
		{"missing_token", "Bearer", ""},
		{"extra_parts", "Bearer good-token trailing", ""},
		{"rejected_token", "Bearer forged-token", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *sec.AuthClaims
			next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				captured = ctxutil.GetClaims(request.Context())
				writer.WriteHeader(http.StatusOK)
			})

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			middleware.Authenticate(verifier)(next).ServeHTTP(recorder, request)

			// The middleware itself never rejects a request.
			assert.Equal(t, http.StatusOK, recorder.Code)

			if tt.wantUserID == "" {
				assert.Nil(t, captured)
			} else {
				assert.NotNil(t, captured)
				assert.Equal(t, tt.wantUserID, captured.UserID)
			}
		})
	}
}
