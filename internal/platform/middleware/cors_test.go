// Copyright (c) 2026 Syllabase. All rights reserved.
// Author: duc.tran.canh@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ductran/syllabase/internal/platform/middleware"
)

type stubConfig struct {
	development  bool
	extraOrigins []string
}

func (s stubConfig) IsDevelopment() bool       { return s.development }
func (s stubConfig) ExtraOriginList() []string { return s.extraOrigins }

/*
TestCORS covers the origin allowlist policy: development allows everything,
production allows the syllabase.app domains plus any configured extra
origins exactly, and everything else receives no CORS headers.
*/
func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		cfg         stubConfig
		origin      string
		wantAllowed bool
	}{
		{"dev_allows_anything", stubConfig{development: true}, "https://evil.example.com", true},
		{"prod_allows_app_domain", stubConfig{}, "https://www.syllabase.app", true},
		{"prod_allows_extra_origin", stubConfig{extraOrigins: []string{"https://staging.example.com"}}, "https://staging.example.com", true},
		{"prod_extra_origin_exact_match_only", stubConfig{extraOrigins: []string{"https://staging.example.com"}}, "https://evil.staging.example.com", false},
		{"prod_rejects_unknown", stubConfig{}, "https://evil.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set("Origin", tt.origin)
			recorder := httptest.NewRecorder()

			middleware.CORS(tt.cfg)(next).ServeHTTP(recorder, request)

			allowed := recorder.Header().Get("Access-Control-Allow-Origin")
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, allowed)
			} else {
				assert.Empty(t, allowed)
			}
		})
	}
}

/*
TestCORS_Preflight verifies OPTIONS requests short-circuit with 204 and
never reach the downstream handler.
*/
func TestCORS_Preflight(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		t.Fatal("preflight must not reach the handler")
	})

	request := httptest.NewRequest(http.MethodOptions, "/", nil)
	request.Header.Set("Origin", "https://www.syllabase.app")
	recorder := httptest.NewRecorder()

	middleware.CORS(stubConfig{})(next).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "https://www.syllabase.app", recorder.Header().Get("Access-Control-Allow-Origin"))
}
