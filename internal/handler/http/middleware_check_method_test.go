// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newAPIRouter builds a router with the API's route shape: open auth routes,
// the persons routes, and CheckHTTPMethod wired as the 405 handler.
func newAPIRouter() *chi.Mux {
	ok := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, r.Method+" "+r.URL.Path)
	}

	router := chi.NewRouter()
	router.Post("/api/user/register", ok)
	router.Post("/api/user/login", ok)
	router.Get("/api/version/", ok)
	router.Post("/api/persons/", ok)
	router.Post("/api/persons/list", ok)
	router.Delete("/api/persons/", ok)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// ─────────────────────────────────────────────
// Tests: CheckHTTPMethod
// ─────────────────────────────────────────────

func TestCheckHTTPMethod_RegisteredMethodsPassThrough(t *testing.T) {
	router := newAPIRouter()

	tests := []struct {
		method string
		path   string
	}{
		{method: http.MethodPost, path: "/api/user/register"},
		{method: http.MethodPost, path: "/api/user/login"},
		{method: http.MethodGet, path: "/api/version/"},
		{method: http.MethodPost, path: "/api/persons/"},
		{method: http.MethodPost, path: "/api/persons/list"},
		{method: http.MethodDelete, path: "/api/persons/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.method+" "+tt.path, rr.Body.String())
		})
	}
}

func TestCheckHTTPMethod_UnregisteredMethodIsHiddenAs404(t *testing.T) {
	router := newAPIRouter()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "GET on the persons collection", method: http.MethodGet, path: "/api/persons/"},
		{name: "PUT on the persons collection", method: http.MethodPut, path: "/api/persons/"},
		{name: "DELETE on the list endpoint", method: http.MethodDelete, path: "/api/persons/list"},
		{name: "GET on register", method: http.MethodGet, path: "/api/user/register"},
		{name: "POST on version", method: http.MethodPost, path: "/api/version/"},
		{name: "PATCH on login", method: http.MethodPatch, path: "/api/user/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// 404 вместо 405, чтобы не раскрывать существование маршрута
			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_DelegatesRegisteredMethodToRouter(t *testing.T) {
	// calling the returned handler directly must forward registered methods
	// to the router's normal pipeline
	router := newAPIRouter()
	handler := CheckHTTPMethod(router)

	req := httptest.NewRequest(http.MethodPost, "/api/persons/list", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	handler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "POST /api/persons/list", rr.Body.String())
}

func TestCheckHTTPMethod_MultiMethodRoute(t *testing.T) {
	// /api/persons/ accepts POST and DELETE but nothing else
	router := newAPIRouter()

	for _, method := range []string{http.MethodPost, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/persons/", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code, "method %s must be served", method)
	}

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodHead} {
		req := httptest.NewRequest(method, "/api/persons/", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusNotFound, rr.Code, "method %s must be hidden", method)
	}
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := newAPIRouter()

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			// mix of allowed and hidden methods
			if i%2 == 0 {
				req := httptest.NewRequest(http.MethodPost, "/api/persons/list", nil)
				rr := httptest.NewRecorder()
				router.ServeHTTP(rr, req)
				if rr.Code != http.StatusOK {
					t.Errorf("expected 200, got %d", rr.Code)
				}
				return
			}

			req := httptest.NewRequest(http.MethodGet, "/api/persons/list", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			if rr.Code != http.StatusNotFound {
				t.Errorf("expected 404, got %d", rr.Code)
			}
		}(i)
	}
	wg.Wait()
}
