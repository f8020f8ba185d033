package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: service.AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// newHandlerWithAppInfo builds a Handler whose other services are nil;
// getServerVersion touches only AppInfoService.
func newHandlerWithAppInfo(version string) *Handler {
	return &Handler{
		logger:   logger.Nop(),
		services: &service.Services{AppInfoService: &mockAppInfoService{version: version}},
	}
}

// ─────────────────────────────────────────────
// Tests: getServerVersion
// ─────────────────────────────────────────────

func TestGetServerVersion_WritesVersionAsPlainText(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "release version", version: "1.2.3"},
		{name: "prerelease with build metadata", version: "v2.0.0-beta+build.42"},
		{name: "empty version", version: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAppInfo(tt.version)

			req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
			rr := httptest.NewRecorder()
			h.getServerVersion(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.version, rr.Body.String())
			assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
		})
	}
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	// /api/version/ is an open route, no Authorization header needed
	h := newHandlerWithAppInfo("3.0.0")
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "3.0.0", rr.Body.String())
}
