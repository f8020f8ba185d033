package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// executeWithTraceID runs the trace-id middleware around a recording handler
// and returns the recorder together with the request the inner handler saw.
func executeWithTraceID(h *Handler, incomingTraceID string) (*httptest.ResponseRecorder, *http.Request) {
	var innerRequest *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		innerRequest = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/persons/list", nil)
	if incomingTraceID != "" {
		req.Header.Set(traceIDHeader, incomingTraceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	return rr, innerRequest
}

// ─────────────────────────────────────────────
// Tests: withTraceID
// ─────────────────────────────────────────────

func TestWithTraceID_GeneratesUUIDWhenHeaderMissing(t *testing.T) {
	h := newTestHandler(nil, nil)

	rr, _ := executeWithTraceID(h, "")

	got := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, got)

	_, err := uuid.Parse(got)
	assert.NoError(t, err, "generated trace id must be a valid uuid")
}

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	h := newTestHandler(nil, nil)

	tests := []struct {
		name    string
		traceID string
	}{
		{name: "uuid from an upstream proxy", traceID: uuid.NewString()},
		{name: "opaque non-uuid value is kept verbatim", traceID: "contact-sync-42"},
		{name: "value with spaces", traceID: "trace id with spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, _ := executeWithTraceID(h, tt.traceID)

			assert.Equal(t, tt.traceID, rr.Header().Get(traceIDHeader))
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newTestHandler(nil, nil)

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		rr, _ := executeWithTraceID(h, "")
		traceID := rr.Header().Get(traceIDHeader)

		_, duplicate := seen[traceID]
		require.False(t, duplicate, "trace id %q issued twice", traceID)
		seen[traceID] = struct{}{}
	}
}

func TestWithTraceID_ChildLoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	incoming := uuid.NewString()
	_, innerRequest := executeWithTraceID(h, incoming)
	require.NotNil(t, innerRequest)

	logger.FromRequest(innerRequest).Info().Msg("listing persons")

	assert.Contains(t, buf.String(), `"trace_id":"`+incoming+`"`)
}

func TestWithTraceID_ResponseHeaderAlwaysSet(t *testing.T) {
	h := newTestHandler(nil, nil)

	// even a handler that writes nothing still gets a trace id on the response
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rr := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_AlwaysCallsNext(t *testing.T) {
	h := newTestHandler(nil, nil)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/persons/", nil)
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	require.True(t, called)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h := newTestHandler(nil, nil)

	original := httptest.NewRequest(http.MethodPost, "/api/persons/", nil)
	originalCtx := original.Context()

	var innerRequest *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		innerRequest = r
	})

	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), original)

	require.NotNil(t, innerRequest)
	assert.NotSame(t, original, innerRequest, "middleware must pass a shallow copy downstream")
	assert.Equal(t, originalCtx, original.Context(), "original request context must stay untouched")
}

func TestWithTraceID_ConcurrentRequests(t *testing.T) {
	h := newTestHandler(nil, nil)

	const workers = 16
	traceIDs := make([]string, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rr, _ := executeWithTraceID(h, "")
			traceIDs[i] = rr.Header().Get(traceIDHeader)
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, workers)
	for _, traceID := range traceIDs {
		require.NotEmpty(t, traceID)
		seen[traceID] = struct{}{}
	}
	assert.Len(t, seen, workers, "each concurrent request must get its own trace id")
}
