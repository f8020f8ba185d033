// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func gzipCompress(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(data)
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	return buf.Bytes()
}

func gzipDecompress(t *testing.T, data []byte) []byte {
	t.Helper()

	gr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer gr.Close()

	plain, err := io.ReadAll(gr)
	require.NoError(t, err)

	return plain
}

// echoHandler replies with the request body it received.
func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
}

// ─────────────────────────────────────────────
// Tests: withGZip
// ─────────────────────────────────────────────

func TestWithGZip_CompressesWhenClientAcceptsGzip(t *testing.T) {
	payload := `{"persons":[{"client_side_id":"a1","name":"Alex Yeoh","notes":"Prefers email"}]}`
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, payload)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/persons/list", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, payload, string(gzipDecompress(t, rr.Body.Bytes())))
}

func TestWithGZip_PlainResponseWithoutAcceptEncoding(t *testing.T) {
	payload := "Notes for Alex Yeoh: Prefers email"
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, payload)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, payload, rr.Body.String())
}

func TestWithGZip_DecompressesRequestBody(t *testing.T) {
	payload := []byte(`{"filter":{"name":"Bernice Yu"},"include_deleted":true}`)

	var seenBody []byte
	var seenContentEncoding string
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenBody, _ = io.ReadAll(r.Body)
		seenContentEncoding = r.Header.Get("Content-Encoding")
		r.Body.Close()
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/persons/list", bytes.NewReader(gzipCompress(t, payload)))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, payload, seenBody, "downstream handler must see the plain body")
	assert.Empty(t, seenContentEncoding, "Content-Encoding must be removed once the body is unwrapped")
}

func TestWithGZip_InvalidRequestBodyIsBadRequest(t *testing.T) {
	nextCalled := false
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/persons/", strings.NewReader("definitely not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid gzip data\n", rr.Body.String())
	assert.False(t, nextCalled)
}

func TestWithGZip_RoundTrip(t *testing.T) {
	payload := []byte(`{"persons":[{"client_side_id":"c7","name":"Charlotte Oliveiro","phone":"93210283"}]}`)
	handler := withGZip(echoHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/persons/", bytes.NewReader(gzipCompress(t, payload)))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, payload, gzipDecompress(t, rr.Body.Bytes()))
}

func TestWithGZip_LargeBodyShrinks(t *testing.T) {
	// a contact list full of repeated field names compresses well
	payload := strings.Repeat(`{"name":"Roy Balakrishnan","phone":"92624417","tags":["colleagues"]},`, 200)
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, payload)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/persons/list", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Less(t, rr.Body.Len(), len(payload))
	assert.Equal(t, payload, string(gzipDecompress(t, rr.Body.Bytes())))
}

func TestWithGZip_EmptyResponseBody(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/api/persons/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}

func TestWithGZip_SequentialRequestsReusePools(t *testing.T) {
	handler := withGZip(echoHandler())

	// чередуем запросы, чтобы writer и reader возвращались в пулы
	for i := 0; i < 10; i++ {
		payload := []byte(strings.Repeat("sync batch ", i+1))

		req := httptest.NewRequest(http.MethodPost, "/api/persons/", bytes.NewReader(gzipCompress(t, payload)))
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, payload, gzipDecompress(t, rr.Body.Bytes()))
	}
}

func TestWithGZip_ConcurrentRequests(t *testing.T) {
	handler := withGZip(echoHandler())

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			payload := []byte(`{"client_side_id":"p-1","name":"David Li","notes":"Team lunch on Friday"}`)

			var buf bytes.Buffer
			gw := gzip.NewWriter(&buf)
			if _, err := gw.Write(payload); err != nil {
				t.Error(err)
				return
			}
			if err := gw.Close(); err != nil {
				t.Error(err)
				return
			}

			req := httptest.NewRequest(http.MethodPost, "/api/persons/", &buf)
			req.Header.Set("Content-Encoding", "gzip")
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusOK {
				t.Errorf("unexpected status %d", rr.Code)
				return
			}

			gr, err := gzip.NewReader(rr.Body)
			if err != nil {
				t.Error(err)
				return
			}
			plain, err := io.ReadAll(gr)
			if err != nil {
				t.Error(err)
				return
			}
			if !bytes.Equal(payload, plain) {
				t.Errorf("body corrupted under concurrency: %q", plain)
			}
		}()
	}
	wg.Wait()
}

// ─────────────────────────────────────────────
// Tests: gzipResponseWriter / wrappedReadCloser
// ─────────────────────────────────────────────

func TestGZipResponseWriter_WriteHeaderSetsContentEncoding(t *testing.T) {
	rr := httptest.NewRecorder()
	gw := &gzipResponseWriter{ResponseWriter: rr, gzipWriter: gzip.NewWriter(rr)}

	gw.WriteHeader(http.StatusCreated)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}

func TestWrappedReadCloser_CloseInvokesCallback(t *testing.T) {
	closed := 0
	rc := &wrappedReadCloser{
		Reader:  strings.NewReader("payload"),
		OnClose: func() { closed++ },
	}

	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close())

	assert.Equal(t, 2, closed, "Close forwards every call to the callback")
}

func TestWrappedReadCloser_CloseWithoutCallback(t *testing.T) {
	rc := &wrappedReadCloser{Reader: strings.NewReader("payload")}

	assert.NoError(t, rc.Close())
}
