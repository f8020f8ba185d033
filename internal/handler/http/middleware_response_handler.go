// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] to capture the status code
// and the number of body bytes for the logging middleware, without buffering
// the whole response.
//
// WriteHeader is forwarded to the underlying writer exactly once; repeated
// calls are ignored, matching the [http.ResponseWriter] contract.
type responseWriter struct {
	http.ResponseWriter

	// status is recorded on the first WriteHeader call and stays zero
	// until a header (explicit or implicit) is written.
	status int

	// wroteHeader guards against forwarding a second WriteHeader.
	wroteHeader bool

	// size accumulates bytes written across all Write calls.
	size int

	// body holds the slice passed to the most recent Write call only,
	// not a concatenation of all writes.
	body []byte
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer, implicitly writing a 200 header
// first when none was written yet, the same way net/http does.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	w.body = b
	return n, err
}
