package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Writers and readers are pooled: contact sync batches arrive in bursts and
// allocating a flate state per request is measurable.
var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip transparently decompresses gzip request bodies and compresses
// responses for clients that send Accept-Encoding: gzip.
//
// A request body that claims Content-Encoding: gzip but is not valid gzip is
// rejected with 400 before the handler runs. After unwrapping, the
// Content-Encoding header is removed so downstream code sees a plain body.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		supportsGzip := strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
		isGzipRequest := strings.Contains(r.Header.Get("Content-Encoding"), "gzip")

		if isGzipRequest && r.Body != nil {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(r.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}

			r.Body = &wrappedReadCloser{
				Reader: gzipReader,
				OnClose: func() {
					gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
				},
			}
			r.Header.Del("Content-Encoding")
		}

		if !supportsGzip {
			next.ServeHTTP(w, r)
			return
		}

		gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
		gzipWriter.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{
			ResponseWriter: w,
			gzipWriter:     gzipWriter,
		}, r)

		gzipWriter.Close()
		gzipWriterPool.Put(gzipWriter)
	})
}

// wrappedReadCloser lets the pooled gzip.Reader be returned to its pool when
// the request body is closed.
type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzipWriter.Write(data)
}

func (w *gzipResponseWriter) Close() error {
	return w.gzipWriter.Close()
}
