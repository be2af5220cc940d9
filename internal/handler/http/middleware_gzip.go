package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

var gzipReaderPool = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGZip transparently inflates gzip request bodies and compresses
// responses for clients that accept gzip. Responses without a body
// (204, 304, HEAD) are passed through untouched.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			zr := gzipReaderPool.Get().(*gzip.Reader)
			if err := zr.Reset(r.Body); err != nil {
				gzipReaderPool.Put(zr)
				writeError(w, r, ErrInvalidGzipBody)
				return
			}

			r.Body = &pooledGzipReader{Reader: zr, source: r.Body}
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if r.Method == http.MethodHead || !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")
		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.finish()

		next.ServeHTTP(gw, r)
	})
}

// pooledGzipReader returns its reader to the pool on Close.
type pooledGzipReader struct {
	*gzip.Reader
	source io.ReadCloser
}

func (p *pooledGzipReader) Close() error {
	err := p.source.Close()
	if p.Reader != nil {
		_ = p.Reader.Close()
		gzipReaderPool.Put(p.Reader)
		p.Reader = nil
	}
	return err
}

// gzipResponseWriter starts compressing on the first body write, so the
// status code decides whether the response gets encoded at all.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
	bodyless    bool
}

func (g *gzipResponseWriter) WriteHeader(statusCode int) {
	if g.wroteHeader {
		return
	}
	g.wroteHeader = true

	if statusCode == http.StatusNoContent || statusCode == http.StatusNotModified ||
		g.Header().Get("Content-Encoding") != "" {
		g.bodyless = true
	} else {
		g.Header().Set("Content-Encoding", "gzip")
		g.Header().Del("Content-Length")
	}

	g.ResponseWriter.WriteHeader(statusCode)
}

func (g *gzipResponseWriter) Write(data []byte) (int, error) {
	if !g.wroteHeader {
		g.WriteHeader(http.StatusOK)
	}
	if g.bodyless {
		return g.ResponseWriter.Write(data)
	}

	if g.zw == nil {
		g.zw = gzipWriterPool.Get().(*gzip.Writer)
		g.zw.Reset(g.ResponseWriter)
	}
	return g.zw.Write(data)
}

// finish flushes the gzip trailer and recycles the writer.
func (g *gzipResponseWriter) finish() {
	if !g.wroteHeader || g.bodyless {
		return
	}
	if g.zw == nil {
		// header already promised gzip; emit a valid empty stream
		g.zw = gzipWriterPool.Get().(*gzip.Writer)
		g.zw.Reset(g.ResponseWriter)
	}
	_ = g.zw.Close()
	gzipWriterPool.Put(g.zw)
	g.zw = nil
}
