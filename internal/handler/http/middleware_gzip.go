// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// compressResponses gzips JSON and text bodies for clients that accept it.
var compressResponses = middleware.Compress(gzip.DefaultCompression, "application/json", "text/plain")

// withGZip decodes gzip request bodies and compresses responses.
func withGZip(next http.Handler) http.Handler {
	compressed := compressResponses(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			gz := gzipReaderPool.Get().(*gzip.Reader)
			if err := gz.Reset(r.Body); err != nil {
				gzipReaderPool.Put(gz)
				http.Error(w, "invalid gzip data", http.StatusBadRequest)
				return
			}

			r.Body = &pooledGzipBody{Reader: gz, body: r.Body}
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		compressed.ServeHTTP(w, r)
	})
}

type pooledGzipBody struct {
	*gzip.Reader
	body io.Closer
}

func (b *pooledGzipBody) Close() error {
	err := b.Reader.Close()
	gzipReaderPool.Put(b.Reader)
	if cerr := b.body.Close(); err == nil {
		err = cerr
	}
	return err
}
