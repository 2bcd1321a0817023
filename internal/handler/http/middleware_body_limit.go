package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// maxRequestBodySize admits an add-note request whose text and info are both
// at the record field limit, plus room for JSON framing.
const maxRequestBodySize = 2*store.MaxFieldSize + 64<<10

// withBodyLimit caps request bodies at maxRequestBodySize. It must run after
// withGZip so that the decompressed size is what counts.
func withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > maxRequestBodySize {
			http.Error(w, app.MsgRequestTooLarge, http.StatusRequestEntityTooLarge)
			return
		}

		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		}
		next.ServeHTTP(w, r)
	})
}
