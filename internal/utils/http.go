package utils

import (
	"net/http"
)

// WriteText writes body to the HTTP response as UTF-8 plain text.
//
// It sets the "Content-Type" header to "text/plain; charset=utf-8" and writes
// the provided HTTP status code before sending the body verbatim; no newline
// is appended.
//
// Returns the number of bytes written to the response body and any error
// from the underlying writer.
//
// Example usage:
//
//	WriteText(w, "Hello, world!", http.StatusOK)
func WriteText(w http.ResponseWriter, body string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write([]byte(body))
}
