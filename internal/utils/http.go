package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails it responds with 500 Internal Server Error and
// returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.AppBuildInfo{...}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteHTML renders into a buffer first and only then writes statusCode and
// the body, so a failing template never leaves a half-written page behind.
// On a render error it responds with 500 Internal Server Error.
//
// Example usage:
//
//	WriteHTML(w, http.StatusOK, func(out io.Writer) error { return render.HTML(out, page) })
func WriteHTML(w http.ResponseWriter, statusCode int, render func(io.Writer) error) (int, error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error rendering HTML: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write(buf.Bytes())
}
