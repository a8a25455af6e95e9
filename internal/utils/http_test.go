package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"version": "1.0.0"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "bad request"}, http.StatusBadRequest)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteHTML_Success(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteHTML(w, http.StatusOK, func(out io.Writer) error {
		_, err := io.WriteString(out, "<p>ok</p>")
		return err
	})

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("unexpected Content-Type %q", ct)
	}
	if w.Body.String() != "<p>ok</p>" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestWriteHTML_RenderErrorWritesNoPartialPage(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteHTML(w, http.StatusOK, func(out io.Writer) error {
		_, _ = io.WriteString(out, "<p>half")
		return errors.New("template failed")
	})

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	if got := w.Body.String(); got == "<p>half" {
		t.Error("partial page must not be written")
	}
}
