package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request carrying a logger that writes to buf,
// the way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		status   int
		body     string
		contains []string
	}{
		{
			name:   "page render",
			method: http.MethodGet,
			path:   "/",
			status: http.StatusOK,
			body:   "<html></html>",
			contains: []string{
				`"method":"GET"`,
				`"uri":"/"`,
				`"status":200`,
				`"duration":`,
				`"size":13`,
				`"level":"info"`,
			},
		},
		{
			name:     "redirect after delete",
			method:   http.MethodPost,
			path:     "/records/r1/delete",
			status:   http.StatusSeeOther,
			contains: []string{`"method":"POST"`, `"status":303`, `"size":0`},
		},
		{
			name:     "query preserved in uri",
			method:   http.MethodGet,
			path:     "/search?client_name=tanaka",
			status:   http.StatusOK,
			contains: []string{`"uri":"/search?client_name=tanaka"`},
		},
		{
			name:     "bad request",
			method:   http.MethodGet,
			path:     "/search?status=bogus",
			status:   http.StatusBadRequest,
			body:     "Bad Request",
			contains: []string{`"status":400`, `"level":"warn"`},
		},
		{
			name:     "server error",
			method:   http.MethodGet,
			path:     "/",
			status:   http.StatusInternalServerError,
			contains: []string{`"status":500`, `"level":"error"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.status, rr.Code)
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusSeeOther))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusNotFound))
	assert.Equal(t, zerolog.ErrorLevel, accessLogLevel(http.StatusBadGateway))
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))
	})
}
