package utils

import (
	"github.com/MKhiriev/go-maintenance-search/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client with its own configuration,
// connection pool and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://api.example.com/tables/maintenance_records")
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithLogger logs every completed outbound request at debug level with its
// method, URL, status and duration.
func (c *HTTPClient) WithLogger(log *logger.Logger) *HTTPClient {
	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("outbound request")
		return nil
	})
	return c
}
