package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-maintenance-search/internal/config"
	"github.com/MKhiriev/go-maintenance-search/internal/logger"
	"github.com/MKhiriev/go-maintenance-search/internal/utils"
	"github.com/MKhiriev/go-maintenance-search/models"
	"github.com/go-resty/resty/v2"
)

type httpRecordsAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPRecordsAdapter constructs an HTTP/REST implementation of [RecordsAPI].
// The base URL is taken from adapterCfg.HTTPAddress and normalised; a missing
// scheme defaults to http. When adapterCfg.Token is set it is sent as a bearer
// token on every request.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed.
func NewHTTPRecordsAdapter(adapterCfg config.Adapter, logger *logger.Logger) (RecordsAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithLogger(logger)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpRecordsAdapter{
		client: client,
		token:  strings.TrimSpace(adapterCfg.Token),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListRecords implements [RecordsAPI]. It sends
// GET /tables/{resource}?limit=&sort= and decodes the {"data": [...]} envelope.
func (h *httpRecordsAdapter) ListRecords(ctx context.Context, resource string, opts models.ListOptions) (models.ListResponse, error) {
	req := h.authedRequest(ctx).SetPathParam("resource", resource)
	if opts.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Sort != "" {
		req.SetQueryParam("sort", opts.Sort)
	}

	resp, err := req.Get("/tables/{resource}")
	if err != nil {
		return models.ListResponse{}, fmt.Errorf("list %s request: %w", resource, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ListResponse{}, err
	}

	var list models.ListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return models.ListResponse{}, fmt.Errorf("decode %s list response: %w", resource, err)
	}

	h.logger.Debug().
		Str("resource", resource).
		Int("count", len(list.Data)).
		Msg("records listed")

	return list, nil
}

// DeleteRecord implements [RecordsAPI]. It sends DELETE /tables/{resource}/{id}.
func (h *httpRecordsAdapter) DeleteRecord(ctx context.Context, resource, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"resource": resource, "id": id}).
		Delete("/tables/{resource}/{id}")
	if err != nil {
		return fmt.Errorf("delete %s/%s request: %w", resource, id, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRecordsAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}
