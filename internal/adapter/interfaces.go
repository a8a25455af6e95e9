// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the remote
// records API.
//
// [RecordsAPI] decouples the view from the protocol. The package ships an
// HTTP/REST implementation ([NewHTTPRecordsAdapter]) built on resty.
//
// Non-2xx responses are mapped to the sentinel values in errors.go by
// mapHTTPError so callers can match them with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-maintenance-search/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/records_api_mock.go -package=mock

// RecordsAPI is the remote records collaborator. Resources are addressed by
// name (e.g. [models.ResourceMaintenanceRecords]).
type RecordsAPI interface {
	// ListRecords fetches one page of records of the given resource, limited
	// and sorted according to opts.
	ListRecords(ctx context.Context, resource string, opts models.ListOptions) (models.ListResponse, error)

	// DeleteRecord removes the record identified by id. Any 2xx status is a
	// success.
	DeleteRecord(ctx context.Context, resource, id string) error
}
