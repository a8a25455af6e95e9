// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ResourceMaintenanceRecords is the API resource name for maintenance records.
const ResourceMaintenanceRecords = "maintenance_records"

// Record is a single maintenance record as returned by the records API.
// Records are fetched by value; the view never edits one in place.
type Record struct {
	// ID is the opaque unique identifier assigned by the API.
	ID string `json:"id" validate:"required"`

	ClientName         string `json:"client_name"`
	RegistrationNumber string `json:"registration_number"`
	ChassisNumber      string `json:"chassis_number"`
	CarModel           string `json:"car_model"`

	// Status is the lifecycle state. Unknown values are kept verbatim.
	Status Status `json:"status"`

	// InspectionDate is nil when the record has no inspection date yet.
	InspectionDate *Date `json:"inspection_date,omitempty"`

	// Mileage in kilometres, nil when absent. Fractional readings are kept
	// as sent.
	Mileage *float64 `json:"mileage,omitempty" validate:"omitempty,gte=0"`

	Tags Tags `json:"tags,omitempty"`

	// AccessToken grants access to the customer-facing page. Only set for
	// completed records.
	AccessToken string `json:"access_token,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`

	// issues names the fields dropped while decoding.
	issues []string
}

// UnmarshalJSON implements [json.Unmarshaler]. An inspection date or mileage
// that cannot be read is left absent and reported by [Record.DecodeIssues]
// instead of failing the record.
func (r *Record) UnmarshalJSON(b []byte) error {
	type plain Record
	aux := struct {
		*plain
		InspectionDate json.RawMessage `json:"inspection_date"`
		Mileage        json.RawMessage `json:"mileage"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	r.issues = nil
	r.InspectionDate = nil
	r.Mileage = nil

	if d, err := decodeDate(aux.InspectionDate); err != nil {
		r.issues = append(r.issues, "inspection_date: "+err.Error())
	} else {
		r.InspectionDate = d
	}

	if m, err := decodeMileage(aux.Mileage); err != nil {
		r.issues = append(r.issues, "mileage: "+err.Error())
	} else {
		r.Mileage = m
	}

	return nil
}

// DecodeIssues lists the fields dropped while decoding r, if any.
func (r Record) DecodeIssues() []string {
	return r.issues
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func decodeDate(raw json.RawMessage) (*Date, error) {
	if isNull(raw) {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("not a date string: %s", raw)
	}
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return ParseDate(s)
}

// decodeMileage accepts a JSON number or a numeric string.
func decodeMileage(raw json.RawMessage) (*float64, error) {
	if isNull(raw) {
		return nil, nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("not a number: %s", raw)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, fmt.Errorf("not a number: %q", s)
	}
	return &n, nil
}

// Status is the lifecycle state of a maintenance record.
type Status string

const (
	// StatusAny is the blank status filter value. It never appears on a record.
	StatusAny       Status = ""
	StatusDraft     Status = "draft"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// Statuses lists the filter domain in display order, starting with StatusAny.
var Statuses = []Status{StatusAny, StatusDraft, StatusCompleted, StatusArchived}

// Known reports whether s is one of the defined record states.
func (s Status) Known() bool {
	switch s {
	case StatusDraft, StatusCompleted, StatusArchived:
		return true
	default:
		return false
	}
}

// Next returns the status that follows s in [Statuses], wrapping around.
// Unknown values restart the cycle at StatusAny.
func (s Status) Next() Status {
	for i, st := range Statuses {
		if st == s {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return StatusAny
}

// Tags is an ordered list of free-form labels. A missing, null or
// non-array JSON value decodes to an empty list.
type Tags []string

// UnmarshalJSON implements [json.Unmarshaler].
func (t *Tags) UnmarshalJSON(b []byte) error {
	var raw []string
	if err := json.Unmarshal(b, &raw); err != nil {
		*t = Tags{}
		return nil
	}
	if raw == nil {
		raw = []string{}
	}
	*t = raw
	return nil
}

const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) *Date {
	return &Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// dateInputLayouts are tried in order. Naive datetimes are read as UTC.
var dateInputLayouts = []string{
	dateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateTime,
}

// ErrInvalidDate is returned by [ParseDate] for values in no accepted form.
var ErrInvalidDate = errors.New("invalid date")

// ParseDate accepts a calendar date ("2006-01-02"), an RFC 3339 timestamp or
// a naive ISO datetime without offset.
func ParseDate(s string) (*Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &Date{Time: t}, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrInvalidDate, s)
}

// UnmarshalJSON implements [json.Unmarshaler]. Values that are not a date
// string in an accepted form leave d zero, which renders as absent.
func (d *Date) UnmarshalJSON(b []byte) error {
	parsed, err := decodeDate(b)
	if err != nil || parsed == nil {
		*d = Date{}
		return nil
	}
	*d = *parsed
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}
