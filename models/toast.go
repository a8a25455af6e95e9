// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ToastKind classifies a transient notification.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastFailure ToastKind = "failure"
)

// Toast is a short-lived, non-blocking user notification.
type Toast struct {
	Kind      ToastKind
	Message   string
	ExpiresAt time.Time
}

// Expired reports whether the toast should no longer be shown at now.
func (t Toast) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
