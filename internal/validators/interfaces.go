// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks records received from the records API and the
// filter criteria received from users.
//
// The checks are declared as go-playground/validator struct tags on the
// model types; this package owns the validator instance and maps its
// failures onto the sentinel errors in errors.go.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to the named struct fields.
	Validate(context.Context, any, ...string) error
}
