// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view holds RecordSearchView, the front-end independent view-model
// of the maintenance record search screen.
//
// RecordSearchView owns the working set fetched from the records API, the
// filtered subset currently on display, the active criteria and the pending
// toasts. Front ends (the HTML handlers and the terminal UI) call its
// operations and render a [State] snapshot.
package view

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/confirmer_mock.go -package=mock

// Confirmer asks the user to confirm a destructive action. It returns true
// only when the user explicitly agreed.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// ConfirmerFunc adapts a plain function to [Confirmer].
type ConfirmerFunc func(ctx context.Context, message string) (bool, error)

// Confirm implements [Confirmer].
func (f ConfirmerFunc) Confirm(ctx context.Context, message string) (bool, error) {
	return f(ctx, message)
}

var (
	// Confirmed is used when the front end has already collected a positive
	// answer, e.g. the confirm=yes form post.
	Confirmed Confirmer = ConfirmerFunc(func(context.Context, string) (bool, error) { return true, nil })

	// Declined is its negative counterpart.
	Declined Confirmer = ConfirmerFunc(func(context.Context, string) (bool, error) { return false, nil })
)
