// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrNoSessionView is returned when a view route runs without the session
// middleware having attached a view to the request.
var ErrNoSessionView = errors.New("no session view in request context")
