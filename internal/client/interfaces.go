// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable terminal application.
type Client interface {
	// Run blocks until the user quits. It returns nil on a regular exit.
	Run() error
}
