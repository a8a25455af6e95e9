// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive terminal application runtime.
//
// It wires the terminal UI to the search view and ties both to the process
// lifecycle.
package client
