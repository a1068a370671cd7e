// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It owns camera discovery and the terminal UI and ties their lifetimes to
// a single process run.
package client
