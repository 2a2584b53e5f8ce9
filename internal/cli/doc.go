// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the secretsvault command-line runtime.
//
// It dispatches the parsed positional arguments to a command and renders
// the results of the service layer as plain text.
package cli
