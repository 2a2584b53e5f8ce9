// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks secrets definitions before they are encoded
// into generated source.
//
// A [Validator] accepts a single models.Secret or a list of them and
// can be scoped to a subset of fields (key, value, flavor). Services
// receive the validator by injection, so encoder tests can swap it out.
package validators

import "context"

// Validator validates an arbitrary input value. When fields are given,
// only those fields are checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
