// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultFlavor is the flavor assigned to secrets that do not name one.
// Its generated type is MainSecrets; every other flavor gets Secrets.
const DefaultFlavor = "main"

// Secret is a single entry of the secrets file:
//
//	[
//	    { "key": "apiKey1", "value": "API_VALUE_1_DEVELOPMENT", "flavor": "dev" },
//	    { "key": "apiKey1", "value": "API_VALUE_1_PRODUCTION", "flavor": "prod" },
//	    { "key": "apiKey2", "value": "API_VALUE_2_GENERAL" }
//	]
type Secret struct {
	// Key names the generated getter: "apiKey1" becomes GetApiKey1.
	Key string `json:"key"`

	// Value is the plaintext secret. It never appears in generated code.
	Value string `json:"value"`

	// Flavor selects the build variant that receives this secret.
	// Empty means [DefaultFlavor].
	Flavor string `json:"flavor,omitempty"`
}

// FlavorOrDefault returns s.Flavor, or [DefaultFlavor] when it is empty.
func (s Secret) FlavorOrDefault() string {
	if s.Flavor == "" {
		return DefaultFlavor
	}
	return s.Flavor
}

// FlavorGroup holds the secrets of a single flavor in file order.
type FlavorGroup struct {
	Flavor  string
	Secrets []Secret
}

// GroupByFlavor splits secrets into per-flavor groups. Groups appear in the
// order their flavor is first seen.
func GroupByFlavor(secrets []Secret) []FlavorGroup {
	index := make(map[string]int)
	groups := make([]FlavorGroup, 0)

	for _, s := range secrets {
		flavor := s.FlavorOrDefault()
		i, ok := index[flavor]
		if !ok {
			i = len(groups)
			index[flavor] = i
			groups = append(groups, FlavorGroup{Flavor: flavor})
		}
		groups[i].Secrets = append(groups[i].Secrets, s)
	}

	return groups
}
