// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// secretsvault tool. It aggregates all sub-configurations and is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds generation settings: the obfuscation key, the generated
	// package and the optional second-stage transform.
	App App `envPrefix:"APP_"`

	// Files holds the input secrets file and the output directory.
	Files Files `envPrefix:"FILES_"`

	// Identity holds the signing certificate allow-list and, for local
	// checks, the certificate that plays the caller.
	Identity Identity `envPrefix:"IDENTITY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flag
	// parsing: the subcommand and its operands.
	Args []string
}

// App holds generation settings.
type App struct {
	// ObfuscationKey is the passphrase the keystream is derived from.
	// A random key is generated when empty.
	// Env: APP_OBFUSCATION_KEY
	ObfuscationKey string `env:"OBFUSCATION_KEY"`

	// PackageName is the Go package name of the generated files.
	// Env: APP_PACKAGE_NAME
	PackageName string `env:"PACKAGE_NAME"`

	// MakeInjectable adds a provider interface to every generated type.
	// Env: APP_MAKE_INJECTABLE
	MakeInjectable bool `env:"MAKE_INJECTABLE"`

	// Transform selects the second-stage transform: "none" or "sealed".
	// Env: APP_TRANSFORM
	Transform string `env:"TRANSFORM"`

	// TransformKey keys the sealed transform.
	// Env: APP_TRANSFORM_KEY
	TransformKey string `env:"TRANSFORM_KEY"`

	// CopyToClipboard copies a generated obfuscation key or printed
	// fingerprints to the system clipboard.
	// Env: APP_COPY_TO_CLIPBOARD
	CopyToClipboard bool `env:"COPY_TO_CLIPBOARD"`
}

// Files holds file-system settings.
type Files struct {
	// SecretsFile is the JSON secrets definition.
	// Env: FILES_SECRETS_FILE
	SecretsFile string `env:"SECRETS_FILE"`

	// OutputDir receives one <flavor>/secrets_vault_gen.go per flavor.
	// Env: FILES_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`
}

// Identity holds caller verification settings.
type Identity struct {
	// AppSignatures are the allowed certificate fingerprints, colon-separated
	// or plain hex. They are normalized to uppercase hex by validation.
	// Env: IDENTITY_APP_SIGNATURES (comma-separated)
	AppSignatures []string `env:"APP_SIGNATURES" envSeparator:","`

	// CertificatePath is a PEM or DER certificate used by the fingerprint
	// and reveal commands.
	// Env: IDENTITY_CERTIFICATE
	CertificatePath string `env:"CERTIFICATE"`
}

// Default values applied to fields no source has set.
const (
	DefaultPackageName = "secrets"
	DefaultSecretsFile = "secrets.json"
	DefaultOutputDir   = "."
	DefaultTransform   = "none"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PackageName: DefaultPackageName,
			Transform:   DefaultTransform,
		},
		Files: Files{
			SecretsFile: DefaultSecretsFile,
			OutputDir:   DefaultOutputDir,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
