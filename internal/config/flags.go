package config

import (
	"flag"
	"fmt"
	"strings"
)

// SignatureList collects app signatures from repeated or comma-separated
// flag values. It implements the flag.Value interface.
type SignatureList []string

// String returns the signatures joined by commas.
func (s *SignatureList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

// Set appends every non-empty comma-separated entry of value.
func (s *SignatureList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

// ParseFlags parses all configuration flags from args, which must not
// include the program name. Positional arguments end up in
// [StructuredConfig.Args].
//
// Flags:
//
//	-k obfuscation key
//	-p generated Go package name
//	-injectable generate a provider interface per type
//	-transform second-stage transform (none, sealed)
//	-transform-key sealed transform key
//	-copy copy generated key or fingerprints to the clipboard
//	-f secrets JSON file
//	-o output directory
//	-s app signature (repeatable, comma-separated)
//	-cert signing certificate (PEM or DER)
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var obfuscationKey string
	var packageName string
	var makeInjectable bool
	var transform string
	var transformKey string
	var copyToClipboard bool
	var secretsFile string
	var outputDir string
	var signatures SignatureList
	var certificatePath string
	var jsonConfigPath string

	fs := flag.NewFlagSet("secretsvault", flag.ContinueOnError)
	fs.StringVar(&obfuscationKey, "k", "", "Obfuscation key")
	fs.StringVar(&packageName, "p", "", "Generated Go package name")
	fs.BoolVar(&makeInjectable, "injectable", false, "Generate a provider interface per type")
	fs.StringVar(&transform, "transform", "", "Second-stage transform (none, sealed)")
	fs.StringVar(&transformKey, "transform-key", "", "Sealed transform key")
	fs.BoolVar(&copyToClipboard, "copy", false, "Copy generated key or fingerprints to the clipboard")
	fs.StringVar(&secretsFile, "f", "", "Secrets JSON file")
	fs.StringVar(&outputDir, "o", "", "Output directory")
	fs.Var(&signatures, "s", "App signature, repeatable or comma-separated")
	fs.StringVar(&certificatePath, "cert", "", "Signing certificate path (PEM or DER)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ObfuscationKey:  obfuscationKey,
			PackageName:     packageName,
			MakeInjectable:  makeInjectable,
			Transform:       transform,
			TransformKey:    transformKey,
			CopyToClipboard: copyToClipboard,
		},
		Files: Files{
			SecretsFile: secretsFile,
			OutputDir:   outputDir,
		},
		Identity: Identity{
			AppSignatures:   signatures,
			CertificatePath: certificatePath,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}
