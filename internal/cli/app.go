// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-secrets-vault/internal/app"
	"github.com/MKhiriev/go-secrets-vault/internal/codegen"
	"github.com/MKhiriev/go-secrets-vault/internal/config"
	"github.com/MKhiriev/go-secrets-vault/internal/identity"
	"github.com/MKhiriev/go-secrets-vault/internal/logger"
	"github.com/MKhiriev/go-secrets-vault/internal/service"
	"github.com/MKhiriev/go-secrets-vault/models"
	"github.com/MKhiriev/go-secrets-vault/vault"
)

// Commands understood by [App.Run]. An empty argument list runs keep.
const (
	CommandKeep        = "keep"
	CommandFingerprint = "fingerprint"
	CommandReveal      = "reveal"
	CommandVersion     = "version"
)

// revealPackage is the package name the reveal host answers to.
const revealPackage = "secretsvault.reveal"

// App runs a single secretsvault command.
type App struct {
	services  *service.Services
	cfg       *config.StructuredConfig
	buildInfo models.AppBuildInfo
	out       io.Writer
	copy      func(string) error
	logger    *logger.Logger
}

var _ Runner = (*App)(nil)

// Option customizes an [App].
type Option func(*App)

// WithOutput redirects command output, os.Stdout by default.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(a *App) { a.copy = write }
}

// NewApp constructs an [App] for cfg.
func NewApp(services *service.Services, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...Option) *App {
	if log == nil {
		log = logger.Nop()
	}
	a := &App{
		services:  services,
		cfg:       cfg,
		buildInfo: buildInfo,
		out:       os.Stdout,
		copy:      clipboard.WriteAll,
		logger:    log,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run dispatches cfg.Args to the matching command.
func (a *App) Run(ctx context.Context) error {
	command, args := CommandKeep, []string(nil)
	if len(a.cfg.Args) > 0 {
		command, args = a.cfg.Args[0], a.cfg.Args[1:]
	}

	a.logger.Debug().Str("command", command).Strs("args", args).Msg("running command")

	switch command {
	case CommandKeep:
		return a.keep(ctx)
	case CommandFingerprint:
		return a.fingerprint(args)
	case CommandReveal:
		return a.reveal(args)
	case CommandVersion:
		_, err := fmt.Fprint(a.out, a.buildInfo.String())
		return err
	default:
		fmt.Fprintln(a.out, app.MsgUsage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) keep(ctx context.Context) error {
	result, err := a.services.KeepSecretsService.Keep(ctx, service.KeepRequest{
		SecretsFile:    a.cfg.Files.SecretsFile,
		OutputDir:      a.cfg.Files.OutputDir,
		PackageName:    a.cfg.App.PackageName,
		ObfuscationKey: a.cfg.App.ObfuscationKey,
		AppSignatures:  a.cfg.Identity.AppSignatures,
		Transform:      a.cfg.App.Transform,
		TransformKey:   a.cfg.App.TransformKey,
		MakeInjectable: a.cfg.App.MakeInjectable,
	})
	if err != nil {
		return err
	}

	for _, file := range result.Files {
		fmt.Fprintf(a.out, app.MsgGeneratedFile+"\n", file.Flavor, file.Path, len(file.Getters))
		for _, key := range file.Skipped {
			fmt.Fprintf(a.out, app.MsgSkippedKey+"\n", file.Flavor, key)
		}
	}

	if result.KeyGenerated {
		fmt.Fprintln(a.out, app.MsgKeyGenerated)
		fmt.Fprintln(a.out, result.ObfuscationKey)
		return a.copyIfRequested(result.ObfuscationKey)
	}
	return nil
}

// fingerprint prints the allow-list form of every certificate in the given
// files, or in the configured certificate when none are given.
func (a *App) fingerprint(paths []string) error {
	if len(paths) == 0 && a.cfg.Identity.CertificatePath != "" {
		paths = []string{a.cfg.Identity.CertificatePath}
	}
	if len(paths) == 0 {
		return ErrNoCertificate
	}

	var fingerprints []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading certificate file: %w", err)
		}
		certs, err := identity.ParseCertificates(data)
		if err != nil {
			return fmt.Errorf("error parsing certificate file %s: %w", path, err)
		}
		for _, cert := range certs {
			fingerprint := identity.Fingerprint(cert)
			fingerprints = append(fingerprints, fingerprint)
			fmt.Fprintf(a.out, "%s\t%s\n", fingerprint, path)
		}
	}

	return a.copyIfRequested(strings.Join(fingerprints, ","))
}

// reveal decodes hex-encoded obfuscated values through a vault built from
// the current configuration, with the configured certificate as caller.
func (a *App) reveal(values []string) error {
	if len(values) == 0 {
		return ErrNoObfuscatedValue
	}
	if a.cfg.App.ObfuscationKey == "" {
		return ErrNoObfuscationKey
	}

	v, host, err := a.revealVault()
	if err != nil {
		return err
	}

	released := true
	for _, value := range values {
		obfuscated, err := hex.DecodeString(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidHex, err)
		}

		plain := v.GetOriginalKey(host, obfuscated)
		if plain == "" {
			released = false
			plain = app.MsgNotReleased
		}
		fmt.Fprintln(a.out, plain)
	}

	if !released {
		return ErrSecretNotReleased
	}
	return nil
}

func (a *App) revealVault() (*vault.Vault, vault.Host, error) {
	key := a.cfg.App.ObfuscationKey
	opts := vault.Options{
		Passphrase:         key,
		SkipSignatureCheck: len(a.cfg.Identity.AppSignatures) == 0,
		Logger:             &a.logger.Logger,
	}

	for _, signature := range a.cfg.Identity.AppSignatures {
		encoded, err := vault.Obfuscate(key, []byte(signature), nil)
		if err != nil {
			return nil, nil, err
		}
		opts.Signatures = append(opts.Signatures, encoded)
	}

	if a.cfg.App.Transform == codegen.TransformSealed {
		transform, err := vault.NewSealedTransform(a.cfg.App.TransformKey)
		if err != nil {
			return nil, nil, err
		}
		opts.Transform = transform
	}

	v, err := vault.New(opts)
	if err != nil {
		return nil, nil, err
	}

	if a.cfg.Identity.CertificatePath == "" {
		if !opts.SkipSignatureCheck {
			return nil, nil, ErrNoCertificate
		}
		return v, nil, nil
	}

	host, err := vault.NewFileHost(revealPackage, a.cfg.Identity.CertificatePath)
	if err != nil {
		return nil, nil, err
	}
	return v, host, nil
}

func (a *App) copyIfRequested(text string) error {
	if !a.cfg.App.CopyToClipboard || text == "" {
		return nil
	}
	if err := a.copy(text); err != nil {
		return fmt.Errorf("%w: %w", ErrCopyingToClipboard, err)
	}
	fmt.Fprintln(a.out, app.MsgKeyCopied)
	return nil
}
