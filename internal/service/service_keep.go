// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-secrets-vault/internal/codegen"
	"github.com/MKhiriev/go-secrets-vault/internal/crypto"
	"github.com/MKhiriev/go-secrets-vault/internal/logger"
	"github.com/MKhiriev/go-secrets-vault/internal/store"
	"github.com/MKhiriev/go-secrets-vault/internal/validators"
	"github.com/MKhiriev/go-secrets-vault/models"
)

// KeepRequest describes a single generation run.
type KeepRequest struct {
	SecretsFile string
	OutputDir   string
	PackageName string

	// ObfuscationKey is the passphrase the keystream is derived from. A
	// random key is generated when empty.
	ObfuscationKey string

	// AppSignatures are certificate fingerprints, colon-separated or plain.
	// When empty the generated code skips the signature check.
	AppSignatures []string

	Transform    string
	TransformKey string

	MakeInjectable bool
}

// GeneratedFile reports one written source file.
type GeneratedFile struct {
	Flavor  string
	Path    string
	Getters []string

	// Skipped lists keys dropped because their getter was already added.
	Skipped []string
}

// KeepResult reports the outcome of [KeepSecretsService.Keep].
type KeepResult struct {
	ObfuscationKey string
	KeyGenerated   bool
	Files          []GeneratedFile
}

type keepSecretsService struct {
	secretsStorage store.SecretsStorage
	sourceStorage  store.SourceStorage
	validator      validators.Validator
	logger         *logger.Logger
}

// NewKeepSecretsService constructs a [KeepSecretsService] backed by storages.
func NewKeepSecretsService(storages *store.Storages, validator validators.Validator, log *logger.Logger) KeepSecretsService {
	if log == nil {
		log = logger.Nop()
	}
	return &keepSecretsService{
		secretsStorage: storages.SecretsStorage,
		sourceStorage:  storages.SourceStorage,
		validator:      validator,
		logger:         log,
	}
}

// Keep loads the secrets file, obfuscates every value and writes one source
// file per flavor under req.OutputDir/<flavor>.
func (k *keepSecretsService) Keep(ctx context.Context, req KeepRequest) (KeepResult, error) {
	secrets, err := k.secretsStorage.LoadSecrets(ctx, req.SecretsFile)
	if err != nil {
		return KeepResult{}, fmt.Errorf("error loading secrets: %w", err)
	}
	if len(secrets) == 0 {
		return KeepResult{}, ErrNoSecrets
	}
	if err = k.validator.Validate(ctx, secrets); err != nil {
		return KeepResult{}, fmt.Errorf("invalid secrets file %s: %w", req.SecretsFile, err)
	}

	signatures, err := codegen.NormalizeSignatures(req.AppSignatures)
	if err != nil {
		return KeepResult{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	result := KeepResult{ObfuscationKey: req.ObfuscationKey}
	if result.ObfuscationKey == "" {
		if result.ObfuscationKey, err = codegen.GenerateObfuscationKey(); err != nil {
			return KeepResult{}, err
		}
		result.KeyGenerated = true
		k.logger.Warn().Msg("no obfuscation key provided, generated a random one")
	}

	transform, err := newTransform(req.Transform, req.TransformKey)
	if err != nil {
		return KeepResult{}, err
	}

	passphrase := []byte(result.ObfuscationKey)
	signatureCodec := crypto.NewCodec(passphrase, nil)
	secretCodec := crypto.NewCodec(passphrase, transform)

	encodedSignatures := make([][]byte, 0, len(signatures))
	for _, s := range signatures {
		encoded, err := signatureCodec.Encode([]byte(s))
		if err != nil {
			return KeepResult{}, fmt.Errorf("error encoding app signature: %w", err)
		}
		encodedSignatures = append(encodedSignatures, encoded)
	}
	if len(signatures) == 0 {
		k.logger.Warn().Msg("no app signatures provided, generated code will not verify callers")
	}

	for _, group := range models.GroupByFlavor(secrets) {
		file := codegen.File{
			Package:            req.PackageName,
			Flavor:             group.Flavor,
			Passphrase:         result.ObfuscationKey,
			Signatures:         encodedSignatures,
			SkipSignatureCheck: len(encodedSignatures) == 0,
			Transform:          req.Transform,
			TransformKey:       req.TransformKey,
			Injectable:         req.MakeInjectable,
		}

		generated, err := k.keepFlavor(ctx, req.OutputDir, file, group.Secrets, secretCodec)
		if err != nil {
			return KeepResult{}, fmt.Errorf("flavor %s: %w", group.Flavor, err)
		}
		result.Files = append(result.Files, generated)
	}

	return result, nil
}

func (k *keepSecretsService) keepFlavor(ctx context.Context, outputDir string, file codegen.File, secrets []models.Secret, codec crypto.Codec) (GeneratedFile, error) {
	generated := GeneratedFile{Flavor: file.Flavor}
	log := k.logger.WithField("flavor", file.Flavor)

	added := make(map[string]struct{}, len(secrets))
	for _, s := range secrets {
		getter := codegen.GetterName(s.Key)
		if _, ok := added[getter]; ok {
			log.Warn().Str("key", s.Key).Msg("key already added, skipping")
			generated.Skipped = append(generated.Skipped, s.Key)
			continue
		}
		added[getter] = struct{}{}

		encoded, err := codec.Encode([]byte(s.Value))
		if err != nil {
			return GeneratedFile{}, fmt.Errorf("error encoding secret %s: %w", s.Key, err)
		}
		file.Getters = append(file.Getters, codegen.Getter{Key: s.Key, Obfuscated: encoded})
		generated.Getters = append(generated.Getters, getter)
	}

	src, err := codegen.Render(file)
	if err != nil {
		return GeneratedFile{}, err
	}

	generated.Path, err = k.sourceStorage.WriteSource(ctx, filepath.Join(outputDir, file.Flavor), codegen.FileName, src)
	if err != nil {
		return GeneratedFile{}, err
	}

	log.Info().Str("path", generated.Path).Int("getters", len(generated.Getters)).Msg("generated secrets source")
	return generated, nil
}

func newTransform(kind, key string) (crypto.Transform, error) {
	switch kind {
	case "", codegen.TransformNone:
		return nil, nil
	case codegen.TransformSealed:
		return crypto.NewSealedTransform(key)
	default:
		return nil, fmt.Errorf("%w: %q", codegen.ErrUnknownTransform, kind)
	}
}
