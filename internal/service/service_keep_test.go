// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-secrets-vault/internal/codegen"
	"github.com/MKhiriev/go-secrets-vault/internal/crypto"
	"github.com/MKhiriev/go-secrets-vault/internal/logger"
	"github.com/MKhiriev/go-secrets-vault/internal/mock"
	"github.com/MKhiriev/go-secrets-vault/internal/service"
	"github.com/MKhiriev/go-secrets-vault/internal/store"
	"github.com/MKhiriev/go-secrets-vault/internal/validators"
	"github.com/MKhiriev/go-secrets-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const secretsJSON = `[
	{"key": "generalKey1", "value": "generalValue1"},
	{"key": "commonKey1", "value": "commonFlavorValue1Dev", "flavor": "dev"},
	{"key": "generalKey1", "value": "duplicate"},
	{"key": "devOnly", "value": "devOnlyValue1", "flavor": "dev"}
]`

func writeSecrets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secrets.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newKeepService() service.KeepSecretsService {
	return service.NewServices(store.NewStorages(), nil).KeepSecretsService
}

func TestKeepSecretsService_Keep_WritesFlavors(t *testing.T) {
	out := t.TempDir()
	req := service.KeepRequest{
		SecretsFile:    writeSecrets(t, secretsJSON),
		OutputDir:      out,
		PackageName:    "secrets",
		ObfuscationKey: testPassphrase,
		AppSignatures:  []string{"19:C4:0C:B9:CB:7B:EA:36:CC:B9:97:3A:A3:F4:C2:16"},
	}

	result, err := newKeepService().Keep(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, testPassphrase, result.ObfuscationKey)
	assert.False(t, result.KeyGenerated)
	require.Len(t, result.Files, 2)

	mainFile := result.Files[0]
	assert.Equal(t, models.DefaultFlavor, mainFile.Flavor)
	assert.Equal(t, filepath.Join(out, "main", codegen.FileName), mainFile.Path)
	assert.Equal(t, []string{"GetGeneralKey1"}, mainFile.Getters)
	assert.Equal(t, []string{"generalKey1"}, mainFile.Skipped)

	dev := result.Files[1]
	assert.Equal(t, "dev", dev.Flavor)
	assert.Equal(t, []string{"GetCommonKey1", "GetDevOnly"}, dev.Getters)
	assert.Empty(t, dev.Skipped)

	mainSrc, err := os.ReadFile(mainFile.Path)
	require.NoError(t, err)
	assert.Contains(t, string(mainSrc), "type MainSecrets struct{}")
	assert.Contains(t, string(mainSrc), "0x5e, 0x7, 0xb, 0x1, 0x4b, 0x2, 0x54, 0x63, 0x51, 0x55, 0x17, 0x3, 0x1")
	assert.NotContains(t, string(mainSrc), "generalValue1")
	assert.NotContains(t, string(mainSrc), "SkipSignatureCheck")

	devSrc, err := os.ReadFile(dev.Path)
	require.NoError(t, err)
	assert.Contains(t, string(devSrc), "type Secrets struct{}")
	assert.Contains(t, string(devSrc), "0x5a, 0xd, 0x8, 0x9, 0x56, 0xd, 0x7e, 0x59, 0x51, 0x4f, 0xd, 0x14, 0x66, 0x7, 0xf, 0x16, 0x3, 0x0, 0x73, 0x0, 0x44")
	assert.Contains(t, string(devSrc), "0x5d, 0x7, 0x13, 0x2b, 0x57, 0xf, 0x41, 0x63, 0x51, 0x55, 0x17, 0x3, 0x1")
}

func TestKeepSecretsService_Keep_LogsFlavor(t *testing.T) {
	var buf bytes.Buffer
	keep := service.NewKeepSecretsService(store.NewStorages(), validators.NewSecretValidator(), logger.NewLoggerTo("test", &buf))

	_, err := keep.Keep(context.Background(), service.KeepRequest{
		SecretsFile:    writeSecrets(t, secretsJSON),
		OutputDir:      t.TempDir(),
		PackageName:    "secrets",
		ObfuscationKey: testPassphrase,
	})
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, `"flavor":"main"`)
	assert.Contains(t, logs, `"flavor":"dev"`)
	assert.Contains(t, logs, "key already added, skipping")
}

func TestKeepSecretsService_Keep_GeneratesKey(t *testing.T) {
	out := t.TempDir()
	req := service.KeepRequest{
		SecretsFile: writeSecrets(t, `[{"key": "apiKey", "value": "v"}]`),
		OutputDir:   out,
		PackageName: "secrets",
	}

	result, err := newKeepService().Keep(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, result.KeyGenerated)
	assert.Len(t, result.ObfuscationKey, codegen.ObfuscationKeyLength)

	src, err := os.ReadFile(result.Files[0].Path)
	require.NoError(t, err)
	assert.Contains(t, string(src), result.ObfuscationKey)
	assert.Regexp(t, `SkipSignatureCheck:\s+true`, string(src))
}

func TestKeepSecretsService_Keep_SealedTransform(t *testing.T) {
	req := service.KeepRequest{
		SecretsFile:    writeSecrets(t, `[{"key": "apiKey", "value": "v"}]`),
		OutputDir:      t.TempDir(),
		PackageName:    "secrets",
		ObfuscationKey: testPassphrase,
		Transform:      codegen.TransformSealed,
		TransformKey:   "sealing-key",
	}

	result, err := newKeepService().Keep(context.Background(), req)
	require.NoError(t, err)

	src, err := os.ReadFile(result.Files[0].Path)
	require.NoError(t, err)
	assert.Contains(t, string(src), `vault.MustSealedTransform("sealing-key")`)
}

func TestKeepSecretsService_Keep_Errors(t *testing.T) {
	valid := `[{"key": "apiKey", "value": "v"}]`

	tests := []struct {
		name    string
		secrets string
		mutate  func(*service.KeepRequest)
		wantErr error
	}{
		{name: "missing file", mutate: func(r *service.KeepRequest) { r.SecretsFile = "/nonexistent/secrets.json" }, wantErr: store.ErrSecretsFileNotFound},
		{name: "empty list", secrets: `[]`, wantErr: service.ErrNoSecrets},
		{name: "invalid key", secrets: `[{"key": "api-key", "value": "v"}]`, wantErr: validators.ErrInvalidKey},
		{name: "empty value", secrets: `[{"key": "apiKey", "value": ""}]`, wantErr: validators.ErrEmptyValue},
		{name: "bad signature", secrets: valid, mutate: func(r *service.KeepRequest) { r.AppSignatures = []string{"1A:92"} }, wantErr: service.ErrInvalidSignature},
		{name: "unknown transform", secrets: valid, mutate: func(r *service.KeepRequest) { r.Transform = "rot13" }, wantErr: codegen.ErrUnknownTransform},
		{name: "sealed without key", secrets: valid, mutate: func(r *service.KeepRequest) { r.Transform = codegen.TransformSealed }, wantErr: crypto.ErrEmptyTransformKey},
		{name: "no package", secrets: valid, mutate: func(r *service.KeepRequest) { r.PackageName = "" }, wantErr: codegen.ErrEmptyPackageName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secrets := tt.secrets
			if secrets == "" {
				secrets = valid
			}
			req := service.KeepRequest{
				SecretsFile:    writeSecrets(t, secrets),
				OutputDir:      t.TempDir(),
				PackageName:    "secrets",
				ObfuscationKey: testPassphrase,
			}
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			_, err := newKeepService().Keep(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestKeepSecretsService_Keep_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	secretsStorage := mock.NewMockSecretsStorage(ctrl)
	sourceStorage := mock.NewMockSourceStorage(ctrl)

	secretsStorage.EXPECT().LoadSecrets(gomock.Any(), "secrets.json").
		Return([]models.Secret{{Key: "apiKey", Value: "v"}}, nil)
	sourceStorage.EXPECT().WriteSource(gomock.Any(), filepath.Join("out", "main"), codegen.FileName, gomock.Any()).
		Return("", store.ErrWritingSource)

	keep := service.NewKeepSecretsService(&store.Storages{
		SecretsStorage: secretsStorage,
		SourceStorage:  sourceStorage,
	}, validators.NewSecretValidator(), nil)

	_, err := keep.Keep(context.Background(), service.KeepRequest{
		SecretsFile:    "secrets.json",
		OutputDir:      "out",
		PackageName:    "secrets",
		ObfuscationKey: testPassphrase,
	})
	assert.ErrorIs(t, err, store.ErrWritingSource)
}

func TestKeepSecretsService_Keep_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	secretsStorage := mock.NewMockSecretsStorage(ctrl)
	loadErr := errors.New("disk on fire")
	secretsStorage.EXPECT().LoadSecrets(gomock.Any(), gomock.Any()).Return(nil, loadErr)

	keep := service.NewKeepSecretsService(&store.Storages{
		SecretsStorage: secretsStorage,
		SourceStorage:  mock.NewMockSourceStorage(ctrl),
	}, validators.NewSecretValidator(), nil)

	_, err := keep.Keep(context.Background(), service.KeepRequest{SecretsFile: "secrets.json"})
	assert.ErrorIs(t, err, loadErr)
}
