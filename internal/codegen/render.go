// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
)

// Transform kinds understood by [Render].
const (
	TransformNone   = "none"
	TransformSealed = "sealed"
)

// Getter is a single generated accessor.
type Getter struct {
	// Key is the secret key as written in the secrets file.
	Key string
	// Obfuscated is the encoded value embedded in the getter body.
	Obfuscated []byte
}

// Name returns the generated method name.
func (g Getter) Name() string {
	return GetterName(g.Key)
}

// File describes one generated source file, covering a single flavor.
type File struct {
	Package    string
	Flavor     string
	Passphrase string

	// Signatures are the obfuscated allow-list entries. When empty and
	// SkipSignatureCheck is false, every caller is denied.
	Signatures         [][]byte
	SkipSignatureCheck bool

	Transform    string
	TransformKey string

	Injectable bool
	Getters    []Getter
}

// TypeName returns the generated type name of f.
func (f File) TypeName() string {
	return TypeName(f.Flavor)
}

// VaultVar returns the name of the package-level vault variable.
func (f File) VaultVar() string {
	return lowerFirst(f.TypeName()) + "Vault"
}

// ProviderName returns the name of the generated provider interface.
func (f File) ProviderName() string {
	return f.TypeName() + "Provider"
}

var sourceTemplate = template.Must(template.New("secrets").Funcs(template.FuncMap{
	"quote": strconv.Quote,
	"bytes": byteLiteral,
}).Parse(`// Code generated by secretsvault. DO NOT EDIT.

package {{ .Package }}

import "github.com/MKhiriev/go-secrets-vault/vault"

var {{ .VaultVar }} = vault.MustNew(vault.Options{
	Passphrase: {{ quote .Passphrase }},
{{- if .Signatures }}
	Signatures: [][]byte{
{{- range .Signatures }}
		{ {{ bytes . }} },
{{- end }}
	},
{{- end }}
{{- if .SkipSignatureCheck }}
	SkipSignatureCheck: true,
{{- end }}
{{- if eq .Transform "sealed" }}
	Transform: vault.MustSealedTransform({{ quote .TransformKey }}),
{{- end }}
	CacheVerification: true,
})

type {{ .TypeName }} struct{}
{{ if .Injectable }}
type {{ .ProviderName }} interface {
{{- range .Getters }}
	{{ .Name }}(host vault.Host) string
{{- end }}
}

var _ {{ .ProviderName }} = {{ .TypeName }}{}
{{ end }}
{{- range .Getters }}
func ({{ $.TypeName }}) {{ .Name }}(host vault.Host) string {
	obfuscatedSecret := []byte{ {{ bytes .Obfuscated }} }
	return {{ $.VaultVar }}.GetOriginalKey(host, obfuscatedSecret)
}
{{ end }}`))

// Render produces the gofmt-formatted source for f.
func Render(f File) ([]byte, error) {
	if f.Package == "" {
		return nil, ErrEmptyPackageName
	}
	switch f.Transform {
	case "", TransformNone, TransformSealed:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, f.Transform)
	}

	seen := make(map[string]struct{}, len(f.Getters))
	for _, g := range f.Getters {
		name := g.Name()
		if err := validGetter(name); err != nil {
			return nil, err
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateGetter, name)
		}
		seen[name] = struct{}{}
	}

	var buf bytes.Buffer
	if err := sourceTemplate.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("error executing source template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("error formatting generated source: %w", err)
	}

	return src, nil
}

// byteLiteral formats b as the body of a []byte literal: 0x5e, 0x7, 0xb.
func byteLiteral(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%#x", c)
	}
	return strings.Join(parts, ", ")
}
