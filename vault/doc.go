// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault is the runtime half of secretsvault. Generated code builds
// one [Vault] per flavor and calls [Vault.GetOriginalKey] from every getter.
//
// A Vault releases a secret only when the signing certificate of the calling
// application, reached through a [Host], has a fingerprint on the embedded
// allow-list. Every failure returns "" and the cause is never surfaced to
// the caller.
//
//	var mainSecretsVault = vault.MustNew(vault.Options{
//		Passphrase: "chEYKrGb5PJx0I09oa1mlEuXE5FxPjX2",
//		Signatures: [][]byte{{0x5e, 0x7, ...}},
//	})
//
//	func (MainSecrets) GetApiKey1(host vault.Host) string {
//		obfuscatedSecret := []byte{0x5e, 0x7, 0xb, 0x1}
//		return mainSecretsVault.GetOriginalKey(host, obfuscatedSecret)
//	}
package vault
