// Package codegen renders obfuscated secrets into Go source files.
//
// A rendered file holds one zero-size type per flavor with one getter per
// secret. Each getter embeds its obfuscated bytes as a byte-slice literal and
// releases the plaintext through [vault.Vault.GetOriginalKey] only to callers
// whose signing certificate is on the embedded allow-list.
package codegen
