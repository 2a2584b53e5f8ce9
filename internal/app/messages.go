// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared user-facing message strings printed by the
// secretsvault command line.
//
// Keeping them in one place ensures consistent wording across commands.
package app

const (
	// MsgUsage is printed when no known command is given.
	MsgUsage = "usage: secretsvault [flags] keep | fingerprint [cert...] | reveal <hex>... | version"

	// MsgKeyGenerated precedes a freshly generated obfuscation key. The key
	// must be stored to rebuild identical sources.
	MsgKeyGenerated = "generated obfuscation key (store it to reproduce this build):"

	// MsgKeyCopied is printed after a value was placed on the clipboard.
	MsgKeyCopied = "copied to clipboard"

	// MsgGeneratedFile describes one written source file.
	MsgGeneratedFile = "%s: %s (%d getters)"

	// MsgSkippedKey reports a key dropped because its getter was already
	// added to the same flavor.
	MsgSkippedKey = "%s: skipped duplicate key %q"

	// MsgNotReleased is printed by reveal when the vault returned nothing:
	// the certificate is not on the allow-list or the value did not decode.
	MsgNotReleased = "<not released>"
)
