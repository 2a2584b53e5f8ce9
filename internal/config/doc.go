// Package config provides configuration loading, merging, and validation
// facilities for the secretsvault tool.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// A later source cannot reset a field to its zero value: a JSON
// "copy_to_clipboard": false leaves -copy in effect, and an empty string
// keeps the earlier value.
//
// The main entry point is [GetStructuredConfig].
package config
