// Package config provides configuration loading, merging, and validation
// facilities for gaspass.
//
// Configuration is assembled from multiple sources; the first source that
// sets a field wins:
//  1. Command-line flags
//  2. GASPASS_ prefixed environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [BindFlags] and [GetStructuredConfig].
package config
