// Package config provides configuration loading, merging, and validation
// facilities for the panel binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (exported into the environment, never overriding it)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the panel API server
// and [GetPanelConfig] for the terminal panel.
package config
