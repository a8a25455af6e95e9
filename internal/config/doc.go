// Package config provides configuration loading, merging, and validation
// facilities for the maintenance search view.
//
// Configuration is assembled from multiple sources in the following order
// (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Built-in defaults fill whatever is still unset. The main entry points are
// [GetServerConfig] for the web front end and [GetClientConfig] for the
// terminal front end.
package config
