// Package config provides configuration loading, merging, and validation
// for the goal-keeper client and stub server.
//
// Configuration is assembled from several layers; later layers override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON config file (path from CONFIG or --config)
//  3. Environment variables
//  4. Command-line flags
//
// The entry points are [GetClientConfig] and [GetServerConfig], which map
// the merged [StructuredConfig] onto a validated role-specific view.
package config
