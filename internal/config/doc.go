// Package config handles loading and parsing the clowder configuration file.
//
// # Overview
//
// Clowder needs exactly four things to reach the cat store: the store's base
// URL, the collection name, the static auth token, and a request timeout.
// All four live in one TOML file; none of them is ever embedded in the
// binary (the token is a secret and the URL is deployment-specific).
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/clowder/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// base_url has no sensible default; a Config without one fails Validate and
// the program refuses to start with a pointer at the config path.
//
// # TOML Format
//
// Example clowder config.toml:
//
//	base_url = "https://cat-clicker-demo.firebaseio.com"
//	collection = "cats"
//	auth_token = "s3cret"
//	request_timeout_seconds = 10
//
// Tilde expansion is performed on the config path automatically.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, and
// TOML parsing errors. A missing config file is NOT an error; defaults are
// returned and Validate decides whether they are enough.
package config
