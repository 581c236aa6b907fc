// Package config loads runtime configuration for the Crewdeck CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env overlay (see parseEnv).
//  3. Optional JSON file selected via flags: -c or -config (see parseJson).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   root URL of the backend API
//	-t int      request timeout (seconds)
//	-d string   credentials database path
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://crewdeck.example.com/api",
//	  "request_timeout": "15s",
//	  "credentials_db": "crewdeck.db"
//	}
package config
