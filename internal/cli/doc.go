// Package cli implements the interactive Crewdeck shell: a small REPL over
// the API client with session-aware commands for teams, projects, boards,
// files, notifications, docs and API keys.
package cli
