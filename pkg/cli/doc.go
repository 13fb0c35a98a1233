// Package cli provides reusable helpers for command wiring and execution.
//
//   - cli/cmd: the cobra command tree
//   - cli/helpers: global flags, logging setup, config and resolver lookup
//   - cli/output: shell, JSON and YAML rendering of command vectors
//   - cli/parallel: bounded concurrent generation across environments
//   - cli/ui/errorhandler: cobra error normalization and exit codes
package cli
