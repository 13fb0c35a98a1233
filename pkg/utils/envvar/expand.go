// Package envvar expands ${VAR_NAME} placeholders in configuration values.
package envvar

import (
	"os"
	"regexp"
)

// pattern matches ${VAR_NAME} placeholders.
var pattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// LookupFunc resolves a variable name, reporting whether it is set.
type LookupFunc func(name string) (string, bool)

// Expand replaces ${VAR_NAME} placeholders with values from the process environment.
// Unset variables expand to an empty string.
func Expand(value string) string {
	return ExpandWith(value, os.LookupEnv)
}

// ExpandWith replaces ${VAR_NAME} placeholders using lookup.
// Unset variables expand to an empty string.
func ExpandWith(value string, lookup LookupFunc) string {
	if value == "" {
		return value
	}

	return pattern.ReplaceAllStringFunc(value, func(match string) string {
		resolved, _ := lookup(match[2 : len(match)-1])

		return resolved
	})
}
