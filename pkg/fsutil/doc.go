// Package fsutil holds filesystem path helpers used by the CLI.
package fsutil
