// Package notify writes formatted notifications to CLI users.
//
// [WriteMessage] prints a message with a type-specific symbol and color:
// success (✔), error (✗), warning (⚠), info (ℹ), activity (►), and title
// messages with a custom emoji. Colors are disabled automatically when the
// output is not a terminal.
package notify
