// Package ui renders console messages with lipgloss styles.
//
// Output is plain text when stdout is not a terminal, so messages can be asserted on in tests.
package ui
