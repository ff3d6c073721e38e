// Package ui provides terminal output helpers for pacport.
package ui

import (
	"os"

	"github.com/fatih/color"
)

var (
	// Colors for different message types
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
)

// Symbols for status indicators
var (
	SymbolError   = "✗"
	SymbolWarning = "!"
)

// Init initializes the UI settings based on configuration.
func Init(useColors, useUnicode bool) {
	if !useColors || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	if !useUnicode {
		SymbolError = "[ERROR]"
		SymbolWarning = "[WARN]"
	}
}

// ErrorMsg prints an error message to stderr.
func ErrorMsg(format string, args ...interface{}) {
	Error.Fprintf(os.Stderr, SymbolError+" "+format+"\n", args...)
}

// WarningMsg prints a warning message.
func WarningMsg(format string, args ...interface{}) {
	Warning.Printf(SymbolWarning+" "+format+"\n", args...)
}
