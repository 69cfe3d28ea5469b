package cli

import (
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	titleColor   = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.Faint)
)

func successf(w io.Writer, format string, a ...any) { _, _ = successColor.Fprintf(w, format, a...) }
func warnf(w io.Writer, format string, a ...any)    { _, _ = warnColor.Fprintf(w, format, a...) }
func errorf(w io.Writer, format string, a ...any)   { _, _ = errorColor.Fprintf(w, format, a...) }
