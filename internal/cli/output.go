package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"metaexport/internal/diagnostic"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
)

func printError(w io.Writer, err error) {
	errorColor.Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}

// printDiagnostics writes warnings always and infos only when verbose.
func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics, verbose bool) {
	for _, d := range diags.Warnings {
		warningColor.Fprint(w, "warning: ")
		fmt.Fprintln(w, d.String())
	}

	if !verbose {
		return
	}

	for _, d := range diags.Infos {
		infoColor.Fprint(w, "info: ")
		fmt.Fprintln(w, d.String())
	}
}

func printSuccess(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, format+"\n", args...)
}
