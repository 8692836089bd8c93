package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: santa-certs [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate certificates (default when no command given)")
	fmt.Fprintln(w, "  doctor     Diagnose PDF engine availability")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'santa-certs help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: santa-certs generate [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate personalized certificates as HTML and convert them to PDF.")
	fmt.Fprintln(w, "Without a config file, the built-in recipients are used.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: build)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --engine <s>          PDF engine: wkhtmltopdf, chrome")
	fmt.Fprintln(w, "      --sender <s>          Certificate signature name")
	fmt.Fprintln(w, "      --year <n>            Certificate year (0 = current year)")
	fmt.Fprintln(w, "      --template <s>        Template asset name")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "      --html-only           Write HTML only, skip PDF conversion")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: santa-certs doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that a PDF engine is available and the environment is usable.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json     Output results as JSON")
}

// runHelpCmd prints help for a command and returns an exit code.
func runHelpCmd(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version", "help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %q\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
