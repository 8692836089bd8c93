package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common    commonFlags
	output    string
	engine    string
	sender    string
	year      int
	template  string
	assetPath string
	htmlOnly  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addGenerateFlags adds generate flags to a FlagSet.
func addGenerateFlags(fs *flag.FlagSet, f *generateFlags) {
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: build)")
	fs.StringVar(&f.engine, "engine", "", "PDF engine: wkhtmltopdf, chrome")
	fs.StringVar(&f.sender, "sender", "", "certificate signature name")
	fs.IntVar(&f.year, "year", 0, "certificate year (0 = current year)")
	fs.StringVar(&f.template, "template", "", "template asset name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML only, skip PDF conversion")
}

// parseGenerateFlags parses arguments for the generate command.
func parseGenerateFlags(args []string) (*generateFlags, error) {
	flags := &generateFlags{}

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(discardWriter{})
	addGenerateFlags(fs, flags)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if len(fs.Args()) > 0 {
		return nil, fmt.Errorf("unexpected argument: %q", fs.Args()[0])
	}

	return flags, nil
}

// discardWriter suppresses pflag's own error output; errors are
// reported by the caller.
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
