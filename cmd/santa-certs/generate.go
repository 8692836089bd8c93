package main

import (
	"context"
	"fmt"
	"time"

	santacerts "github.com/alnah/go-santa-certs"
	"github.com/alnah/go-santa-certs/internal/config"
)

// runGenerate orchestrates the generation process: load config, merge flags,
// resolve recipients, and run the service.
func runGenerate(ctx context.Context, flags *generateFlags, env *Environment) error {
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI flags win over config
	mergeFlags(flags, cfg)

	recipients, err := resolveRecipients(ctx, cfg)
	if err != nil {
		return err
	}

	opts := buildServiceOptions(cfg, flags.htmlOnly)
	svc, err := santacerts.New(opts...)
	if err != nil {
		return err
	}
	defer svc.Close()

	start := env.Now()
	results, genErr := svc.GenerateAll(ctx, recipients)

	printResults(env, flags.common, results, env.Now().Sub(start))

	return genErr
}

// mergeFlags applies CLI flag values over config values. Non-empty flags win.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.engine != "" {
		cfg.PDF.Engine = flags.engine
	}
	if flags.sender != "" {
		cfg.Certificate.Sender = flags.sender
	}
	if flags.year != 0 {
		cfg.Certificate.Year = flags.year
	}
	if flags.template != "" {
		cfg.Certificate.Template = flags.template
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
}

// buildServiceOptions translates config into service options.
func buildServiceOptions(cfg *config.Config, htmlOnly bool) []santacerts.Option {
	opts := []santacerts.Option{
		santacerts.WithOutputDir(cfg.Output.Dir),
		santacerts.WithEngine(cfg.PDF.Engine),
		santacerts.WithSender(cfg.Certificate.Sender),
		santacerts.WithYear(cfg.Certificate.Year),
		santacerts.WithTemplate(cfg.Certificate.Template),
		santacerts.WithAssetPath(cfg.Assets.BasePath),
		santacerts.WithHTMLOnly(htmlOnly),
	}
	if cfg.PDF.TimeoutSeconds > 0 {
		opts = append(opts, santacerts.WithTimeout(time.Duration(cfg.PDF.TimeoutSeconds)*time.Second))
	}
	return opts
}

// resolveRecipients returns the recipient list: config recipients when
// present (messages converted from markdown), built-in recipients otherwise.
func resolveRecipients(ctx context.Context, cfg *config.Config) ([]santacerts.Recipient, error) {
	if len(cfg.Recipients) == 0 {
		return santacerts.BuiltinRecipients(), nil
	}

	recipients := make([]santacerts.Recipient, 0, len(cfg.Recipients))
	for _, rc := range cfg.Recipients {
		message, err := santacerts.ConvertMessage(ctx, rc.Message)
		if err != nil {
			return nil, fmt.Errorf("converting message for %q: %w", rc.Name, err)
		}
		recipients = append(recipients, santacerts.Recipient{
			Name:     rc.Name,
			Slug:     rc.Slug,
			Message:  message,
			Gift:     rc.Gift,
			GiftNote: rc.GiftNote,
		})
	}
	return recipients, nil
}

// printResults writes the per-recipient outcomes and the completion summary.
func printResults(env *Environment, common commonFlags, results []santacerts.Result, elapsed time.Duration) {
	var produced int
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "Failed: %s: %v\n", r.Recipient.Name, r.Err)
			continue
		}
		produced++
		if common.quiet {
			continue
		}
		fmt.Fprintf(env.Stdout, "Created %s\n", r.HTMLPath)
		if r.PDFPath != "" {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.PDFPath)
		}
	}

	if common.quiet {
		return
	}

	if common.verbose {
		fmt.Fprintf(env.Stdout, "%d of %d certificates generated in %s\n", produced, len(results), elapsed.Round(time.Millisecond))
	} else {
		fmt.Fprintf(env.Stdout, "%d of %d certificates generated\n", produced, len(results))
	}
}
