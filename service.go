package santacerts

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/alnah/go-santa-certs/internal/assets"
	"github.com/alnah/go-santa-certs/internal/fileutil"
)

// Service orchestrates certificate generation: render HTML per recipient,
// write it to the output directory, and convert it to PDF.
type Service struct {
	cfg       serviceConfig
	renderer  *certificateRenderer
	converter pdfConverter
	now       func() time.Time
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithOutputDir, WithEngine).
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: defaultServiceConfig(),
		now: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := validateServiceConfig(s.cfg); err != nil {
		return nil, err
	}

	year := s.cfg.year
	if year == 0 {
		year = s.now().Year()
	}

	resolver, err := assets.NewAssetResolver(s.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	s.renderer, err = newCertificateRenderer(resolver, s.cfg.template, s.cfg.sender, year)
	if err != nil {
		return nil, err
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.converter == nil && !s.cfg.htmlOnly {
		s.converter = newPDFConverter(s.cfg)
	}

	return s, nil
}

// GenerateAll runs the full pipeline for every recipient, strictly in order.
//
// The PDF engine's availability is verified up front: a missing dependency
// aborts the run before any file is written. After that, a failure in one
// recipient records the error in its Result and moves on to the next.
// Returns an error alongside the results if any recipient failed.
func (s *Service) GenerateAll(ctx context.Context, recipients []Recipient) ([]Result, error) {
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	if !s.cfg.htmlOnly {
		if err := s.converter.CheckAvailable(); err != nil {
			return nil, err
		}
	}

	results := make([]Result, 0, len(recipients))
	var failed int

	for _, recipient := range recipients {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := s.generateOne(ctx, recipient)
		if result.Err != nil {
			failed++
		}
		results = append(results, result)
	}

	if failed > 0 {
		return results, fmt.Errorf("%d of %d certificates failed", failed, len(recipients))
	}
	return results, nil
}

// generateOne renders, writes, and converts a single certificate.
func (s *Service) generateOne(ctx context.Context, recipient Recipient) Result {
	result := Result{Recipient: recipient}

	htmlContent, err := s.renderer.Render(ctx, recipient)
	if err != nil {
		result.Err = fmt.Errorf("rendering certificate for %q: %w", recipient.Name, err)
		return result
	}

	slug := recipient.OutputSlug()
	htmlPath := filepath.Join(s.cfg.outputDir, slug+"_certificate.html")
	if err := fileutil.WriteFile(htmlPath, []byte(htmlContent)); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return result
	}
	result.HTMLPath = htmlPath

	if s.cfg.htmlOnly {
		return result
	}

	pdfPath := filepath.Join(s.cfg.outputDir, slug+"_certificate.pdf")
	convertCtx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	absHTMLPath, err := filepath.Abs(htmlPath)
	if err != nil {
		absHTMLPath = htmlPath
	}

	if err := s.converter.ConvertFile(convertCtx, absHTMLPath, pdfPath); err != nil {
		result.Err = fmt.Errorf("converting certificate for %q: %w", recipient.Name, err)
		return result
	}
	result.PDFPath = pdfPath

	return result
}

// CheckDependencies verifies the configured PDF engine is usable without
// generating anything. Returns nil in HTML-only mode.
func (s *Service) CheckDependencies() error {
	if s.cfg.htmlOnly || s.converter == nil {
		return nil
	}
	return s.converter.CheckAvailable()
}

// Close releases resources held by the PDF engine.
func (s *Service) Close() error {
	if s.converter != nil {
		return s.converter.Close()
	}
	return nil
}
