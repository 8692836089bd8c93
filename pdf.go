package santacerts

import "context"

// pdfConverter abstracts HTML-file to PDF-file conversion to allow
// different backends. The contract is file-path-in, file-path-out.
type pdfConverter interface {
	// CheckAvailable verifies the backend's external tool is usable.
	// Returns ErrMissingDependency naming the tool when it is not.
	CheckAvailable() error

	// ConvertFile renders the HTML file at htmlPath into a PDF at pdfPath.
	ConvertFile(ctx context.Context, htmlPath, pdfPath string) error

	// Close releases backend resources.
	Close() error
}

// Compile-time interface checks.
var (
	_ pdfConverter = (*wkhtmltopdfConverter)(nil)
	_ pdfConverter = (*rodConverter)(nil)
)

// newPDFConverter selects the backend for the configured engine.
// validateServiceConfig guarantees engine is a known value.
func newPDFConverter(cfg serviceConfig) pdfConverter {
	if cfg.engine == EngineChrome {
		return newRodConverter(cfg.timeout)
	}
	return newWkhtmltopdfConverter()
}
