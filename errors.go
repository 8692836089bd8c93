package santacerts

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoRecipients      = errors.New("recipient list cannot be empty")
	ErrMissingField      = errors.New("required recipient field missing")
	ErrTemplateRender    = errors.New("template rendering failed")
	ErrMessageConvert    = errors.New("message conversion failed")
	ErrWriteOutput       = errors.New("failed to write output file")
	ErrMissingDependency = errors.New("required external tool not found")
	ErrConversionFailed  = errors.New("PDF conversion failed")

	// Chrome engine errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Option validation errors.
	ErrInvalidEngine = errors.New("invalid PDF engine")
	ErrInvalidYear   = errors.New("invalid year")

	// Asset loading errors.
	ErrTemplateNotFound = errors.New("template not found")
	ErrImageNotFound    = errors.New("image not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
