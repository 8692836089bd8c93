package assets

import (
	"embed"
	"fmt"
)

//go:embed templates/*
var templates embed.FS

//go:embed images/*
var images embed.FS

// EmbeddedLoader loads assets from embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads an HTML template from embedded assets by name.
// The name should not include the .html extension.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateTemplateName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// LoadImage loads an image from embedded assets by file name.
func (e *EmbeddedLoader) LoadImage(name string) ([]byte, error) {
	if err := ValidateImageName(name); err != nil {
		return nil, err
	}

	content, err := images.ReadFile("images/" + name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrImageNotFound, name)
	}

	return content, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
