package assets

import (
	"fmt"
	"strings"
)

// ValidateTemplateName checks that a template name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or traversal characters.
func ValidateTemplateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// ValidateImageName checks that an image file name is safe. Image names carry
// their extension, so a single dot is allowed but separators and traversal
// sequences are not.
func ValidateImageName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
