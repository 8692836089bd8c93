package assets

// AssetLoader defines the contract for loading certificate templates and images.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type AssetLoader interface {
	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// LoadImage loads an image asset by file name (extension included,
	// e.g. "tree.png"). Returns ErrImageNotFound if the image doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadImage(name string) ([]byte, error)
}
