// Package assets provides the certificate HTML template and image assets.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in certificate template and the two
// image assets (tree icon, wax seal) embedded at compile time.
//
// FilesystemLoader allows users to provide custom assets from a directory,
// with path traversal protection and symlink resolution.
//
// AssetResolver is the primary loader used by the renderer. It tries the
// custom FilesystemLoader first, falling back to EmbeddedLoader if the asset
// is not found. This enables overriding specific assets while keeping defaults.
//
// # Directory Structure
//
// Assets are organized by type:
//
//	{basePath}/
//	├── templates/
//	│   └── {name}.html          # certificate templates
//	└── images/
//	    └── {name}               # image files (tree.png, wax_seal_small.jpg)
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
