// Package config loads and validates YAML configuration for certificate generation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// maxConfigSize limits YAML input to prevent memory exhaustion.
const maxConfigSize = 1 << 20

// Field length limits.
const (
	MaxNameLength     = 100  // Recipient full name
	MaxSlugLength     = 50   // Output file name stem
	MaxMessageLength  = 5000 // Personalized message (markdown)
	MaxGiftLength     = 50   // "R3,500"
	MaxGiftNoteLength = 200  // Short note under the gift amount
	MaxSenderLength   = 100  // Certificate sender name
	MaxEngineLength   = 20   // "wkhtmltopdf", "chrome"
	MaxTemplateLength = 100  // Template asset name
)

// Year bounds for the certificate year (0 = current year).
const (
	MinYear = 2000
	MaxYear = 2100
)

// Config holds all configuration for certificate generation.
type Config struct {
	Output      OutputConfig      `yaml:"output"`
	PDF         PDFConfig         `yaml:"pdf"`
	Certificate CertificateConfig `yaml:"certificate"`
	Assets      AssetsConfig      `yaml:"assets"`
	Recipients  []RecipientConfig `yaml:"recipients"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory (default: "build")
}

// PDFConfig defines PDF engine options.
type PDFConfig struct {
	Engine         string `yaml:"engine"`         // "wkhtmltopdf" (default) or "chrome"
	TimeoutSeconds int    `yaml:"timeoutSeconds"` // 0 = library default
}

// CertificateConfig defines certificate-wide rendering options.
type CertificateConfig struct {
	Sender   string `yaml:"sender"`   // Signature name (default: "Santa Claus")
	Year     int    `yaml:"year"`     // 0 = current year
	Template string `yaml:"template"` // Template asset name (default: "certificate")
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// RecipientConfig defines one recipient. Message is markdown and is converted
// to HTML before rendering.
type RecipientConfig struct {
	Name     string `yaml:"name"`
	Slug     string `yaml:"slug"` // Empty = derived from first name
	Message  string `yaml:"message"`
	Gift     string `yaml:"gift"`
	GiftNote string `yaml:"giftNote"`
}

// Engine name constants.
const (
	EngineWkhtmltopdf = "wkhtmltopdf"
	EngineChrome      = "chrome"
)

// DefaultConfig returns the built-in configuration: wkhtmltopdf engine,
// build/ output directory, and no recipient overrides.
func DefaultConfig() *Config {
	return &Config{
		Output:      OutputConfig{Dir: "build"},
		PDF:         PDFConfig{Engine: EngineWkhtmltopdf},
		Certificate: CertificateConfig{Sender: "Santa Claus", Template: "certificate"},
		Assets:      AssetsConfig{BasePath: ""},
	}
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("certificate.sender", c.Certificate.Sender, MaxSenderLength); err != nil {
		return err
	}
	if err := validateFieldLength("certificate.template", c.Certificate.Template, MaxTemplateLength); err != nil {
		return err
	}
	if c.Certificate.Year != 0 {
		if c.Certificate.Year < MinYear || c.Certificate.Year > MaxYear {
			return fmt.Errorf("certificate.year: must be between %d and %d, got %d", MinYear, MaxYear, c.Certificate.Year)
		}
	}

	if err := validateFieldLength("pdf.engine", c.PDF.Engine, MaxEngineLength); err != nil {
		return err
	}
	if c.PDF.Engine != "" {
		switch strings.ToLower(c.PDF.Engine) {
		case EngineWkhtmltopdf, EngineChrome:
			// valid
		default:
			return fmt.Errorf("pdf.engine: invalid value %q (must be wkhtmltopdf or chrome)", c.PDF.Engine)
		}
	}
	if c.PDF.TimeoutSeconds < 0 {
		return fmt.Errorf("pdf.timeoutSeconds: must not be negative, got %d", c.PDF.TimeoutSeconds)
	}

	for i, r := range c.Recipients {
		if r.Name == "" {
			return fmt.Errorf("recipients[%d].name: required", i)
		}
		if err := validateFieldLength(fmt.Sprintf("recipients[%d].name", i), r.Name, MaxNameLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("recipients[%d].slug", i), r.Slug, MaxSlugLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("recipients[%d].message", i), r.Message, MaxMessageLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("recipients[%d].gift", i), r.Gift, MaxGiftLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("recipients[%d].giftNote", i), r.GiftNote, MaxGiftNoteLength); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrConfigParse, maxConfigSize)
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-santa-certs/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-santa-certs", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
