package santacerts

import (
	"fmt"
	"strings"
	"time"
)

// PDF engine constants.
const (
	EngineWkhtmltopdf = "wkhtmltopdf"
	EngineChrome      = "chrome"
)

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// Year bounds for certificate rendering.
const (
	MinYear = 2000
	MaxYear = 2100
)

// Recipient holds the personalized fields for one certificate.
// Message is an HTML fragment inserted into the certificate body.
type Recipient struct {
	Name     string
	Slug     string // Output file name stem; empty = derived from first name
	Message  string
	Gift     string
	GiftNote string
}

// OutputSlug returns the file name stem for this recipient.
// Falls back to the lowercased first name when Slug is empty.
func (r Recipient) OutputSlug() string {
	if r.Slug != "" {
		return r.Slug
	}
	fields := strings.Fields(r.Name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// Validate checks that all required fields are present.
// Returns ErrMissingField naming the first absent field.
func (r Recipient) Validate() error {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return fmt.Errorf("%w: name", ErrMissingField)
	case strings.TrimSpace(r.Message) == "":
		return fmt.Errorf("%w: message (recipient %q)", ErrMissingField, r.Name)
	case strings.TrimSpace(r.Gift) == "":
		return fmt.Errorf("%w: gift (recipient %q)", ErrMissingField, r.Name)
	case strings.TrimSpace(r.GiftNote) == "":
		return fmt.Errorf("%w: gift note (recipient %q)", ErrMissingField, r.Name)
	}
	return nil
}

// Result holds the outcome of generating one certificate.
type Result struct {
	Recipient Recipient
	HTMLPath  string
	PDFPath   string // Empty when PDF conversion was skipped or failed
	Err       error  // Per-recipient failure; nil on success
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	outputDir string
	engine    string
	sender    string
	year      int // 0 = resolved from now()
	template  string
	assetPath string
	timeout   time.Duration
	htmlOnly  bool
}

// defaultServiceConfig returns config matching the original certificate run:
// build/ output, wkhtmltopdf engine, Santa Claus signature, current year.
func defaultServiceConfig() serviceConfig {
	return serviceConfig{
		outputDir: "build",
		engine:    EngineWkhtmltopdf,
		sender:    "Santa Claus",
		template:  "certificate",
		timeout:   defaultTimeout,
	}
}

// WithOutputDir sets the directory HTML and PDF files are written to.
func WithOutputDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.cfg.outputDir = dir
		}
	}
}

// WithEngine selects the PDF engine: EngineWkhtmltopdf or EngineChrome.
func WithEngine(engine string) Option {
	return func(s *Service) {
		if engine != "" {
			s.cfg.engine = strings.ToLower(engine)
		}
	}
}

// WithSender sets the signature name on the certificate.
func WithSender(sender string) Option {
	return func(s *Service) {
		if sender != "" {
			s.cfg.sender = sender
		}
	}
}

// WithYear pins the certificate year. Zero means the current year.
func WithYear(year int) Option {
	return func(s *Service) {
		s.cfg.year = year
	}
}

// WithTemplate selects the template asset name (without .html extension).
func WithTemplate(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.cfg.template = name
		}
	}
}

// WithAssetPath sets a custom asset directory. Custom assets take
// precedence over embedded ones with fallback.
func WithAssetPath(path string) Option {
	return func(s *Service) {
		s.cfg.assetPath = path
	}
}

// WithTimeout sets the PDF conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("santacerts: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithHTMLOnly skips PDF conversion; only HTML files are written.
func WithHTMLOnly(htmlOnly bool) Option {
	return func(s *Service) {
		s.cfg.htmlOnly = htmlOnly
	}
}

// validateServiceConfig checks enumerated and bounded option values.
func validateServiceConfig(cfg serviceConfig) error {
	switch cfg.engine {
	case EngineWkhtmltopdf, EngineChrome:
		// valid
	default:
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidEngine, cfg.engine, EngineWkhtmltopdf, EngineChrome)
	}
	if cfg.year != 0 && (cfg.year < MinYear || cfg.year > MaxYear) {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidYear, cfg.year, MinYear, MaxYear)
	}
	return nil
}
