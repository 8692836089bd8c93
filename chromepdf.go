package santacerts

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-santa-certs/internal/fileutil"
)

// A4 page dimensions in inches. The certificate template lays out a full
// A4 page itself, so margins are zero.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// rodConverter converts HTML files to PDF using headless Chrome via go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodConverter struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodConverter creates a rodConverter with the given timeout.
func newRodConverter(timeout time.Duration) *rodConverter {
	return &rodConverter{timeout: timeout}
}

// CheckAvailable verifies a Chrome/Chromium binary can be located.
// ROD_BROWSER_BIN overrides detection; otherwise rod's launcher searches
// known install locations and its managed download cache.
func (c *rodConverter) CheckAvailable() error {
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		if fileutil.FileExists(bin) {
			return nil
		}
		return fmt.Errorf("%w: chrome (ROD_BROWSER_BIN=%s does not exist)", ErrMissingDependency, bin)
	}
	if _, found := launcher.LookPath(); !found {
		return fmt.Errorf("%w: chrome (install Chrome/Chromium or set ROD_BROWSER_BIN)", ErrMissingDependency)
	}
	return nil
}

// ensureBrowser lazily connects to the browser.
func (c *rodConverter) ensureBrowser() error {
	if c.browser != nil {
		return nil
	}

	// Configure launcher
	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	c.browser = rod.New().ControlURL(u)
	if err := c.browser.Connect(); err != nil {
		c.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// ConvertFile opens the local HTML file in headless Chrome, prints it to
// A4 PDF, and writes the result to pdfPath.
func (c *rodConverter) ConvertFile(ctx context.Context, htmlPath, pdfPath string) error {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := c.ensureBrowser(); err != nil {
		return err
	}

	page, err := c.browser.Page(proto.TargetCreateTarget{URL: "file://" + htmlPath})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Wait for page to load with timeout from context or default
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Check context after page load
	if err := ctx.Err(); err != nil {
		return err
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(0),
		MarginBottom:    floatPtr(0),
		MarginLeft:      floatPtr(0),
		MarginRight:     floatPtr(0),
		PrintBackground: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: reading PDF stream: %v", ErrConversionFailed, err)
	}

	if err := fileutil.WriteFile(pdfPath, pdfBuf); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return nil
}

// Close releases browser resources.
func (c *rodConverter) Close() error {
	if c.browser != nil {
		err := c.browser.Close()
		c.browser = nil
		return err
	}
	return nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
