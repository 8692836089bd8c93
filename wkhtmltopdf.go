package santacerts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
)

// wkhtmltopdfBinary is the external tool name looked up on PATH.
const wkhtmltopdfBinary = "wkhtmltopdf"

// wkhtmltopdfArgs are the fixed rendering options: A4 page, zero margins,
// 300 DPI, print-media CSS, local file access for inlined assets, and
// smart shrinking disabled so the A4-sized layout is not rescaled.
var wkhtmltopdfArgs = []string{
	"--enable-local-file-access",
	"--print-media-type",
	"--page-size", "A4",
	"--dpi", "300",
	"--margin-top", "0",
	"--margin-bottom", "0",
	"--margin-left", "0",
	"--margin-right", "0",
	"--disable-smart-shrinking",
}

// CommandRunner abstracts command execution to enable testing without real
// subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
	LookPath(name string) (string, error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", "", fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("starting command: %w", err)
	}

	stderrContent, err := io.ReadAll(stderrPipe)
	if err != nil {
		return "", "", fmt.Errorf("reading stderr: %w", err)
	}

	err = cmd.Wait()
	return stdout.String(), string(stderrContent), err
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// wkhtmltopdfConverter converts HTML files to PDF by invoking the
// wkhtmltopdf CLI.
type wkhtmltopdfConverter struct {
	runner CommandRunner
}

// newWkhtmltopdfConverter creates a converter with a real command runner.
func newWkhtmltopdfConverter() *wkhtmltopdfConverter {
	return &wkhtmltopdfConverter{runner: &ExecRunner{}}
}

// CheckAvailable verifies wkhtmltopdf is present on PATH.
func (c *wkhtmltopdfConverter) CheckAvailable() error {
	if _, err := c.runner.LookPath(wkhtmltopdfBinary); err != nil {
		return fmt.Errorf("%w: %s (install it or switch to the chrome engine)", ErrMissingDependency, wkhtmltopdfBinary)
	}
	return nil
}

// ConvertFile renders the HTML file at htmlPath into a PDF at pdfPath.
// A non-zero exit status surfaces as ErrConversionFailed carrying stderr.
func (c *wkhtmltopdfConverter) ConvertFile(ctx context.Context, htmlPath, pdfPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	args := append(append([]string{}, wkhtmltopdfArgs...), htmlPath, pdfPath)
	_, stderr, err := c.runner.Run(ctx, wkhtmltopdfBinary, args...)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConversionFailed, stderr, err)
	}

	return nil
}

// Close is a no-op: each conversion is a standalone subprocess.
func (c *wkhtmltopdfConverter) Close() error {
	return nil
}
