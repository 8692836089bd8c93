package santacerts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakePDFConverter simulates the PDF backend without external tools.
type fakePDFConverter struct {
	availableErr error
	convertErr   error
	failFor      string // substring of htmlPath that triggers convertErr
	converted    []string
}

func (f *fakePDFConverter) CheckAvailable() error {
	return f.availableErr
}

func (f *fakePDFConverter) ConvertFile(ctx context.Context, htmlPath, pdfPath string) error {
	if f.convertErr != nil && (f.failFor == "" || strings.Contains(htmlPath, f.failFor)) {
		return f.convertErr
	}
	f.converted = append(f.converted, pdfPath)
	return os.WriteFile(pdfPath, []byte("%PDF-1.4 fake"), 0o644)
}

func (f *fakePDFConverter) Close() error { return nil }

// newTestService builds a Service writing into dir, backed by fake.
func newTestService(t *testing.T, dir string, fake pdfConverter) *Service {
	t.Helper()
	svc, err := New(WithOutputDir(dir), WithYear(2025))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	svc.converter = fake
	return svc
}

func TestService_GenerateAll_TwoRecipients(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fake := &fakePDFConverter{}
	svc := newTestService(t, dir, fake)
	defer svc.Close()

	results, err := svc.GenerateAll(context.Background(), BuiltinRecipients())
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	wantFiles := []string{
		"lia_certificate.html", "lia_certificate.pdf",
		"daniel_certificate.html", "daniel_certificate.pdf",
	}
	for _, name := range wantFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != len(wantFiles) {
		t.Errorf("output dir has %d entries, want %d", len(entries), len(wantFiles))
	}
}

func TestService_GenerateAll_Idempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	svc := newTestService(t, dir, &fakePDFConverter{})
	defer svc.Close()

	for i := 0; i < 3; i++ {
		if _, err := svc.GenerateAll(context.Background(), BuiltinRecipients()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 4 {
		t.Errorf("after repeated runs output dir has %d entries, want 4", len(entries))
	}
}

func TestService_GenerateAll_MissingDependencyAbortsBeforeOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fake := &fakePDFConverter{availableErr: ErrMissingDependency}
	svc := newTestService(t, dir, fake)
	defer svc.Close()

	_, err := svc.GenerateAll(context.Background(), BuiltinRecipients())
	if !errors.Is(err, ErrMissingDependency) {
		t.Fatalf("want ErrMissingDependency, got %v", err)
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("ReadDir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("output written despite missing dependency: %d entries", len(entries))
	}
}

func TestService_GenerateAll_ConversionFailureDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fake := &fakePDFConverter{
		convertErr: ErrConversionFailed,
		failFor:    "lia",
	}
	svc := newTestService(t, dir, fake)
	defer svc.Close()

	results, err := svc.GenerateAll(context.Background(), BuiltinRecipients())
	if err == nil {
		t.Fatal("expected aggregate error, got nil")
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	if results[0].Err == nil {
		t.Error("lia: expected conversion error")
	}
	if results[1].Err != nil {
		t.Errorf("daniel: unexpected error: %v", results[1].Err)
	}
	if results[1].PDFPath == "" {
		t.Error("daniel: PDF was not produced")
	}

	// Lia's HTML is still written; only the PDF conversion failed
	if _, statErr := os.Stat(filepath.Join(dir, "lia_certificate.html")); statErr != nil {
		t.Errorf("lia HTML missing: %v", statErr)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "lia_certificate.pdf")); statErr == nil {
		t.Error("lia PDF exists despite failed conversion")
	}
}

func TestService_GenerateAll_MissingFieldFailsThatRecipientOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	svc := newTestService(t, dir, &fakePDFConverter{})
	defer svc.Close()

	recipients := []Recipient{
		{Name: "Broken"}, // no message/gift/note
		{Name: "Lia", Message: "msg", Gift: "R1", GiftNote: "note"},
	}

	results, err := svc.GenerateAll(context.Background(), recipients)
	if err == nil {
		t.Fatal("expected aggregate error, got nil")
	}
	if !errors.Is(results[0].Err, ErrMissingField) {
		t.Errorf("want ErrMissingField for first recipient, got %v", results[0].Err)
	}
	if results[1].Err != nil {
		t.Errorf("second recipient failed: %v", results[1].Err)
	}
}

func TestService_GenerateAll_EmptyRecipients(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, t.TempDir(), &fakePDFConverter{})
	defer svc.Close()

	if _, err := svc.GenerateAll(context.Background(), nil); !errors.Is(err, ErrNoRecipients) {
		t.Fatalf("want ErrNoRecipients, got %v", err)
	}
}

func TestService_HTMLOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	svc, err := New(WithOutputDir(dir), WithYear(2025), WithHTMLOnly(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer svc.Close()

	results, err := svc.GenerateAll(context.Background(), BuiltinRecipients())
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}

	for _, r := range results {
		if r.PDFPath != "" {
			t.Errorf("%s: PDF produced in HTML-only mode", r.Recipient.Name)
		}
		if r.HTMLPath == "" {
			t.Errorf("%s: no HTML produced", r.Recipient.Name)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("output dir has %d entries, want 2", len(entries))
	}
}

func TestService_CheckDependencies(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, t.TempDir(), &fakePDFConverter{availableErr: ErrMissingDependency})
	defer svc.Close()

	if err := svc.CheckDependencies(); !errors.Is(err, ErrMissingDependency) {
		t.Fatalf("want ErrMissingDependency, got %v", err)
	}

	htmlOnly, err := New(WithHTMLOnly(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer htmlOnly.Close()
	if err := htmlOnly.CheckDependencies(); err != nil {
		t.Errorf("HTML-only mode reported dependency error: %v", err)
	}
}

func TestService_GenerateAll_CancelledContext(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, t.TempDir(), &fakePDFConverter{})
	defer svc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.GenerateAll(ctx, BuiltinRecipients()); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestService_OutputContainsInlinedImages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	svc := newTestService(t, dir, &fakePDFConverter{})
	defer svc.Close()

	if _, err := svc.GenerateAll(context.Background(), BuiltinRecipients()); err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "lia_certificate.html"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	html := string(content)

	if !strings.Contains(html, "data:image/png;base64,") {
		t.Error("tree image not inlined as base64")
	}
	if !strings.Contains(html, "data:image/jpeg;base64,") {
		t.Error("seal image not inlined as base64")
	}
	if !strings.Contains(html, "Lia du Plessis") {
		t.Error("recipient name missing from output")
	}
}
