// Package santacerts renders personalized Christmas certificates as HTML
// and converts them to PDF.
//
// # Quick Start
//
// Create a service, generate all certificates, and close when done:
//
//	svc, err := santacerts.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	results, err := svc.GenerateAll(ctx, santacerts.BuiltinRecipients())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results {
//	    fmt.Println(r.PDFPath)
//	}
//
// Each result holds the recipient, the written HTML and PDF paths, and a
// per-recipient error. A failed recipient does not stop the others.
//
// # Generation Pipeline
//
// The pipeline runs once per recipient, strictly in order:
//
//  1. Template rendering (token substitution, inlined base64 images)
//  2. HTML output written to {outputDir}/{slug}_certificate.html
//  3. PDF conversion to {outputDir}/{slug}_certificate.pdf
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc, err := santacerts.New(
//	    santacerts.WithOutputDir("build"),
//	    santacerts.WithEngine(santacerts.EngineChrome),
//	    santacerts.WithSender("Father Christmas"),
//	    santacerts.WithYear(2026),
//	)
//
// # PDF Engines
//
// The default engine shells out to wkhtmltopdf, which must be on PATH.
// GenerateAll verifies the engine is available before writing any output
// and fails with ErrMissingDependency naming the tool if it is not.
//
// The chrome engine renders via headless Chrome (go-rod). Rod downloads a
// managed Chromium on first run; set ROD_BROWSER_BIN to use a pre-installed
// binary and ROD_NO_SANDBOX=1 in containers and CI.
//
// # Custom Assets
//
// Override the built-in template and images with WithAssetPath:
//
//	svc, err := santacerts.New(santacerts.WithAssetPath("/path/to/assets"))
//
// Asset directory structure:
//
//	assets/
//	├── templates/
//	│   └── certificate.html
//	└── images/
//	    ├── tree.png
//	    └── wax_seal_small.jpg
package santacerts
