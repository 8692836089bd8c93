package santacerts_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	santacerts "github.com/alnah/go-santa-certs"
)

// Example demonstrates generating the built-in certificates as HTML.
// For PDF output, drop WithHTMLOnly (requires wkhtmltopdf or Chrome).
func Example() {
	dir, err := os.MkdirTemp("", "santa-certs-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	svc, err := santacerts.New(
		santacerts.WithOutputDir(dir),
		santacerts.WithYear(2025),
		santacerts.WithHTMLOnly(true), // Skip PDF conversion for this example
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer svc.Close()

	results, err := svc.GenerateAll(context.Background(), santacerts.BuiltinRecipients())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Generated %d certificates\n", len(results))
	// Output: Generated 2 certificates
}

// Example_customRecipient demonstrates generating a certificate for a
// recipient that is not in the built-in list.
func Example_customRecipient() {
	dir, err := os.MkdirTemp("", "santa-certs-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	svc, err := santacerts.New(
		santacerts.WithOutputDir(dir),
		santacerts.WithSender("Father Christmas"),
		santacerts.WithYear(2025),
		santacerts.WithHTMLOnly(true),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer svc.Close()

	recipient := santacerts.Recipient{
		Name:     "Amara Botha",
		Message:  "<p>You were kind and brave all year.</p>",
		Gift:     "A telescope",
		GiftNote: "For watching the stars on clear nights.",
	}

	results, err := svc.GenerateAll(context.Background(), []santacerts.Recipient{recipient})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	html, err := os.ReadFile(results[0].HTMLPath)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if strings.Contains(string(html), "Amara Botha") {
		fmt.Println("Certificate personalized")
	}
	// Output: Certificate personalized
}

// ExampleConvertMessage demonstrates converting a markdown message to
// the HTML used on a certificate.
func ExampleConvertMessage() {
	html, err := santacerts.ConvertMessage(context.Background(),
		"You were **wonderful** this year.")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(html, "<strong>wonderful</strong>") {
		fmt.Println("Message converted")
	}
	// Output: Message converted
}

// ExampleRecipient_OutputSlug demonstrates how output file names are
// derived when no explicit slug is set.
func ExampleRecipient_OutputSlug() {
	r := santacerts.Recipient{Name: "Lia du Plessis"}
	fmt.Println(r.OutputSlug())
	// Output: lia
}
