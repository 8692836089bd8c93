package santacerts

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-santa-certs/internal/assets"
)

// Placeholder tokens recognized in certificate templates. Tokens not in
// this set are left in the output untouched.
const (
	tokenName     = "{{NAME}}"
	tokenMessage  = "{{MESSAGE}}"
	tokenGift     = "{{GIFT}}"
	tokenGiftNote = "{{GIFT_NOTE}}"
	tokenSender   = "{{SENDER}}"
	tokenYear     = "{{YEAR}}"
	tokenTreeImg  = "{{TREE_IMG}}"
	tokenSealImg  = "{{SEAL_IMG}}"
)

// Image asset file names resolved through the asset loader.
const (
	treeImageName = "tree.png"
	sealImageName = "wax_seal_small.jpg"
)

// certificateRenderer fills the certificate template for one recipient.
// The template and the two inlined images are loaded once at construction
// and shared across recipients; rendering itself is pure.
type certificateRenderer struct {
	template string
	treeURI  string
	sealURI  string
	sender   string
	year     int
}

// newCertificateRenderer loads the template and image assets via loader and
// pre-encodes the images as data URIs.
func newCertificateRenderer(loader assets.AssetLoader, templateName, sender string, year int) (*certificateRenderer, error) {
	tmpl, err := loader.LoadTemplate(templateName)
	if err != nil {
		if errors.Is(err, assets.ErrTemplateNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, templateName)
		}
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	treeURI, err := loadImageDataURI(loader, treeImageName)
	if err != nil {
		return nil, err
	}
	sealURI, err := loadImageDataURI(loader, sealImageName)
	if err != nil {
		return nil, err
	}

	return &certificateRenderer{
		template: tmpl,
		treeURI:  treeURI,
		sealURI:  sealURI,
		sender:   sender,
		year:     year,
	}, nil
}

// Render produces the certificate HTML for one recipient.
// Returns ErrMissingField if a required field is absent. Tokens outside the
// recognized set stay literal in the output.
func (r *certificateRenderer) Render(ctx context.Context, recipient Recipient) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := recipient.Validate(); err != nil {
		return "", err
	}

	replacer := strings.NewReplacer(
		tokenName, recipient.Name,
		tokenMessage, recipient.Message,
		tokenGift, recipient.Gift,
		tokenGiftNote, recipient.GiftNote,
		tokenSender, r.sender,
		tokenYear, strconv.Itoa(r.year),
		tokenTreeImg, r.treeURI,
		tokenSealImg, r.sealURI,
	)

	return replacer.Replace(r.template), nil
}

// loadImageDataURI reads an image asset and encodes it as a base64 data URI.
func loadImageDataURI(loader assets.AssetLoader, name string) (string, error) {
	data, err := loader.LoadImage(name)
	if err != nil {
		if errors.Is(err, assets.ErrImageNotFound) {
			return "", fmt.Errorf("%w: %q", ErrImageNotFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return "data:" + imageMIMEType(name) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// imageMIMEType maps an image file name to its MIME type by extension.
func imageMIMEType(name string) string {
	switch {
	case strings.HasSuffix(name, ".png"):
		return "image/png"
	case strings.HasSuffix(name, ".jpg"), strings.HasSuffix(name, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(name, ".gif"):
		return "image/gif"
	case strings.HasSuffix(name, ".svg"):
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
