package assets

import (
	"errors"
	"testing"
)

func TestValidateTemplateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple name", input: "certificate"},
		{name: "hyphenated", input: "winter-letter"},
		{name: "empty", input: "", wantErr: true},
		{name: "dot", input: "certificate.html", wantErr: true},
		{name: "slash", input: "sub/certificate", wantErr: true},
		{name: "backslash", input: "sub\\certificate", wantErr: true},
		{name: "traversal", input: "../certificate", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateTemplateName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAssetName) {
					t.Fatalf("want ErrInvalidAssetName, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateImageName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "png with extension", input: "tree.png"},
		{name: "jpg with underscore", input: "wax_seal_small.jpg"},
		{name: "empty", input: "", wantErr: true},
		{name: "slash", input: "images/tree.png", wantErr: true},
		{name: "encoded traversal", input: "..%2Ftree.png", wantErr: true},
		{name: "double dot", input: "../tree.png", wantErr: true},
		{name: "hidden file", input: ".tree.png", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateImageName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAssetName) {
					t.Fatalf("want ErrInvalidAssetName, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
