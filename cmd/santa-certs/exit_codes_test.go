package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	santacerts "github.com/alnah/go-santa-certs"
	"github.com/alnah/go-santa-certs/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "missing dependency", err: santacerts.ErrMissingDependency, want: ExitEngine},
		{name: "conversion failed", err: santacerts.ErrConversionFailed, want: ExitEngine},
		{name: "browser connect", err: santacerts.ErrBrowserConnect, want: ExitEngine},
		{name: "write output", err: santacerts.ErrWriteOutput, want: ExitIO},
		{name: "file not exist", err: os.ErrNotExist, want: ExitIO},
		{name: "permission denied", err: os.ErrPermission, want: ExitIO},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "field too long", err: config.ErrFieldTooLong, want: ExitUsage},
		{name: "missing field", err: santacerts.ErrMissingField, want: ExitUsage},
		{name: "invalid engine", err: santacerts.ErrInvalidEngine, want: ExitUsage},
		{name: "invalid year", err: santacerts.ErrInvalidYear, want: ExitUsage},
		{name: "no recipients", err: santacerts.ErrNoRecipients, want: ExitUsage},
		{name: "unknown error", err: errors.New("boom"), want: ExitGeneral},
		{
			name: "wrapped error unwraps",
			err:  fmt.Errorf("generating: %w", santacerts.ErrMissingDependency),
			want: ExitEngine,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
