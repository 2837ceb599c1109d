package snapshot

import (
	"fmt"
	"strings"

	"github.com/iamNilotpal/sortcheck/internal/adapters/compression"
	"github.com/iamNilotpal/sortcheck/internal/core/domain"
	validation "github.com/iamNilotpal/sortcheck/pkg/errors"
)

// Validate ensures the options are usable after defaults have been applied.
func Validate(opts *domain.SnapshotOptions) error {
	if strings.ContainsAny(opts.Prefix, `/\*?[`) {
		return validation.NewValidationError(
			"prefix", opts.Prefix, fmt.Errorf("prefix must not contain path separators or glob characters"),
		)
	}

	if opts.CompressionOptions.Enable {
		if err := compression.Validate(opts.CompressionOptions); err != nil {
			return err
		}
	}

	return nil
}
