package compression

import (
	"fmt"
	"runtime"

	"github.com/iamNilotpal/sortcheck/internal/core/domain"
	validation "github.com/iamNilotpal/sortcheck/pkg/errors"
)

// Returns CompressionOptions initialized with recommended defaults.
// Snapshots are small, so a single encoder goroutine is enough.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Enable:             true,
		Level:              DefaultLevel,
		EncoderConcurrency: 1,
		DecoderConcurrency: 1,
	}
}

// Checks if the compression options are valid and returns an error if any option
// is outside acceptable bounds.
func Validate(input *domain.CompressionOptions) error {
	if input.Level < FastestLevel || input.Level > BestLevel {
		return validation.NewValidationError(
			"level", input.Level,
			fmt.Errorf("compression level must be between %d and %d, got %d", FastestLevel, BestLevel, input.Level),
		)
	}

	if int(input.EncoderConcurrency) > runtime.NumCPU() {
		return validation.NewValidationError(
			"encoderConcurrency", input.EncoderConcurrency,
			fmt.Errorf("encoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.EncoderConcurrency),
		)
	}

	if int(input.DecoderConcurrency) > runtime.NumCPU() {
		return validation.NewValidationError(
			"decoderConcurrency", input.DecoderConcurrency,
			fmt.Errorf("decoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.DecoderConcurrency),
		)
	}

	return nil
}
