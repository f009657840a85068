package problemgen

import (
	"errors"

	"github.com/hawarnekar/pyquiz/internal/pyeval"
)

var (
	// ErrInvalidExpression marks a draw whose expression cannot be
	// evaluated (division by zero, non-finite result). Always resampled.
	ErrInvalidExpression = pyeval.ErrInvalidExpression

	// ErrConstraintExhausted means a synthesizer could not satisfy its
	// constraints within its own budget for one draw.
	ErrConstraintExhausted = errors.New("constraint exhausted")

	// ErrGeneratorUnavailable means no synthesizer is registered for a
	// subtopic on this engine.
	ErrGeneratorUnavailable = errors.New("generator unavailable")

	ErrUnknownSubtopic   = errors.New("unknown subtopic")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)
