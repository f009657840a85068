package problemgen

// DefaultRetryMultiplier bounds the draws spent on one batch: at most
// count*multiplier attempts.
const DefaultRetryMultiplier = 20

// Config controls the behavior of the Engine.
type Config struct {
	// Topic is stamped on every generated question.
	Topic string

	// Validators is the ordered list of validators to run on every
	// candidate, before the subtopic's own admission checks. They execute
	// in order; the first failure rejects the draw.
	Validators []Validator

	// RetryMultiplier caps attempts per batch at count*RetryMultiplier.
	RetryMultiplier int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Topic: DefaultTopic,
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerFormatValidator{},
		},
		RetryMultiplier: DefaultRetryMultiplier,
	}
}
