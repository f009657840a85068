package problemgen

import "testing"

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
		Retryable: true,
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	names := []string{"structural", "answer-format"}
	if len(cfg.Validators) != len(names) {
		t.Fatalf("expected %d validators, got %d", len(names), len(cfg.Validators))
	}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Topic != "python" {
		t.Errorf("expected topic python, got %q", cfg.Topic)
	}
	if cfg.RetryMultiplier != 20 {
		t.Errorf("expected RetryMultiplier 20, got %d", cfg.RetryMultiplier)
	}
}

type stubValidator struct {
	name  string
	fail  bool
	calls *int
}

func (v stubValidator) Name() string { return v.name }

func (v stubValidator) Validate(*Candidate) *ValidationError {
	*v.calls++
	if v.fail {
		return &ValidationError{Validator: v.name, Message: "no", Retryable: true}
	}
	return nil
}

func TestRunValidators_FirstFailureWins(t *testing.T) {
	var a, b, c int
	chain := []Validator{
		stubValidator{name: "a", calls: &a},
		stubValidator{name: "b", fail: true, calls: &b},
		stubValidator{name: "c", fail: true, calls: &c},
	}
	err := runValidators(&Candidate{}, chain)
	if err == nil || err.Validator != "b" {
		t.Fatalf("expected failure from b, got %v", err)
	}
	if a != 1 || b != 1 || c != 0 {
		t.Errorf("calls a=%d b=%d c=%d, want 1 1 0", a, b, c)
	}
}

func TestDedup(t *testing.T) {
	qs := []Question{{Text: "a", Answer: "1"}, {Text: "b"}, {Text: "a", Answer: "2"}, {Text: "c"}, {Text: "b"}}
	got := Dedup(qs)
	if len(got) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].Text != want {
			t.Errorf("got[%d] = %q, want %q", i, got[i].Text, want)
		}
	}
	if got[0].Answer != "1" {
		t.Error("first occurrence should be kept")
	}
}
