//go:build cucumber

package bank

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/hawarnekar/pyquiz/internal/problemgen"
)

// TestApportionScenarios runs the mixed quiz feature scenarios.
func TestApportionScenarios(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "apportion",
		ScenarioInitializer: InitializeApportionScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/apportion.feature"},
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeApportionScenario wires steps for apportion feature scenarios.
func InitializeApportionScenario(ctx *godog.ScenarioContext) {
	state := &apportionState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*state = apportionState{}
		return ctx, nil
	})

	ctx.Step(`^the mix "([^"]*)"$`, state.givenMix)
	ctx.Step(`^(\d+) questions are apportioned$`, state.whenApportioned)
	ctx.Step(`^the counts are "([^"]*)"$`, state.thenCounts)
	ctx.Step(`^a mixed (easy|medium|hard) quiz of (\d+) questions is built$`, state.whenBuilt)
	ctx.Step(`^the quiz has (\d+) questions$`, state.thenQuizSize)
	ctx.Step(`^the quiz has (\d+) "([^"]*)" questions$`, state.thenSubtopicCount)
}

type apportionState struct {
	mix    []problemgen.Subtopic
	allocs []Allocation
	bank   *Bank
}

func (s *apportionState) givenMix(mix string) error {
	for _, name := range strings.Split(mix, ",") {
		sub, err := problemgen.ParseSubtopic(name)
		if err != nil {
			return err
		}
		s.mix = append(s.mix, sub)
	}
	return nil
}

func (s *apportionState) whenApportioned(total int) error {
	s.allocs = Apportion(total, s.mix)
	return nil
}

func (s *apportionState) thenCounts(counts string) error {
	var want, got []int
	for _, c := range strings.Split(counts, ",") {
		n, err := strconv.Atoi(c)
		if err != nil {
			return err
		}
		want = append(want, n)
	}
	for _, a := range s.allocs {
		got = append(got, a.Count)
	}
	if !slices.Equal(got, want) {
		return fmt.Errorf("counts %v, want %v", got, want)
	}
	return nil
}

func (s *apportionState) whenBuilt(difficulty string, count int) error {
	d, err := problemgen.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}
	engine := problemgen.NewEngine(problemgen.NewRand(42))
	s.bank, err = NewBuilder(engine, WithAllSubtopics(s.mix)).BuildQuiz(context.Background(), problemgen.SubtopicAll, d, count)
	return err
}

func (s *apportionState) thenQuizSize(n int) error {
	if got := len(s.bank.Questions); got != n {
		return fmt.Errorf("quiz has %d questions, want %d", got, n)
	}
	return nil
}

func (s *apportionState) thenSubtopicCount(n int, sub string) error {
	if got := len(s.bank.Filter("", problemgen.Subtopic(sub), "")); got != n {
		return fmt.Errorf("quiz has %d %s questions, want %d", got, sub, n)
	}
	return nil
}
