package scale

import "fmt"

// StepAction moves a servings stepper.
type StepAction string

// Stepper actions.
const (
	StepIncrease StepAction = "increase"
	StepDecrease StepAction = "decrease"
	StepReset    StepAction = "reset"
)

// ParseStepAction validates a stepper action name.
func ParseStepAction(s string) (StepAction, error) {
	switch a := StepAction(s); a {
	case StepIncrease, StepDecrease, StepReset:
		return a, nil
	}
	return "", fmt.Errorf("scale: unknown step action %q", s)
}

// Step applies a to the current servings count. Decrease stops at one and
// reset returns to the recipe's own servings.
func Step(current, original int, a StepAction) int {
	switch a {
	case StepIncrease:
		return current + 1
	case StepDecrease:
		if current > 1 {
			return current - 1
		}
	case StepReset:
		return original
	}
	return current
}
