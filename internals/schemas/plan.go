package schemas

import (
	"fmt"
	"strings"

	z "github.com/Oudwins/zog"
)

// MaskedValue is what a sensitive step value renders as. Always eight
// asterisks, never a hint of the underlying length.
const MaskedValue = "********"

type Step struct {
	Action string `json:"action"`
	Target string `json:"target"`
	Value  string `json:"value,omitempty"`
}

// Sensitive reports whether the step's value must be masked before display.
// The contract keys off the target name, not the value.
func (s Step) Sensitive() bool {
	return strings.Contains(strings.ToLower(s.Target), "password")
}

// DisplayValue returns the value safe for rendering.
func (s Step) DisplayValue() string {
	if s.Value != "" && s.Sensitive() {
		return MaskedValue
	}
	return s.Value
}

type Plan struct {
	Task         string `json:"task"`
	Steps        []Step `json:"steps"`
	ReadableText string `json:"readable_text,omitempty"`
}

// Readable renders the plan as stepwise instructions, one line per step:
//
//	Step 1: Goto -> flights.example.com
//	Step 2: Enter -> input[name=password] | Value: ********
//
// Sensitive values are masked.
func (p Plan) Readable() string {
	lines := make([]string, 0, len(p.Steps))
	for i, step := range p.Steps {
		action := capitalize(step.Action)
		if action == "" {
			action = "<action>"
		}
		line := fmt.Sprintf("Step %d: %s -> %s", i+1, action, step.Target)
		if step.Value != "" {
			line += " | Value: " + step.DisplayValue()
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var stepSchema = z.Struct(z.Shape{
	"Action": z.String().Required().Trim(),
	"Target": z.String().Optional().Trim(),
	"Value":  z.String().Optional(),
})

var PlanSchema = z.Struct(z.Shape{
	"Task":         z.String().Required().Trim(),
	"Steps":        z.Slice(stepSchema).Min(1),
	"ReadableText": z.String().Optional(),
})

// ValidatePlan checks a decoded plan before it is submitted for execution.
func ValidatePlan(plan *Plan) error {
	if issues := PlanSchema.Validate(plan); len(issues) > 0 {
		return fmt.Errorf("invalid plan:\n%s", z.Issues.Prettify(issues))
	}
	return nil
}
