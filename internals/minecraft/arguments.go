package minecraft

import (
	"encoding/json"
	"fmt"

	"github.com/minepkg/mclaunch/internals/merrors"
)

// ArgumentKind tells which fields of an [Argument] are set
type ArgumentKind int

const (
	// ArgumentLiteral is a plain string that is always used
	ArgumentLiteral ArgumentKind = iota
	// ArgumentConditional is only used if its rules apply
	ArgumentConditional
)

// Argument is one entry of the "game" or "jvm" argument list.
// It is either a plain string or an object with rules and a value
type Argument struct {
	Kind ArgumentKind
	// Literal is set for ArgumentLiteral
	Literal string
	// Rules, CompatibilityRules and Value are set for ArgumentConditional
	Rules              []Rule
	CompatibilityRules []Rule
	Value              stringSlice
}

// LiteralArgument returns an argument that is always used
func LiteralArgument(value string) Argument {
	return Argument{Kind: ArgumentLiteral, Literal: value}
}

// ConditionalArgument returns an argument that is only used if the rules apply
func ConditionalArgument(rules []Rule, values ...string) Argument {
	return Argument{Kind: ArgumentConditional, Rules: rules, Value: values}
}

type conditionalArgument struct {
	Rules              []Rule      `json:"rules,omitempty"`
	CompatibilityRules []Rule      `json:"compatibilityRules,omitempty"`
	Value              stringSlice `json:"value"`
}

// UnmarshalJSON accepts a string or a conditional object
func (a *Argument) UnmarshalJSON(data []byte) error {
	if len(data) != 0 && data[0] == '"' {
		a.Kind = ArgumentLiteral
		return json.Unmarshal(data, &a.Literal)
	}

	var cond conditionalArgument
	if err := json.Unmarshal(data, &cond); err != nil {
		return &merrors.SchemaError{Source: "arguments", Field: "value", Err: err}
	}
	*a = Argument{
		Kind:               ArgumentConditional,
		Rules:              cond.Rules,
		CompatibilityRules: cond.CompatibilityRules,
		Value:              cond.Value,
	}
	return nil
}

// MarshalJSON writes the argument in the same shape it was read
func (a Argument) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case ArgumentLiteral:
		return json.Marshal(a.Literal)
	case ArgumentConditional:
		return json.Marshal(conditionalArgument{
			Rules:              a.Rules,
			CompatibilityRules: a.CompatibilityRules,
			Value:              a.Value,
		})
	default:
		return nil, fmt.Errorf("unknown argument kind %d", a.Kind)
	}
}

// Applies returns true if this argument should be used in the given environment
func (a Argument) Applies(env Environment) bool {
	switch a.Kind {
	case ArgumentConditional:
		return RulesApply(a.CompatibilityRules, env) && RulesApply(a.Rules, env)
	default:
		return true
	}
}

// Values returns the unexpanded strings of this argument
func (a Argument) Values() []string {
	switch a.Kind {
	case ArgumentConditional:
		return a.Value
	default:
		return []string{a.Literal}
	}
}

func (a Argument) String() string {
	switch a.Kind {
	case ArgumentConditional:
		return a.Value.String()
	default:
		return a.Literal
	}
}
