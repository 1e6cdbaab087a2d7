package parameter

import (
	"fmt"
	"strings"
)

// Choice is a parameter whose argument must be one of a fixed set of alternatives.
//
// Checking the argument against the alternatives is left to the parser;
// Accept only checks that it received a string.
type Choice struct {
	identity
	alternatives []string
	defaultValue string

	value string
	isSet bool
}

// NewChoice requires at least two distinct, non-empty alternatives,
// and if a default value is defined, it must be one of them.
// An empty default value means there is none.
func NewChoice(definition Definition) (*Choice, error) {
	id, err := newIdentity(definition)
	if err != nil {
		return nil, err
	}
	alternatives := definition.Alternatives
	if count := len(alternatives); count < 2 {
		return nil, fmt.Errorf("parameter %s: %w"+
			" - a choice needs at least 2 alternatives, got %d",
			definition.LongName, ErrTooFewAlternatives, count)
	}
	known := make(map[string]struct{}, len(alternatives))
	for _, alternative := range alternatives {
		if alternative == "" {
			return nil, fmt.Errorf("parameter %s: %w",
				definition.LongName, ErrEmptyAlternative)
		}
		if _, duplicate := known[alternative]; duplicate {
			return nil, fmt.Errorf("parameter %s: %w: %q",
				definition.LongName, ErrDuplicateAlternative, alternative)
		}
		known[alternative] = struct{}{}
	}
	if defaultValue := definition.DefaultValue; defaultValue != "" {
		if _, valid := known[defaultValue]; !valid {
			return nil, fmt.Errorf("parameter %s: %w: %q"+
				" - valid alternatives are: %s",
				definition.LongName, ErrInvalidDefault,
				defaultValue, strings.Join(alternatives, ", "))
		}
	}
	return &Choice{
		identity:     id,
		alternatives: append([]string(nil), alternatives...),
		defaultValue: definition.DefaultValue,
	}, nil
}

func (*Choice) Kind() Kind { return KindChoice }

// Alternatives returns the values the argument may take, in declaration order.
func (c *Choice) Alternatives() []string {
	return append([]string(nil), c.alternatives...)
}

// DefaultValue returns the value the parser should use
// when the parameter is omitted, if there is one.
func (c *Choice) DefaultValue() (string, bool) {
	return c.defaultValue, c.defaultValue != ""
}

func (c *Choice) Accept(raw any) error {
	value, _ := RawOf(raw)
	switch v := value.(type) {
	case Absent:
		c.value, c.isSet = "", false
	case Text:
		c.value, c.isSet = string(v), true
	default:
		return unexpectedValue(c, raw)
	}
	return nil
}

// Value returns the parsed value,
// and false if the parameter was not provided (or not yet parsed).
func (c *Choice) Value() (string, bool) { return c.value, c.isSet }
