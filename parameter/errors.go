package parameter

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

var (
	ErrInvalidLongName      = errors.New("invalid long name")
	ErrInvalidShortName     = errors.New("invalid short name")
	ErrInvalidArgumentName  = errors.New("invalid argument name")
	ErrTooFewAlternatives   = errors.New("too few alternatives")
	ErrDuplicateAlternative = errors.New("duplicate alternative")
	ErrEmptyAlternative     = errors.New("alternatives must not be empty")
	ErrInvalidDefault       = errors.New("invalid default value")
	// ErrUnexpectedValue is wrapped by every ValueError.
	ErrUnexpectedValue = errors.New("unexpected value")
)

// ValueError is returned by Accept when the raw value
// does not have the shape the parameter's kind expects.
// It indicates the parser disagrees with the parameter's declaration,
// not that the user typed something invalid.
type ValueError struct {
	LongName string
	Kind     Kind
	Value    any
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s parameter %s received %s: %s",
		e.Kind, e.LongName, ErrUnexpectedValue, serialize(e.Value))
}

func (e *ValueError) Unwrap() error { return ErrUnexpectedValue }

func unexpectedValue(p Parameter, value any) error {
	return &ValueError{
		LongName: p.LongName(),
		Kind:     p.Kind(),
		Value:    value,
	}
}

func serialize(value any) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%#v", value)
	}
	return string(encoded)
}
