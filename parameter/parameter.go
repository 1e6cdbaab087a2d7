// Package parameter declares typed command-line parameters
// and converts the values an external argument parser produced for them
// into their typed form.
//
// A parameter is constructed once from a Definition,
// when the command-line surface is declared.
// Construction validates its names and configuration;
// an error at this stage is a defect in the declaration itself.
// After each parse, the registration layer hands the parser's raw value
// to the parameter's Accept method, and application code reads
// the typed value back through the variant's accessor.
package parameter

import "fmt"

type (
	// Definition describes a parameter before it is constructed.
	//
	// Fields that do not apply to a kind are ignored by its constructor.
	Definition struct {
		// LongName is the primary name, e.g. `--do-a-thing`.
		LongName string
		// ShortName is an optional single letter alias, e.g. `-d`.
		ShortName   string
		Description string
		// ArgumentName names the token following the parameter
		// in help text, e.g. `URL` in `--target URL`.
		ArgumentName string
		// Alternatives and DefaultValue only apply to choices.
		// An empty DefaultValue means there is none,
		// which is why alternatives may not be empty.
		Alternatives []string
		DefaultValue string
	}

	// Parameter is a single named and typed command-line option.
	//
	// The set of implementations is closed;
	// see Choice, Flag, Integer, String, and StringList.
	Parameter interface {
		LongName() string
		// ShortName returns the short alias,
		// and false if the parameter has none.
		ShortName() (string, bool)
		Description() string
		Kind() Kind
		// Accept converts a raw value produced by the parser
		// and stores it, replacing the value from any previous parse.
		// A nil raw value means the parser produced nothing for this parameter.
		//
		// Accept is reserved for the layer that registers parameters with the parser;
		// application code reads values through the typed accessors.
		Accept(raw any) error

		parameter()
	}

	// WithArgument is implemented by parameters that consume
	// the token following them on the command line.
	WithArgument interface {
		Parameter
		ArgumentName() string
	}

	identity struct {
		longName,
		shortName,
		description string
	}

	argument struct{ argumentName string }
)

// Must panics if err is not nil, otherwise it returns the parameter.
// It's intended for package level declarations, where
// an invalid definition should stop the program before anything is parsed.
//
//	var verbose = parameter.Must(parameter.NewFlag(parameter.Definition{...}))
func Must[param Parameter](p param, err error) param {
	if err != nil {
		panic(err)
	}
	return p
}

func newIdentity(definition Definition) (identity, error) {
	if err := validateLongName(definition.LongName); err != nil {
		return identity{}, err
	}
	if shortName := definition.ShortName; shortName != "" {
		if err := validateShortName(shortName); err != nil {
			return identity{}, fmt.Errorf("parameter %s: %w",
				definition.LongName, err)
		}
	}
	return identity{
		longName:    definition.LongName,
		shortName:   definition.ShortName,
		description: definition.Description,
	}, nil
}

func newWithArgument(definition Definition) (identity, argument, error) {
	id, err := newIdentity(definition)
	if err != nil {
		return identity{}, argument{}, err
	}
	if err := validateArgumentName(definition.ArgumentName); err != nil {
		return identity{}, argument{}, fmt.Errorf("parameter %s: %w",
			definition.LongName, err)
	}
	return id, argument{argumentName: definition.ArgumentName}, nil
}

func (id *identity) LongName() string { return id.longName }
func (id *identity) ShortName() (string, bool) {
	return id.shortName, id.shortName != ""
}
func (id *identity) Description() string { return id.description }
func (*identity) parameter() {}

func (arg *argument) ArgumentName() string { return arg.argumentName }
