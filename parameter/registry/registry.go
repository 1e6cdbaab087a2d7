// Package registry connects parameters to the cmds-lib.
//
// A Registry owns the lookup key of each parameter it registers,
// generates the cmds options the parser needs,
// and after a request was parsed, hands each parameter
// the raw value the parser stored under its key.
package registry

import (
	"errors"
	"fmt"
	"strings"

	logging "github.com/ipfs/go-log"
	"github.com/magellantoo/web-build-tools/parameter"
)

var (
	ErrDuplicateName = errors.New("name already registered")
	ErrNotRegistered = errors.New("parameter is not registered")

	log = logging.Logger("parameter/registry")
)

// Registry is not safe for concurrent use.
// Parameters are expected to be registered while the command tree is declared,
// and bound once per request.
type Registry struct {
	params []parameter.Parameter
	keys   map[parameter.Parameter]string
	names  map[string]parameter.Parameter
}

func New() *Registry {
	return &Registry{
		keys:  make(map[parameter.Parameter]string),
		names: make(map[string]parameter.Parameter),
	}
}

// Register adds parameters in order, stopping at the first one
// that reuses a name (long or short) of a previously registered parameter.
func (r *Registry) Register(params ...parameter.Parameter) error {
	for _, param := range params {
		if err := r.register(param); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) register(param parameter.Parameter) error {
	if param == nil {
		return errors.New("nil parameter")
	}
	longName := param.LongName()
	if _, registered := r.keys[param]; registered {
		return fmt.Errorf("%w: %s was already registered",
			ErrDuplicateName, longName)
	}
	names := []string{longName}
	if shortName, ok := param.ShortName(); ok {
		names = append(names, shortName)
	}
	// NOTE: The cmds-lib stores values via the option's primary name,
	// which is the long name without its dashes.
	// Names are compared the same way, since `--v` and `-v`
	// are the same option name to it.
	for _, name := range names {
		if existing, taken := r.names[optionName(name)]; taken {
			return fmt.Errorf("%w: %s is used by both %s and %s",
				ErrDuplicateName, name, existing.LongName(), longName)
		}
	}
	for _, name := range names {
		r.names[optionName(name)] = param
	}
	r.keys[param] = optionName(longName)
	r.params = append(r.params, param)
	return nil
}

// Key returns the name the parser stores the parameter's value under.
func (r *Registry) Key(param parameter.Parameter) (string, bool) {
	key, ok := r.keys[param]
	return key, ok
}

// Parameters returns the registered parameters in registration order.
func (r *Registry) Parameters() []parameter.Parameter {
	return append([]parameter.Parameter(nil), r.params...)
}

// Lookup finds a registered parameter by its long or short name.
// Leading dashes are ignored.
func (r *Registry) Lookup(name string) (parameter.Parameter, error) {
	param, ok := r.names[optionName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	return param, nil
}

func optionName(name string) string { return strings.TrimLeft(name, "-") }
