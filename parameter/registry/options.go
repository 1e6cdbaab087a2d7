package registry

import (
	"fmt"
	"strings"

	cmds "github.com/ipfs/go-ipfs-cmds"
	"github.com/magellantoo/web-build-tools/parameter"
)

// newCmdsOptionFunc follows the conventions of the cmds-lib `Option` constructors.
//
// I.e. the first argument is the primary name (`some-name` => `--some-name`),
// additional arguments are aliases (`n` => `-n`),
// and the final argument is the description for the option.
type newCmdsOptionFunc func(...string) cmds.Option

// Options returns a cmds option for each registered parameter,
// in registration order.
func (r *Registry) Options() []cmds.Option {
	options := make([]cmds.Option, len(r.params))
	for i, param := range r.params {
		options[i] = r.option(param)
	}
	return options
}

func (r *Registry) option(param parameter.Parameter) cmds.Option {
	var (
		names       = []string{r.keys[param]}
		description = param.Description()
		constructor newCmdsOptionFunc
	)
	if shortName, ok := param.ShortName(); ok {
		names = append(names, optionName(shortName))
	}
	if withArg, ok := param.(parameter.WithArgument); ok {
		description = fmt.Sprintf("<%s> %s", withArg.ArgumentName(), description)
	}
	switch typed := param.(type) {
	case *parameter.Flag:
		constructor = cmds.BoolOption
	case *parameter.Integer:
		constructor = cmds.Int64Option
	case *parameter.String:
		constructor = cmds.StringOption
	case *parameter.StringList:
		constructor = cmds.StringsOption
	case *parameter.Choice:
		description = fmt.Sprintf("%s Choices: %s.",
			description, strings.Join(typed.Alternatives(), ", "))
		option := cmds.StringOption(append(names, description)...)
		if defaultValue, ok := typed.DefaultValue(); ok {
			option = option.WithDefault(defaultValue)
		}
		return option
	default:
		// The set of parameter types is closed,
		// this implies a new kind was added without an option for it.
		panic(fmt.Sprintf("no cmds option for %s parameter %s",
			param.Kind(), param.LongName()))
	}
	return constructor(append(names, description)...)
}
