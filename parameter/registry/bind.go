package registry

import (
	"context"
	"strings"

	"github.com/hashicorp/go-multierror"
	cmds "github.com/ipfs/go-ipfs-cmds"
	"github.com/magellantoo/web-build-tools/parameter"
)

// Bind passes each registered parameter the value the request holds for it.
//
// Parameters missing from the request receive their default (if any),
// otherwise nil.
// A choice outside of its alternatives is reported as a client error,
// since it came from the user.
// Every value is resolved and checked before any parameter receives one,
// so a client error or cancellation leaves the values of the previous Bind intact.
// Values the parser produced with an unexpected shape are collected
// and returned together after every parameter was processed.
func (r *Registry) Bind(ctx context.Context, request *cmds.Request) error {
	raws, err := r.resolve(ctx, request.Options)
	if err != nil {
		return err
	}
	var errs *multierror.Error
	for i, param := range r.params {
		raw := raws[i]
		log.Debugf("binding %s parameter %s: %v",
			param.Kind(), param.LongName(), raw)
		if err := param.Accept(raw); err != nil {
			log.Errorf("parser value does not fit its parameter: %s", err)
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

// resolve returns the raw value for each parameter, in registration order.
func (r *Registry) resolve(ctx context.Context, options cmds.OptMap) ([]any, error) {
	raws := make([]any, len(r.params))
	for i, param := range r.params {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, provided := options[r.keys[param]]
		if choice, isChoice := param.(*parameter.Choice); isChoice {
			if !provided {
				if defaultValue, ok := choice.DefaultValue(); ok {
					raw = defaultValue
				}
			}
			if err := checkChoice(choice, raw); err != nil {
				return nil, err
			}
		}
		raws[i] = raw
	}
	return raws, nil
}

func checkChoice(choice *parameter.Choice, raw any) error {
	value, isString := raw.(string)
	if !isString {
		// Not a user error; Accept will reject it if it must.
		return nil
	}
	alternatives := choice.Alternatives()
	for _, alternative := range alternatives {
		if value == alternative {
			return nil
		}
	}
	return cmds.Errorf(cmds.ErrClient,
		"%s's argument %q is not a valid choice - expecting one of: %s",
		choice.LongName(), value, strings.Join(alternatives, ", "))
}
