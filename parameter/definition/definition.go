// Package definition constructs parameters from HCL documents.
//
// Each `parameter` block has two labels, the kind and the name.
// The long name is derived from the name label unless `long_name` is set.
//
//	parameter "choice" "LogLevel" {
//	  short_name   = "-l"
//	  description  = "How much to log."
//	  alternatives = ["error", "info", "debug"]
//	  default      = "error"
//	}
//
//	parameter "stringList" "tag" {
//	  description = "Tag the build. May be repeated."
//	  argument    = "TAG"
//	}
package definition

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/magellantoo/web-build-tools/parameter"
)

// ErrUnknownKind is returned for blocks whose kind label
// doesn't name a parameter kind.
var ErrUnknownKind = errors.New("unknown parameter kind")

type (
	hclDocument struct {
		Parameters []*hclParameter `hcl:"parameter,block"`
	}

	hclParameter struct {
		Kind         string   `hcl:"kind,label"`
		Name         string   `hcl:"name,label"`
		LongName     *string  `hcl:"long_name,optional"`
		ShortName    *string  `hcl:"short_name,optional"`
		Description  *string  `hcl:"description,optional"`
		ArgumentName *string  `hcl:"argument,optional"`
		Alternatives []string `hcl:"alternatives,optional"`
		DefaultValue *string  `hcl:"default,optional"`
	}

	constructor func(parameter.Definition) (parameter.Parameter, error)
)

var constructors = map[string]constructor{
	parameter.KindChoice.String():     construct(parameter.NewChoice),
	parameter.KindFlag.String():       construct(parameter.NewFlag),
	parameter.KindInteger.String():    construct(parameter.NewInteger),
	parameter.KindString.String():     construct(parameter.NewString),
	parameter.KindStringList.String(): construct(parameter.NewStringList),
}

func construct[param parameter.Parameter](newFn func(parameter.Definition) (param, error)) constructor {
	return func(definition parameter.Definition) (parameter.Parameter, error) {
		p, err := newFn(definition)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

// Parse constructs the parameters declared in src, in declaration order.
// The filename is only used in error messages.
func Parse(src []byte, filename string) ([]parameter.Parameter, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse definitions %s: %w", filename, diags)
	}
	return decode(file, filename)
}

// Load is like Parse, but reads the document from a file.
func Load(filePath string) ([]parameter.Parameter, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse definitions %s: %w", filePath, diags)
	}
	return decode(file, filePath)
}

func decode(file *hcl.File, filename string) ([]parameter.Parameter, error) {
	var document hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &document); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode definitions %s: %w", filename, diags)
	}
	params := make([]parameter.Parameter, 0, len(document.Parameters))
	for _, block := range document.Parameters {
		param, err := block.parameter()
		if err != nil {
			return nil, fmt.Errorf("%s: parameter %q: %w", filename, block.Name, err)
		}
		params = append(params, param)
	}
	return params, nil
}

func (block *hclParameter) parameter() (parameter.Parameter, error) {
	newParameter, ok := constructors[block.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, block.Kind)
	}
	return newParameter(block.definition())
}

func (block *hclParameter) definition() parameter.Definition {
	definition := parameter.Definition{
		LongName:     parameter.LongNameFrom(block.Name),
		Alternatives: block.Alternatives,
	}
	for _, pair := range []struct {
		value  *string
		target *string
	}{
		{block.LongName, &definition.LongName},
		{block.ShortName, &definition.ShortName},
		{block.Description, &definition.Description},
		{block.ArgumentName, &definition.ArgumentName},
		{block.DefaultValue, &definition.DefaultValue},
	} {
		if pair.value != nil {
			*pair.target = *pair.value
		}
	}
	return definition
}
