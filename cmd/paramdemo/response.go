package main

import (
	"fmt"
	"io"
	"strings"

	cmds "github.com/ipfs/go-ipfs-cmds"
	"github.com/magellantoo/web-build-tools/parameter"
)

type (
	// Response describes the value a parameter received.
	// Value is nil for parameters that were omitted and have no default.
	Response struct {
		Parameter string      `json:"parameter"`
		Kind      string      `json:"kind"`
		Value     interface{} `json:"value,omitempty" xml:",omitempty"`
	}

	responseTextEncoder struct{ w io.Writer }
)

var ResponseEncoderMap = cmds.EncoderMap{
	cmds.XML:  cmds.Encoders[cmds.XML],
	cmds.JSON: cmds.Encoders[cmds.JSON],
	cmds.Text: func(*cmds.Request) func(io.Writer) cmds.Encoder {
		return func(w io.Writer) cmds.Encoder { return &responseTextEncoder{w: w} }
	},
}

func responseFor(param parameter.Parameter) *Response {
	response := &Response{
		Parameter: param.LongName(),
		Kind:      param.Kind().String(),
	}
	switch typed := param.(type) {
	case *parameter.Flag:
		response.Value = typed.Value()
	case *parameter.Choice:
		response.Value = optional(typed.Value())
	case *parameter.Integer:
		response.Value = optional(typed.Value())
	case *parameter.String:
		response.Value = optional(typed.Value())
	case *parameter.StringList:
		response.Value = typed.Values()
	}
	return response
}

func optional[T any](value T, ok bool) interface{} {
	if !ok {
		return nil
	}
	return value
}

func (e *responseTextEncoder) Encode(v interface{}) error {
	response, ok := v.(*Response)
	if !ok {
		return fmt.Errorf("expected type %T got type %T",
			response, v)
	}
	var value string
	switch typed := response.Value.(type) {
	case nil:
		value = "<unset>"
	case []string:
		value = "[" + strings.Join(typed, ", ") + "]"
	default:
		value = fmt.Sprint(typed)
	}
	_, err := fmt.Fprintf(e.w, "%s (%s): %s\n",
		response.Parameter, response.Kind, value)
	return err
}
