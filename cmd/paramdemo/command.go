package main

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/adrg/xdg"
	cmds "github.com/ipfs/go-ipfs-cmds"
	logging "github.com/ipfs/go-log"
	"github.com/magellantoo/web-build-tools/parameter"
	"github.com/magellantoo/web-build-tools/parameter/definition"
	"github.com/magellantoo/web-build-tools/parameter/registry"
)

const definitionsFile = "paramdemo/parameters.hcl"

var (
	//go:embed parameters.hcl
	builtinDefinitions []byte

	errReservedName = errors.New("name is reserved by the cmds-lib")

	log = logging.Logger("paramdemo")
)

func loadDefinitions() ([]parameter.Parameter, error) {
	filePath, err := xdg.SearchConfigFile(definitionsFile)
	if err != nil {
		log.Debugf("using built-in definitions: %s", err)
		return definition.Parse(builtinDefinitions, "built-in")
	}
	log.Debugf("using definitions from %s", filePath)
	return definition.Load(filePath)
}

func builtinOptions() []cmds.Option {
	return []cmds.Option{
		cmds.OptionEncodingType,
		cmds.OptionTimeout,
		cmds.OptionStreamChannels,
		cmds.BoolOption(cmds.OptLongHelp, "Show the full command help text."),
		cmds.BoolOption(cmds.OptShortHelp, "Show a short version of the command help text."),
	}
}

func newLogLevel() (*parameter.Choice, error) {
	return parameter.NewChoice(parameter.Definition{
		LongName:     "--log-level",
		Description:  "Set the level of every logger.",
		Alternatives: []string{"debug", "info", "warn", "error"},
		DefaultValue: "error",
	})
}

func newCommand(params []parameter.Parameter) (*cmds.Command, error) {
	logLevel, err := newLogLevel()
	if err != nil {
		return nil, err
	}
	reg := registry.New()
	if err := reg.Register(logLevel); err != nil {
		return nil, err
	}
	if err := reg.Register(params...); err != nil {
		return nil, err
	}
	builtin := builtinOptions()
	if err := checkReserved(reg, builtin); err != nil {
		return nil, err
	}
	return &cmds.Command{
		Helptext: cmds.HelpText{
			Tagline: "Print the typed values of declared parameters.",
			ShortDescription: `
Parameters are declared in ` + definitionsFile + `
within the XDG config directories.
Each one is printed with the value it received from the command line.
`,
		},
		Options:  append(reg.Options(), builtin...),
		Encoders: ResponseEncoderMap,
		Type:     Response{},
		Run:      run(reg, logLevel),
	}, nil
}

func checkReserved(reg *registry.Registry, builtin []cmds.Option) error {
	for _, option := range builtin {
		for _, name := range option.Names() {
			if param, err := reg.Lookup(name); err == nil {
				return fmt.Errorf("parameter %s: %w: %s",
					param.LongName(), errReservedName, name)
			}
		}
	}
	return nil
}

func run(reg *registry.Registry, logLevel *parameter.Choice) cmds.Function {
	return func(request *cmds.Request, emitter cmds.ResponseEmitter, _ cmds.Environment) error {
		if err := reg.Bind(request.Context, request); err != nil {
			return err
		}
		if level, ok := logLevel.Value(); ok {
			if err := logging.SetLogLevel("*", level); err != nil {
				return err
			}
		}
		for _, param := range reg.Parameters() {
			if err := emitter.Emit(responseFor(param)); err != nil {
				return err
			}
		}
		return nil
	}
}
