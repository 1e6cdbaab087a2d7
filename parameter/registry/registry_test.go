package registry_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	cmds "github.com/ipfs/go-ipfs-cmds"
	"github.com/magellantoo/web-build-tools/parameter"
	"github.com/magellantoo/web-build-tools/parameter/registry"
)

type testParameters struct {
	verbose *parameter.Flag
	mode    *parameter.Choice
	count   *parameter.Integer
	target  *parameter.String
	tags    *parameter.StringList
}

func newTestParameters() testParameters {
	return testParameters{
		verbose: parameter.Must(parameter.NewFlag(parameter.Definition{
			LongName:    "--verbose",
			ShortName:   "-v",
			Description: "Print more.",
		})),
		mode: parameter.Must(parameter.NewChoice(parameter.Definition{
			LongName:     "--mode",
			Description:  "Build mode.",
			Alternatives: []string{"debug", "release"},
			DefaultValue: "debug",
		})),
		count: parameter.Must(parameter.NewInteger(parameter.Definition{
			LongName:     "--count",
			ShortName:    "-n",
			Description:  "How many times.",
			ArgumentName: "N",
		})),
		target: parameter.Must(parameter.NewString(parameter.Definition{
			LongName:     "--target",
			Description:  "Where to go.",
			ArgumentName: "URL",
		})),
		tags: parameter.Must(parameter.NewStringList(parameter.Definition{
			LongName:     "--tag",
			ShortName:    "-t",
			Description:  "Tag the build.",
			ArgumentName: "TAG",
		})),
	}
}

func (tp testParameters) list() []parameter.Parameter {
	return []parameter.Parameter{tp.verbose, tp.mode, tp.count, tp.target, tp.tags}
}

func newTestRegistry(t *testing.T) (*registry.Registry, testParameters) {
	t.Helper()
	var (
		reg    = registry.New()
		params = newTestParameters()
	)
	if err := reg.Register(params.list()...); err != nil {
		t.Fatal(err)
	}
	return reg, params
}

func newRequest(t *testing.T, options cmds.OptMap) *cmds.Request {
	t.Helper()
	request, err := cmds.NewRequest(context.Background(), nil,
		options, nil, nil, &cmds.Command{})
	if err != nil {
		t.Fatal(err)
	}
	return request
}

func TestRegister(t *testing.T) {
	t.Parallel()
	t.Run("keys", registerKeys)
	t.Run("duplicates", registerDuplicates)
	t.Run("lookup", registerLookup)
}

func registerKeys(t *testing.T) {
	t.Parallel()
	reg, params := newTestRegistry(t)
	for _, test := range []struct {
		parameter.Parameter
		key string
	}{
		{params.verbose, "verbose"},
		{params.mode, "mode"},
		{params.tags, "tag"},
	} {
		key, ok := reg.Key(test.Parameter)
		if !ok || key != test.key {
			t.Errorf("key does not match for %s"+
				"\n\twanted: %s"+
				"\n\tgot: %s (%t)",
				test.LongName(), test.key, key, ok)
		}
	}
	unregistered := parameter.Must(parameter.NewFlag(parameter.Definition{LongName: "--other"}))
	if key, ok := reg.Key(unregistered); ok {
		t.Errorf("unregistered parameter has a key: %s", key)
	}
	if diff := cmp.Diff(params.list(), reg.Parameters(),
		cmp.Comparer(func(a, b parameter.Parameter) bool { return a == b }),
	); diff != "" {
		t.Errorf("parameters are not in registration order (-want +got):\n%s", diff)
	}
}

func registerDuplicates(t *testing.T) {
	t.Parallel()
	reg, params := newTestRegistry(t)
	for _, test := range []struct {
		name  string
		param parameter.Parameter
	}{
		{"same instance", params.verbose},
		{"long name", parameter.Must(parameter.NewFlag(parameter.Definition{
			LongName: "--verbose",
		}))},
		{"short name", parameter.Must(parameter.NewFlag(parameter.Definition{
			LongName:  "--very",
			ShortName: "-v",
		}))},
		{"long name spelled as short", parameter.Must(parameter.NewFlag(parameter.Definition{
			LongName: "--v",
		}))},
	} {
		if err := reg.Register(test.param); !errors.Is(err, registry.ErrDuplicateName) {
			t.Errorf("%s: duplicate was not rejected"+
				"\n\twanted: %v"+
				"\n\tgot: %v",
				test.name, registry.ErrDuplicateName, err)
		}
	}
	if count := len(reg.Parameters()); count != len(params.list()) {
		t.Errorf("rejected parameters were registered: have %d", count)
	}
	t.Run("option names", registerOptionNames)
}

func registerOptionNames(t *testing.T) {
	t.Parallel()
	var (
		reg   = registry.New()
		short = parameter.Must(parameter.NewFlag(parameter.Definition{
			LongName: "--v",
		}))
		long = parameter.Must(parameter.NewFlag(parameter.Definition{
			LongName:  "--verbose",
			ShortName: "-v",
		}))
	)
	if err := reg.Register(short); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(long); !errors.Is(err, registry.ErrDuplicateName) {
		t.Fatalf("option name collision was not rejected"+
			"\n\twanted: %v"+
			"\n\tgot: %v",
			registry.ErrDuplicateName, err)
	}
	// The remaining options must still be usable by the cmds-lib.
	if _, err := cmds.NewRequest(context.Background(), nil, nil, nil, nil,
		&cmds.Command{Options: reg.Options()},
	); err != nil {
		t.Error(err)
	}
}

func registerLookup(t *testing.T) {
	t.Parallel()
	reg, params := newTestRegistry(t)
	for _, name := range []string{"--count", "-n", "count", "n"} {
		param, err := reg.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if param != parameter.Parameter(params.count) {
			t.Errorf("lookup of %s returned %s", name, param.LongName())
		}
	}
	if _, err := reg.Lookup("--missing"); !errors.Is(err, registry.ErrNotRegistered) {
		t.Errorf("missing parameter lookup error does not match"+
			"\n\twanted: %v"+
			"\n\tgot: %v",
			registry.ErrNotRegistered, err)
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()
	var (
		reg, _  = newTestRegistry(t)
		options = reg.Options()
		want    = []struct {
			names      []string
			kind       reflect.Kind
			defaultVal any
		}{
			{[]string{"verbose", "v"}, cmds.Bool, nil},
			{[]string{"mode"}, cmds.String, "debug"},
			{[]string{"count", "n"}, cmds.Int64, nil},
			{[]string{"target"}, cmds.String, nil},
			{[]string{"tag", "t"}, cmds.Strings, nil},
		}
	)
	if len(options) != len(want) {
		t.Fatalf("option count does not match"+
			"\n\twanted: %d"+
			"\n\tgot: %d",
			len(want), len(options))
	}
	const fmtString = "option %s returned unexpected %s:" +
		"\n\tgot: %v" +
		"\n\twant: %v"
	for i, option := range options {
		expected := want[i]
		if diff := cmp.Diff(expected.names, option.Names()); diff != "" {
			t.Errorf("option names do not match (-want +got):\n%s", diff)
		}
		if got := option.Type(); got != expected.kind {
			t.Errorf(fmtString, option.Name(), "type", got, expected.kind)
		}
		if got := option.Default(); !reflect.DeepEqual(got, expected.defaultVal) {
			t.Errorf(fmtString, option.Name(), "default", got, expected.defaultVal)
		}
	}
	if got, want := options[2].Description(), "<N> How many times."; got != want {
		t.Errorf(fmtString, options[2].Name(), "description", got, want)
	}
}

func TestBind(t *testing.T) {
	t.Parallel()
	t.Run("provided", bindProvided)
	t.Run("omitted", bindOmitted)
	t.Run("rebind", bindAgain)
	t.Run("invalid choice", bindInvalidChoice)
	t.Run("invalid choice keeps values", bindInvalidChoiceKeeps)
	t.Run("contract violations", bindViolations)
	t.Run("cancel context", bindCanceled)
}

func bindProvided(t *testing.T) {
	t.Parallel()
	var (
		reg, params = newTestRegistry(t)
		request     = newRequest(t, cmds.OptMap{
			"verbose": true,
			"mode":    "release",
			"count":   int64(3),
			"target":  "https://example.com",
			"tag":     []string{"a", "b"},
		})
	)
	if err := reg.Bind(context.Background(), request); err != nil {
		t.Fatal(err)
	}
	checkValues(t, params, values{
		verbose: true,
		mode:    "release", modeSet: true,
		count: 3, countSet: true,
		target: "https://example.com", targetSet: true,
		tags: []string{"a", "b"},
	})
}

func bindOmitted(t *testing.T) {
	t.Parallel()
	var (
		reg, params = newTestRegistry(t)
		request     = newRequest(t, nil)
	)
	if err := reg.Bind(context.Background(), request); err != nil {
		t.Fatal(err)
	}
	checkValues(t, params, values{
		mode: "debug", modeSet: true, // Default value.
		tags: []string{},
	})
}

func bindAgain(t *testing.T) {
	t.Parallel()
	var (
		ctx         = context.Background()
		reg, params = newTestRegistry(t)
	)
	if err := reg.Bind(ctx, newRequest(t, cmds.OptMap{
		"verbose": true,
		"count":   int64(9),
	})); err != nil {
		t.Fatal(err)
	}
	if err := reg.Bind(ctx, newRequest(t, cmds.OptMap{
		"target": "elsewhere",
	})); err != nil {
		t.Fatal(err)
	}
	checkValues(t, params, values{
		mode: "debug", modeSet: true,
		target: "elsewhere", targetSet: true,
		tags: []string{},
	})
}

func bindInvalidChoice(t *testing.T) {
	t.Parallel()
	var (
		reg, params = newTestRegistry(t)
		request     = newRequest(t, cmds.OptMap{"mode": "fastest"})
		err         = reg.Bind(context.Background(), request)
	)
	var cmdsErr cmds.Error
	if !errors.As(err, &cmdsErr) || cmdsErr.Code != cmds.ErrClient {
		t.Fatalf("invalid choice should be a client error, got: %#v", err)
	}
	if _, ok := params.mode.Value(); ok {
		t.Error("invalid choice was stored")
	}
}

func bindInvalidChoiceKeeps(t *testing.T) {
	t.Parallel()
	var (
		ctx         = context.Background()
		reg, params = newTestRegistry(t)
	)
	if err := reg.Bind(ctx, newRequest(t, cmds.OptMap{
		"verbose": true,
		"mode":    "release",
		"count":   int64(2),
	})); err != nil {
		t.Fatal(err)
	}
	var cmdsErr cmds.Error
	if err := reg.Bind(ctx, newRequest(t, cmds.OptMap{
		"mode": "fastest",
	})); !errors.As(err, &cmdsErr) {
		t.Fatalf("invalid choice should be a client error, got: %#v", err)
	}
	checkValues(t, params, values{
		verbose: true,
		mode:    "release", modeSet: true,
		count: 2, countSet: true,
		tags: []string{},
	})
}

func bindViolations(t *testing.T) {
	t.Parallel()
	var (
		reg, params = newTestRegistry(t)
		request     = newRequest(t, cmds.OptMap{
			"verbose": "yes",
			"count":   "5",
			"tag":     []any{"x", 5},
		})
		err = reg.Bind(context.Background(), request)
	)
	if !errors.Is(err, parameter.ErrUnexpectedValue) {
		t.Fatalf("contract violation was not reported: %v", err)
	}
	var valueErr *parameter.ValueError
	if !errors.As(err, &valueErr) {
		t.Fatalf("error does not contain a %T: %v", valueErr, err)
	}
	for _, name := range []string{"--verbose", "--count", "--tag"} {
		if !containsParameter(err, name) {
			t.Errorf("error does not report %s: %v", name, err)
		}
	}
	// Parameters with valid values are still bound.
	if got, ok := params.mode.Value(); !ok || got != "debug" {
		t.Errorf("unrelated parameter was not bound: %q (%t)", got, ok)
	}
}

func containsParameter(err error, longName string) bool {
	var multiErr *multierror.Error
	if !errors.As(err, &multiErr) {
		return false
	}
	for _, wrapped := range multiErr.WrappedErrors() {
		var valueErr *parameter.ValueError
		if errors.As(wrapped, &valueErr) &&
			valueErr.LongName == longName {
			return true
		}
	}
	return false
}

func bindCanceled(t *testing.T) {
	t.Parallel()
	var (
		reg, _                  = newTestRegistry(t)
		request                 = newRequest(t, cmds.OptMap{"verbose": true})
		testContext, testCancel = context.WithCancel(context.Background())
		expectedErr             = context.Canceled
	)
	testCancel()
	if err := reg.Bind(testContext, request); !errors.Is(err, expectedErr) {
		t.Errorf("error value does not match"+
			"\n\twanted: %v"+
			"\n\tgot: %v",
			expectedErr, err,
		)
	}
}

type values struct {
	verbose   bool
	mode      string
	modeSet   bool
	count     int64
	countSet  bool
	target    string
	targetSet bool
	tags      []string
}

func checkValues(t *testing.T, params testParameters, want values) {
	t.Helper()
	var got values
	got.verbose = params.verbose.Value()
	got.mode, got.modeSet = params.mode.Value()
	got.count, got.countSet = params.count.Value()
	got.target, got.targetSet = params.target.Value()
	got.tags = params.tags.Values()
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(values{})); diff != "" {
		t.Errorf("bound values do not match (-want +got):\n%s", diff)
	}
}
