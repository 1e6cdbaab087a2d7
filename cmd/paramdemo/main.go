// Command paramdemo prints the typed values of the parameters it declares.
//
// Parameters are declared in `paramdemo/parameters.hcl`,
// searched for within the XDG config directories.
// If no such file exists, a built-in set is used.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ipfs/go-ipfs-cmds/cli"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	handleCmdsErr(cmdsRun(ctx))
}

func cmdsRun(ctx context.Context) error {
	params, err := loadDefinitions()
	if err != nil {
		return err
	}
	root, err := newCommand(params)
	if err != nil {
		return err
	}
	return cli.Run(ctx,
		root, cmdsArgs(os.Args),
		os.Stdin, os.Stdout, os.Stderr,
		nil, nil,
	)
}

// The cmds helptext generator uses its `cmdline[0]` literally.
// So we normalize argv[0] to the program's name (only).
// (No absolute path, no binary file extension, etc.)
func cmdsArgs(argv []string) []string {
	var (
		ourName    = filepath.Base(argv[0])
		formalName = strings.TrimSuffix(ourName, filepath.Ext(ourName))
	)
	return append([]string{formalName}, argv[1:]...)
}

func handleCmdsErr(err error) {
	if err == nil {
		return
	}
	// NOTE: The cmdslib will have already printed its own errors to stderr
	// so we only print errors from before it was running.
	var cliError cli.ExitError
	if errors.As(err, &cliError) {
		os.Exit(int(cliError))
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
