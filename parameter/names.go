package parameter

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

var (
	longNamePattern  = regexp.MustCompile(`^-(-[a-z0-9]+)+$`)
	shortNamePattern = regexp.MustCompile(`^-[A-Za-z]$`)
)

func validateLongName(name string) error {
	if !longNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q"+
			" - long names must be lower case words separated by dashes"+
			` and start with "--" (e.g. "--do-a-thing")`,
			ErrInvalidLongName, name)
	}
	return nil
}

func validateShortName(name string) error {
	if !shortNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q"+
			` - short names must be a dash followed by a single letter (e.g. "-d")`,
			ErrInvalidShortName, name)
	}
	return nil
}

func validateArgumentName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: the name is empty", ErrInvalidArgumentName)
	}
	if strings.ToUpper(name) != name {
		return fmt.Errorf("%w: %q must be upper case",
			ErrInvalidArgumentName, name)
	}
	if i := strings.IndexFunc(name, isInvalidArgumentRune); i != -1 {
		return fmt.Errorf("%w: %q contains the invalid character %q"+
			" - only upper case letters, numbers, and underscores are allowed",
			ErrInvalidArgumentName, name, []rune(name[i:])[0])
	}
	return nil
}

func isInvalidArgumentRune(r rune) bool {
	return !(r >= 'A' && r <= 'Z' ||
		r >= '0' && r <= '9' ||
		r == '_')
}

// LongNameFrom derives a long name from a Go style identifier.
// E.g. `DoAThing` becomes `--do-a-thing`.
//
// The result is not validated; constructors do that.
func LongNameFrom(identifier string) string {
	var (
		words   = camelcase.Split(identifier)
		cleaned = make([]string, 0, len(words))
	)
	for _, word := range words {
		if word = strings.Map(filterName, word); word != "" {
			cleaned = append(cleaned, word)
		}
	}
	return "--" + strings.ToLower(strings.Join(cleaned, "-"))
}

func filterName(r rune) rune {
	if unicode.IsSpace(r) ||
		r == '=' ||
		r == '-' ||
		r == '_' ||
		r == '.' {
		return -1
	}
	return r
}
