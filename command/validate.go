package command

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/orcdkestrator/cdklocal/errors"
)

var validToolName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._+-]*$`)

// ValidateToolName ensures an executable name is a bare name safe to hand to
// a shell lookup: no path separators, no shell metacharacters.
func ValidateToolName(name string) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "tool name cannot be empty")
	}

	if strings.ContainsAny(name, `/\`) {
		return errors.New(errors.ErrCodeInvalidInput,
			fmt.Sprintf("tool name must not contain path separators: %s", name)).
			WithDetail("tool", name)
	}

	if !validToolName.MatchString(name) {
		return errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("invalid tool name: %s", name)).
			WithDetail("tool", name)
	}

	if len(name) > 255 {
		return errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("tool name too long: %s", name)).
			WithDetail("tool", name)
	}

	return nil
}
