package cli

import (
	"fmt"
	"io"

	"github.com/orcdkestrator/cdklocal/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool, out io.Writer) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     out,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}

	e, _ := errors.As(err)

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "❌ Configuration not found. Create orcdk.config.json or pass --config.\n")

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(h.Out, "❌ Invalid configuration: %v\n", err)
		if path, ok := e.Details["path"]; ok {
			fmt.Fprintf(h.Out, "Check the file at %v.\n", path)
		}

	case errors.ErrCodeEnvironmentNotFound:
		fmt.Fprintf(h.Out, "❌ Environment '%v' is not defined in the configuration\n", e.Details["environment"])
		if known, ok := e.Details["known"]; ok {
			fmt.Fprintf(h.Out, "Known environments: %v\n", known)
		}

	default:
		fmt.Fprintf(h.Out, "❌ Error: %v\n", err)
	}

	if h.Verbose && e != nil {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", e.ToJSON())
	}
	return err
}
