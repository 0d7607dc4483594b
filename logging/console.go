package logging

import (
	"fmt"
	"io"
	"os"
)

// Console writes user-facing status lines exactly as given. Informational
// lines go to the out writer, warnings to the err writer.
type Console struct {
	out io.Writer
	err io.Writer
}

// NewConsole creates a console on stdout and stderr.
func NewConsole() *Console {
	return &Console{
		out: os.Stdout,
		err: os.Stderr,
	}
}

// DiscardConsole returns a console that drops everything.
func DiscardConsole() *Console {
	return &Console{out: io.Discard, err: io.Discard}
}

// WithWriters sets custom writers for informational and warning output
func (c *Console) WithWriters(out, err io.Writer) *Console {
	c.out = out
	c.err = err
	return c
}

// Info writes an informational line
func (c *Console) Info(message string) {
	fmt.Fprintln(c.out, message)
}

// Warn writes a warning, which may span several lines
func (c *Console) Warn(message string) {
	fmt.Fprintln(c.err, message)
}
