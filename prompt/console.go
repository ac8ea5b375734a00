//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prompt

import (
	"fmt"
	"io"
)

// Console combines the operator input with the prompt and diagnostic
// outputs.
type Console struct {
	*Input
	Out  io.Writer
	Diag io.Writer
}

// NewConsole creates a console reading answers from in, writing
// prompts to out and diagnostics to diag.
func NewConsole(in io.Reader, out, diag io.Writer) *Console {
	return &Console{
		Input: NewInput(in),
		Out:   out,
		Diag:  diag,
	}
}

// Printf prints a prompt or an informational message.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.Out, format, a...)
}

// Diagf prints a diagnostic message.
func (c *Console) Diagf(format string, a ...interface{}) {
	fmt.Fprintf(c.Diag, format, a...)
}
