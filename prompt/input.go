//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package prompt implements the line-oriented operator console used
// by the example launcher.
package prompt

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Input reads integer tokens and full lines from an interactive text
// stream. The same Input must be used for all reads from the stream
// since it buffers the unread part of the current line.
type Input struct {
	r       *bufio.Reader
	pending []string
}

// NewInput creates a new Input reading from r.
func NewInput(r io.Reader) *Input {
	return &Input{
		r: bufio.NewReader(r),
	}
}

func (in *Input) line() (string, error) {
	line, err := in.r.ReadString('\n')
	if err != nil {
		if err != io.EOF || len(line) == 0 {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadLine returns the next input line without its line terminator.
// If the current line still has unread tokens, ReadLine returns them
// instead of reading a new line.
func (in *Input) ReadLine() (string, error) {
	if len(in.pending) > 0 {
		line := strings.Join(in.pending, " ")
		in.pending = nil
		return line, nil
	}
	line, err := in.line()
	if err != nil {
		return "", errors.Wrap(err, "read line")
	}
	return line, nil
}

// ReadInt reads the next whitespace separated token and parses it as
// a base-10 integer. Empty lines are skipped.
func (in *Input) ReadInt() (int, error) {
	for len(in.pending) == 0 {
		line, err := in.line()
		if err != nil {
			return 0, errors.Wrap(err, "read integer")
		}
		in.pending = strings.Fields(line)
	}
	token := in.pending[0]
	in.pending = in.pending[1:]

	val, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer '%s'", token)
	}
	return val, nil
}
