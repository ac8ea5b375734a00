//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package protocol

import (
	"log/slog"

	"github.com/markkurossi/mpcdemo/session"
	"github.com/pkg/errors"
)

// ErrInvalidSelection is returned when the operator selects an
// unknown example. It is not a failure; the launcher exits normally.
var ErrInvalidSelection = errors.New("invalid example selection")

// Console defines the operator console for the protocol selection.
type Console interface {
	session.Console
	ReadInt() (int, error)
}

// Select reads the example identifier and its arguments from the
// console. Examples that run over a network session also read and
// validate the session parameters.
func Select(c Console, log *slog.Logger) (Selection, error) {
	c.Printf("enter 1, 2, 3 to switch examples\n")
	id, err := c.ReadInt()
	if err != nil {
		return nil, errors.Wrap(err, "example")
	}
	log.Debug("example selected", "id", id)

	switch id {
	case ExampleComparison:
		c.Printf("set role and money value\n")
		args, err := readInts(c, "role", "money")
		if err != nil {
			return nil, err
		}
		return Comparison{
			Role:  args[0],
			Money: args[1],
		}, nil

	case ExampleEuclideanDistance:
		c.Printf("set role, x and y co-ordinates\n")
		args, err := readInts(c, "role", "x", "y")
		if err != nil {
			return nil, err
		}
		config, err := session.Prompt(c, log)
		if err != nil {
			return nil, err
		}
		return EuclideanDistance{
			Role:    args[0],
			X:       args[1],
			Y:       args[2],
			Session: config,
		}, nil

	case ExampleMinEuclideanDistance:
		c.Printf("set role, nc, dim\n")
		args, err := readInts(c, "role", "nc", "dim")
		if err != nil {
			return nil, err
		}
		config, err := session.Prompt(c, log)
		if err != nil {
			return nil, err
		}
		return MinEuclideanDistance{
			Role:      args[0],
			NumPoints: args[1],
			Dimension: args[2],
			Session:   config,
		}, nil

	default:
		c.Printf("Invalid Input!!!\n")
		return nil, ErrInvalidSelection
	}
}

func readInts(c Console, names ...string) ([]int, error) {
	result := make([]int, len(names))
	for idx, name := range names {
		val, err := c.ReadInt()
		if err != nil {
			return nil, errors.Wrap(err, name)
		}
		result[idx] = val
	}
	return result, nil
}
