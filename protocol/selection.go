//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package protocol implements the example protocol selection and the
// dispatch to the secure computation engine.
package protocol

import (
	"fmt"

	"github.com/markkurossi/mpcdemo/session"
)

// Example identifiers.
const (
	ExampleComparison           = 1
	ExampleEuclideanDistance    = 2
	ExampleMinEuclideanDistance = 3
)

// Selection is a protocol selection. It is one of Comparison,
// EuclideanDistance, and MinEuclideanDistance.
type Selection interface {
	fmt.Stringer
	isSelection()
}

// Comparison selects the millionaires' comparison protocol. It runs
// with the engine's default session.
type Comparison struct {
	Role  int
	Money int
}

// EuclideanDistance selects the Euclidean distance protocol between
// the parties' points (X, Y).
type EuclideanDistance struct {
	Role    int
	X       int
	Y       int
	Session session.Config
}

// MinEuclideanDistance selects the minimum Euclidean distance
// protocol between the server's NumPoints points and the client's
// query point. Points have Dimension coordinates.
type MinEuclideanDistance struct {
	Role      int
	NumPoints int
	Dimension int
	Session   session.Config
}

func (Comparison) isSelection()           {}
func (EuclideanDistance) isSelection()    {}
func (MinEuclideanDistance) isSelection() {}

func (s Comparison) String() string {
	return fmt.Sprintf("comparison: role=%d, money=%d", s.Role, s.Money)
}

func (s EuclideanDistance) String() string {
	return fmt.Sprintf("euclidean distance: role=%d, x=%d, y=%d, %s",
		s.Role, s.X, s.Y, s.Session)
}

func (s MinEuclideanDistance) String() string {
	return fmt.Sprintf("min euclidean distance: role=%d, nc=%d, dim=%d, %s",
		s.Role, s.NumPoints, s.Dimension, s.Session)
}
