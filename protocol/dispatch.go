//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package protocol

import (
	"fmt"
)

// Engine defines the entry points of the secure computation engine.
// Each call runs one complete protocol with the peer and blocks until
// the protocol completes or fails.
type Engine interface {
	// Millionaire runs the millionaires' comparison protocol with the
	// engine's default session.
	Millionaire(role, money int) error

	// EuclideanDistance computes the squared Euclidean distance
	// between the parties' points.
	EuclideanDistance(role, x, y, secParam, bitWidth int, addr string,
		port int) error

	// MinEuclideanDistance computes the minimum squared Euclidean
	// distance between the server's nc points and the client's query
	// point in dim dimensions.
	MinEuclideanDistance(role, nc, dim, secParam, bitWidth int, addr string,
		port int) error
}

// Dispatch runs the selected protocol with the engine. The engine
// result is returned as-is.
func Dispatch(engine Engine, sel Selection) error {
	switch s := sel.(type) {
	case Comparison:
		return engine.Millionaire(s.Role, s.Money)

	case EuclideanDistance:
		return engine.EuclideanDistance(s.Role, s.X, s.Y,
			s.Session.SecurityParam(), s.Session.BitWidth(),
			s.Session.Address(), s.Session.Port())

	case MinEuclideanDistance:
		return engine.MinEuclideanDistance(s.Role, s.NumPoints, s.Dimension,
			s.Session.SecurityParam(), s.Session.BitWidth(),
			s.Session.Address(), s.Session.Port())

	default:
		panic(fmt.Sprintf("unsupported selection %T", sel))
	}
}
