//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command launcher runs the two-party computation examples. It asks
// the example, the party role, the example arguments and, for the
// networked examples, the session parameters, and then runs the
// example protocol with the peer.
//
// Start the server (role 0) first and then the client (role 1) with
// the same example and session parameters:
//
//	$ launcher
//	enter 1, 2, 3 to switch examples
//	2
//	set role, x and y co-ordinates
//	0 3 5
//	...
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/markkurossi/mpcdemo/engine"
	"github.com/markkurossi/mpcdemo/prompt"
	"github.com/markkurossi/mpcdemo/protocol"
	"github.com/pkg/errors"
)

func main() {
	fVerbose := flag.Bool("v", false, "Verbose output")
	fStats := flag.Bool("stats", false, "Print protocol timing and I/O statistics")
	fSession := flag.Bool("session", false, "Print the accepted session parameters")
	fSeed := flag.Uint64("seed", 0,
		"Seed for the example sample data (0 uses system randomness)")
	flag.Parse()

	log := newLogger(os.Stderr, *fVerbose)

	console := prompt.NewConsole(os.Stdin, os.Stdout, os.Stderr)
	gc := engine.New(engine.Options{
		Out:     os.Stdout,
		Log:     log,
		Verbose: *fVerbose,
		Stats:   *fStats,
		Seed:    *fSeed,
	})

	err := launch(console, gc, log, *fSession)
	if err != nil {
		if errors.Is(err, protocol.ErrInvalidSelection) {
			return
		}
		log.Error("launcher failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// launch selects the example protocol and dispatches it to the
// engine.
func launch(c *prompt.Console, eng protocol.Engine, log *slog.Logger,
	printSession bool) error {

	sel, err := protocol.Select(c, log)
	if err != nil {
		return err
	}
	log.Debug("dispatching", "selection", sel.String())

	if printSession {
		switch s := sel.(type) {
		case protocol.EuclideanDistance:
			s.Session.Print(c.Out)
		case protocol.MinEuclideanDistance:
			s.Session.Print(c.Out)
		default:
			fmt.Fprintf(c.Out, "Example uses the engine default session\n")
		}
	}
	return protocol.Dispatch(eng, sel)
}
