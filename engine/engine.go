//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package engine runs the example protocols as garbled circuit
// computations between two networked parties.
//
// The server (role 0) listens for the connection and evaluates the
// circuit. The client (role 1) connects to the server, compiles the
// MPCL program, and streams the garbled circuit to the server. Both
// parties learn the result.
package engine

import (
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net"
	"os"
	"slices"
	"strconv"

	"github.com/markkurossi/mpc"
	"github.com/markkurossi/mpc/circuit"
	"github.com/markkurossi/mpc/compiler"
	"github.com/markkurossi/mpc/compiler/utils"
	"github.com/markkurossi/mpc/ot"
	"github.com/markkurossi/mpc/p2p"
	"github.com/markkurossi/mpcdemo/protocol"
	"github.com/markkurossi/mpcdemo/session"
	"github.com/markkurossi/text/superscript"
	"github.com/pkg/errors"
)

var (
	_ protocol.Engine = &GC{}
)

// Party roles.
const (
	RoleServer = 0
	RoleClient = 1
)

// labelBits is the garbling label size in bits.
const labelBits = len(ot.LabelData{}) * 8

// MaxCells limits the number of coordinates in the min-euclid
// database.
const MaxCells = 1 << 20

var (
	// ErrRole is returned for roles other than RoleServer and
	// RoleClient.
	ErrRole = errors.New("role must be 0 (server) or 1 (client)")

	// ErrRange is returned for inputs that do not fit the session
	// bit width.
	ErrRange = errors.New("value out of range")

	// ErrShape is returned for invalid min-euclid database shapes.
	ErrShape = errors.New("invalid database shape")
)

// Options configure the engine.
type Options struct {
	// Out receives the protocol results and reports.
	Out io.Writer

	// Log receives the diagnostic messages.
	Log *slog.Logger

	// Verbose enables verbose circuit compilation and evaluation, and
	// the min-euclid verification.
	Verbose bool

	// Stats enables the timing and transfer report.
	Stats bool

	// Seed seeds the sample data generator. Zero selects the system
	// random source.
	Seed uint64
}

// GC implements the protocol engine with garbled circuits.
type GC struct {
	out      io.Writer
	log      *slog.Logger
	verbose  bool
	stats    bool
	seed     uint64
	defaults session.Config
}

// New creates a new garbled circuit engine.
func New(opts Options) *GC {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	return &GC{
		out:      out,
		log:      log,
		verbose:  opts.Verbose,
		stats:    opts.Stats,
		seed:     opts.Seed,
		defaults: session.Default(),
	}
}

// job defines one protocol run.
type job struct {
	params Params
	role   int
	addr   string
	input  []string
	print  func(w io.Writer, results []interface{})
}

// check validates the role and the protocol parameters.
func check(role int, params Params) error {
	if role != RoleServer && role != RoleClient {
		return errors.Wrapf(ErrRole, "%d", role)
	}
	if _, ok := session.TierOf(params.SecurityParam); !ok {
		return errors.Wrapf(session.ErrSecurityParam, "%d",
			params.SecurityParam)
	}
	if !slices.Contains(session.BitWidths, params.Shape.Bits) {
		return errors.Wrapf(session.ErrBitWidth, "%d", params.Shape.Bits)
	}
	return nil
}

func checkRange(bits int, name string, val int) error {
	if !fitsInt(int64(val), bits) {
		return errors.Wrapf(ErrRange, "%s=%d does not fit int%d",
			name, val, bits)
	}
	return nil
}

// Millionaire runs the millionaires' problem with the default session
// parameters. Both parties learn whether the server is richer.
func (gc *GC) Millionaire(role, money int) error {
	config := gc.defaults
	params := Params{
		Protocol:      ProgramMillionaire,
		SecurityParam: config.SecurityParam(),
		Shape: Shape{
			Bits: config.BitWidth(),
		},
	}
	if err := check(role, params); err != nil {
		return err
	}
	bits := params.Shape.Bits
	if err := checkRange(bits, "money", money); err != nil {
		return err
	}

	return gc.run(&job{
		params: params,
		role:   role,
		addr:   config.HostPort(),
		input:  []string{encodeInt(int64(money), bits)},
		print: func(w io.Writer, results []interface{}) {
			printResult(w, "Server richer", results)
		},
	})
}

// EuclideanDistance computes the squared Euclidean distance between
// the parties' points (x, y).
func (gc *GC) EuclideanDistance(role, x, y, secParam, bitWidth int,
	addr string, port int) error {

	params := Params{
		Protocol:      ProgramEuclid,
		SecurityParam: secParam,
		Shape: Shape{
			Bits: bitWidth,
			Dim:  2,
		},
	}
	if err := check(role, params); err != nil {
		return err
	}
	if err := checkRange(bitWidth, "x", x); err != nil {
		return err
	}
	if err := checkRange(bitWidth, "y", y); err != nil {
		return err
	}
	width := params.Shape.DistanceBits()

	return gc.run(&job{
		params: params,
		role:   role,
		addr:   net.JoinHostPort(addr, strconv.Itoa(port)),
		input:  []string{encodeArray([]int64{int64(x), int64(y)}, width)},
		print: func(w io.Writer, results []interface{}) {
			printDistance(w, "Squared distance", "Distance", results)
		},
	})
}

// MinEuclideanDistance computes the minimum squared Euclidean
// distance between the server's nc random points and the client's
// random query point, all in dim dimensions.
func (gc *GC) MinEuclideanDistance(role, nc, dim, secParam, bitWidth int,
	addr string, port int) error {

	params := Params{
		Protocol:      ProgramMinEuclid,
		SecurityParam: secParam,
		Shape: Shape{
			Bits:   bitWidth,
			Points: nc,
			Dim:    dim,
		},
	}
	if err := check(role, params); err != nil {
		return err
	}
	if nc <= 0 || dim <= 0 || nc > MaxCells/dim {
		return errors.Wrapf(ErrShape, "%dx%d", nc, dim)
	}
	shape := params.Shape

	count := dim
	if role == RoleServer {
		count = shape.Cells()
	}
	values, err := samplePoints(sampleSource(gc.seed, role), count)
	if err != nil {
		return err
	}
	gc.log.Debug("sample data", "role", role, "values", values)

	verify := gc.verbose && gc.seed != 0
	var expected int64
	if verify {
		expected, err = gc.plainMinDistance(shape)
		if err != nil {
			return err
		}
	}

	return gc.run(&job{
		params: params,
		role:   role,
		addr:   net.JoinHostPort(addr, strconv.Itoa(port)),
		input:  []string{encodeArray(values, shape.DistanceBits())},
		print: func(w io.Writer, results []interface{}) {
			printDistance(w, "Min squared distance", "Min distance",
				results)
			if verify {
				fmt.Fprintf(w, "Verification: %d\n", expected)
			}
		},
	})
}

// plainMinDistance regenerates both parties' seeded sample data and
// computes the minimum squared distance in plaintext.
func (gc *GC) plainMinDistance(shape Shape) (int64, error) {
	query, err := samplePoints(sampleSource(gc.seed, RoleClient), shape.Dim)
	if err != nil {
		return 0, err
	}
	db, err := samplePoints(sampleSource(gc.seed, RoleServer), shape.Cells())
	if err != nil {
		return 0, err
	}
	return minDistance(query, db), nil
}

func partyName(role int) string {
	return "P" + superscript.Itoa(role)
}

func (gc *GC) run(j *job) error {
	log := gc.log.With("party", partyName(j.role),
		"protocol", j.params.Protocol)
	if j.params.SecurityParam > labelBits {
		log.Warn("security parameter exceeds garbling label size",
			"secparam", j.params.SecurityParam, "label", labelBits)
	}

	timing := NewTiming()

	var conn *p2p.Conn
	var err error
	if j.role == RoleServer {
		conn, err = accept(j.addr, log)
	} else {
		conn, err = dial(j.addr, log)
	}
	if err != nil {
		return err
	}
	defer conn.Close()
	timing.Sample("Connect")

	if err := negotiate(conn, j.role, j.params); err != nil {
		return err
	}
	log.Debug("parameters negotiated", "params", j.params.String())
	timing.Sample("Negotiate")

	oti := ot.NewCO(rand.Reader)

	var outputs circuit.IO
	var result []*big.Int
	if j.role == RoleServer {
		outputs, result, err = gc.evaluate(conn, oti, j)
	} else {
		outputs, result, err = gc.garble(conn, oti, j)
	}
	if err != nil {
		return err
	}
	timing.Sample("Compute")

	j.print(gc.out, mpc.Results(result, outputs))
	if gc.stats {
		timing.Print(gc.out, conn.Stats)
	}
	return nil
}

func (gc *GC) evaluate(conn *p2p.Conn, oti ot.OT, j *job) (
	circuit.IO, []*big.Int, error) {

	inputSizes, err := circuit.InputSizes(j.input)
	if err != nil {
		return nil, nil, err
	}
	if err := conn.SendInputSizes(inputSizes); err != nil {
		return nil, nil, err
	}
	if err := conn.Flush(); err != nil {
		return nil, nil, err
	}
	outputs, result, err := circuit.StreamEvaluator(conn, oti, j.input, nil,
		gc.verbose)
	if err != nil && err != io.EOF {
		return nil, nil, errors.Wrap(err, "evaluator")
	}
	return outputs, result, nil
}

func (gc *GC) garble(conn *p2p.Conn, oti ot.OT, j *job) (
	circuit.IO, []*big.Int, error) {

	inputSizes := make([][]int, 2)

	sizes, err := circuit.InputSizes(j.input)
	if err != nil {
		return nil, nil, err
	}
	inputSizes[0] = sizes

	sizes, err = conn.ReceiveInputSizes()
	if err != nil {
		return nil, nil, err
	}
	inputSizes[1] = sizes

	dir, file, err := writeProgram(j.params.Protocol, j.params.Shape)
	if err != nil {
		return nil, nil, err
	}
	defer os.RemoveAll(dir)

	params := utils.NewParams()
	defer params.Close()
	params.Verbose = gc.verbose

	outputs, result, err := compiler.New(params).StreamFile(conn, oti, file,
		j.input, inputSizes)
	if err != nil {
		return nil, nil, errors.Wrap(err, "garbler")
	}
	return outputs, result, nil
}
