//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/markkurossi/mpc/p2p"
	"github.com/markkurossi/mpcdemo/session"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(out io.Writer) *GC {
	return New(Options{
		Out: out,
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestEncodeInt(t *testing.T) {
	tests := []struct {
		val      int64
		bits     int
		expected string
	}{
		{3, 16, "0x0003"},
		{0, 8, "0x00"},
		{-1, 8, "0xff"},
		{-2, 16, "0xfffe"},
		{1000, 32, "0x000003e8"},
		{-1, 64, "0xffffffffffffffff"},
		{-1, 72, "0xffffffffffffffffff"},
		{5, 72, "0x000000000000000005"},
		{-128, 24, "0xffff80"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, encodeInt(test.val, test.bits))
	}
}

func TestEncodeArray(t *testing.T) {
	assert.Equal(t, "0x00030005", encodeArray([]int64{3, 5}, 16))
	assert.Equal(t, "0x0102ff", encodeArray([]int64{1, 2, -1}, 8))
	assert.Equal(t, "0x", encodeArray(nil, 32))
}

func TestFitsInt(t *testing.T) {
	tests := []struct {
		val  int64
		bits int
		fits bool
	}{
		{127, 8, true},
		{-128, 8, true},
		{128, 8, false},
		{-129, 8, false},
		{300, 8, false},
		{12, 8, true},
		{32767, 16, true},
		{32768, 16, false},
		{-1 << 31, 32, true},
		{1 << 31, 32, false},
		{math.MaxInt64, 64, true},
		{math.MinInt64, 64, true},
	}
	for _, test := range tests {
		assert.Equal(t, test.fits, fitsInt(test.val, test.bits),
			"%d/%d", test.val, test.bits)
	}
}

func TestDistanceBits(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{Bits: 8, Dim: 2}, 24},
		{Shape{Bits: 16, Dim: 2}, 40},
		{Shape{Bits: 32, Dim: 2}, 72},
		{Shape{Bits: 64, Dim: 2}, 136},
		{Shape{Bits: 8, Dim: 1}, 24},
		{Shape{Bits: 8, Dim: 1000}, 32},
		{Shape{Bits: 32}, 72},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.shape.DistanceBits(), "%+v",
			test.shape)
	}

	// The largest sum of squared differences is positive as a signed
	// value of the distance width.
	for _, bits := range session.BitWidths {
		for _, dim := range []int{1, 2, 3, 4, 5, 17, 1 << 10, MaxCells} {
			shape := Shape{Bits: bits, Dim: dim}
			d := new(big.Int).Lsh(big.NewInt(1), uint(bits))
			d.Sub(d, big.NewInt(1))
			sum := new(big.Int).Mul(d, d)
			sum.Mul(sum, big.NewInt(int64(dim)))
			limit := new(big.Int).Lsh(big.NewInt(1),
				uint(shape.DistanceBits()-1))
			assert.True(t, sum.Cmp(limit) < 0, "%+v", shape)
			assert.Zero(t, shape.DistanceBits()%8)
		}
	}
}

func TestProgram(t *testing.T) {
	code, err := Program(ProgramMillionaire, Shape{Bits: 32})
	require.NoError(t, err)
	assert.Contains(t, code, "func main(client, server int32) bool")

	code, err = Program(ProgramEuclid, Shape{Bits: 16, Dim: 2})
	require.NoError(t, err)
	assert.Contains(t, code, "func main(client, server [2]int40) int40")

	code, err = Program(ProgramMinEuclid, Shape{Bits: 8, Points: 4, Dim: 2})
	require.NoError(t, err)
	assert.Contains(t, code, "query [2]uint24, db [8]uint24) uint24")
	assert.Contains(t, code, "var sum uint24")
	assert.Contains(t, code, "i < 4")
	assert.NotContains(t, code, "{{")

	_, err = Program("sha1", Shape{Bits: 8})
	assert.Error(t, err)
}

func TestParamsFingerprint(t *testing.T) {
	a := Params{
		Protocol:      ProgramEuclid,
		SecurityParam: 128,
		Shape:         Shape{Bits: 16},
	}
	b := a
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Len(t, a.Fingerprint(), 32)

	b.Shape.Bits = 32
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	b = a
	b.SecurityParam = 80
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	b = a
	b.Protocol = ProgramMinEuclid
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func negotiatePeers(t *testing.T, server, client Params) (error, error) {
	c0, c1 := p2p.Pipe()
	defer c0.Close()
	defer c1.Close()

	done := make(chan error)
	go func() {
		done <- negotiate(c0, RoleServer, server)
	}()
	clientErr := negotiate(c1, RoleClient, client)
	return <-done, clientErr
}

func TestNegotiate(t *testing.T) {
	params := Params{
		Protocol:      ProgramMinEuclid,
		SecurityParam: 128,
		Shape:         Shape{Bits: 32, Points: 4, Dim: 2},
	}
	serverErr, clientErr := negotiatePeers(t, params, params)
	assert.NoError(t, serverErr)
	assert.NoError(t, clientErr)

	other := params
	other.Shape.Points = 5
	serverErr, clientErr = negotiatePeers(t, params, other)
	assert.True(t, errors.Is(serverErr, ErrParamMismatch))
	assert.True(t, errors.Is(clientErr, ErrParamMismatch))
}

func TestInvalidRole(t *testing.T) {
	gc := newTestEngine(io.Discard)

	err := gc.Millionaire(2, 100)
	assert.True(t, errors.Is(err, ErrRole))

	err = gc.EuclideanDistance(-1, 1, 2, 128, 32, "127.0.0.1", 7766)
	assert.True(t, errors.Is(err, ErrRole))

	err = gc.MinEuclideanDistance(5, 2, 2, 128, 32, "127.0.0.1", 7766)
	assert.True(t, errors.Is(err, ErrRole))
}

func TestInvalidParams(t *testing.T) {
	gc := newTestEngine(io.Discard)

	err := gc.EuclideanDistance(0, 1, 2, 100, 32, "127.0.0.1", 7766)
	assert.True(t, errors.Is(err, session.ErrSecurityParam))

	err = gc.EuclideanDistance(0, 1, 2, 128, 12, "127.0.0.1", 7766)
	assert.True(t, errors.Is(err, session.ErrBitWidth))

	err = gc.MinEuclideanDistance(0, 0, 2, 128, 32, "127.0.0.1", 7766)
	assert.True(t, errors.Is(err, ErrShape))

	err = gc.MinEuclideanDistance(1, 3, -1, 128, 32, "127.0.0.1", 7766)
	assert.True(t, errors.Is(err, ErrShape))

	err = gc.MinEuclideanDistance(0, 3037000500, 3037000500, 128, 32,
		"127.0.0.1", 7766)
	assert.True(t, errors.Is(err, ErrShape))

	err = gc.MinEuclideanDistance(0, MaxCells, 2, 128, 32,
		"127.0.0.1", 7766)
	assert.True(t, errors.Is(err, ErrShape))
}

func TestInputRange(t *testing.T) {
	gc := newTestEngine(io.Discard)

	err := gc.EuclideanDistance(0, 300, 0, 128, 8, "127.0.0.1", 7766)
	assert.True(t, errors.Is(err, ErrRange))

	err = gc.EuclideanDistance(1, 0, 128, 128, 8, "127.0.0.1", 7766)
	assert.True(t, errors.Is(err, ErrRange))

	err = gc.EuclideanDistance(1, -40000, 0, 128, 16, "127.0.0.1", 7766)
	assert.True(t, errors.Is(err, ErrRange))

	err = gc.Millionaire(0, 1<<40)
	assert.True(t, errors.Is(err, ErrRange))
}

func TestSampleSource(t *testing.T) {
	a, err := samplePoints(sampleSource(42, RoleServer), 16)
	require.NoError(t, err)
	b, err := samplePoints(sampleSource(42, RoleServer), 16)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := samplePoints(sampleSource(42, RoleClient), 16)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	d, err := samplePoints(sampleSource(0, RoleClient), 256)
	require.NoError(t, err)
	for _, v := range append(a, d...) {
		assert.True(t, v >= 0 && v < 1<<sampleBits)
	}
}

func TestMinDistance(t *testing.T) {
	db := []int64{178, 34, 91, 203, 132, 238, 228, 45}
	query := []int64{81, 202}
	assert.Equal(t, int64(101), minDistance(query, db))

	assert.Equal(t, int64(0), minDistance([]int64{7}, []int64{9, 7, 3}))
	assert.Equal(t, int64(3*255*255),
		minDistance([]int64{0, 0, 0}, []int64{255, 255, 255}))
}

func TestTimingPrint(t *testing.T) {
	timing := NewTiming()
	timing.Sample("Connect")
	timing.Sample("Compute")

	stats := p2p.NewIOStats()
	stats.Sent.Store(2500)
	stats.Recvd.Store(12)

	var buf bytes.Buffer
	timing.Print(&buf, stats)

	for _, s := range []string{"Connect", "Compute", "Total", "2 kB", "12 B"} {
		assert.Contains(t, buf.String(), s)
	}

	buf.Reset()
	NewTiming().Print(&buf, stats)
	assert.Empty(t, buf.String())
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, "Squared distance", []interface{}{int16(13)})
	assert.Equal(t, "Squared distance: 13\n", buf.String())

	buf.Reset()
	printResult(&buf, "R", []interface{}{true, uint8(7)})
	assert.Equal(t, "R[0]: true\nR[1]: 7\n", buf.String())

	buf.Reset()
	printDistance(&buf, "Squared distance", "Distance",
		[]interface{}{int32(144)})
	assert.Equal(t, "Squared distance: 144\nDistance: 12.000\n", buf.String())

	buf.Reset()
	printDistance(&buf, "Min squared distance", "Min distance",
		[]interface{}{uint32(101)})
	assert.Equal(t, "Min squared distance: 101\nMin distance: 10.050\n",
		buf.String())

	buf.Reset()
	val := new(big.Int).Lsh(big.NewInt(1), 80)
	printDistance(&buf, "D2", "D", []interface{}{val})
	assert.Contains(t, buf.String(), "D: 1099511627776.000\n")

	assert.True(t, strings.HasPrefix(partyName(RoleServer), "P"))
	assert.NotEqual(t, partyName(RoleServer), partyName(RoleClient))
}
