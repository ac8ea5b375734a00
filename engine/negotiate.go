//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/markkurossi/mpc/p2p"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// ErrParamMismatch is returned when the peer runs the protocol with
// different parameters.
var ErrParamMismatch = errors.New("session parameters do not match peer")

// Params define the protocol run parameters both parties must agree
// on.
type Params struct {
	Protocol      string
	SecurityParam int
	Shape         Shape
}

func (p Params) String() string {
	return fmt.Sprintf("%s: sec=%d bits=%d points=%d dim=%d", p.Protocol,
		p.SecurityParam, p.Shape.Bits, p.Shape.Points, p.Shape.Dim)
}

// Fingerprint returns the BLAKE2b-256 digest of the parameters.
func (p Params) Fingerprint() []byte {
	var buf [8]byte

	h, _ := blake2b.New256(nil)
	h.Write([]byte(p.Protocol))
	for _, v := range []int{p.SecurityParam, p.Shape.Bits, p.Shape.Points,
		p.Shape.Dim} {
		binary.BigEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	return h.Sum(nil)
}

// negotiate exchanges the parameter fingerprints with the peer. The
// server sends its fingerprint first.
func negotiate(conn *p2p.Conn, role int, params Params) error {
	ours := params.Fingerprint()

	var theirs []byte
	var err error

	if role == RoleServer {
		if err = conn.SendData(ours); err != nil {
			return err
		}
		if err = conn.Flush(); err != nil {
			return err
		}
		theirs, err = conn.ReceiveData()
		if err != nil {
			return err
		}
	} else {
		theirs, err = conn.ReceiveData()
		if err != nil {
			return err
		}
		if err = conn.SendData(ours); err != nil {
			return err
		}
		if err = conn.Flush(); err != nil {
			return err
		}
	}
	if !bytes.Equal(ours, theirs) {
		return errors.Wrapf(ErrParamMismatch, "%s", params)
	}
	return nil
}
