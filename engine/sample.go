//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// sampleBits is the coordinate width of the generated sample points.
const sampleBits = 8

// keystream is a deterministic ChaCha20 random source.
type keystream struct {
	c *chacha20.Cipher
}

func (k *keystream) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	k.c.XORKeyStream(p, p)
	return len(p), nil
}

// sampleSource returns the random source for the sample data. Seed 0
// selects the system random source. Other seeds return a
// deterministic stream, separate for each role.
func sampleSource(seed uint64, role int) io.Reader {
	if seed == 0 {
		return rand.Reader
	}
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:], seed)
	binary.BigEndian.PutUint64(buf[8:], uint64(role))
	key := blake2b.Sum256(buf[:])

	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return &keystream{
		c: c,
	}
}

// samplePoints reads count sampleBits wide coordinates from the
// random source.
func samplePoints(r io.Reader, count int) ([]int64, error) {
	buf := make([]byte, count)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	result := make([]int64, count)
	for i, b := range buf {
		result[i] = int64(b)
	}
	return result, nil
}

// minDistance computes the minimum squared Euclidean distance between
// query and the points of db in plaintext. The db holds the points in
// row order.
func minDistance(query, db []int64) int64 {
	dim := len(query)

	var best int64
	for i := 0; i+dim <= len(db); i += dim {
		var sum int64
		for j := 0; j < dim; j++ {
			d := db[i+j] - query[j]
			sum += d * d
		}
		if i == 0 || sum < best {
			best = sum
		}
	}
	return best
}
