//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"fmt"
	"math/big"
	"strings"
)

// fitsInt tests if val is representable as a bits wide signed
// integer.
func fitsInt(val int64, bits int) bool {
	if bits >= 64 {
		return true
	}
	limit := int64(1) << uint(bits-1)
	return val >= -limit && val < limit
}

// hexWord formats val as bits/4 hex digits. Negative values are
// encoded in two's complement. The value must fit the width.
func hexWord(val int64, bits int) string {
	v := big.NewInt(val)
	if v.Sign() < 0 {
		v.Add(v, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
	}
	return fmt.Sprintf("%0*x", bits/4, v)
}

// encodeInt encodes val as a bits wide circuit input.
func encodeInt(val int64, bits int) string {
	return "0x" + hexWord(val, bits)
}

// encodeArray encodes vals as an array input of bits wide
// elements. The first element is the most significant word of the
// encoding.
func encodeArray(vals []int64, bits int) string {
	var sb strings.Builder

	sb.WriteString("0x")
	for _, v := range vals {
		sb.WriteString(hexWord(v, bits))
	}
	return sb.String()
}
