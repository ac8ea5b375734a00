//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"fmt"
	"io"
	"math/big"
)

// printResult prints the labeled result values.
func printResult(w io.Writer, label string, results []interface{}) {
	if len(results) == 1 {
		fmt.Fprintf(w, "%s: %v\n", label, results[0])
		return
	}
	for idx, result := range results {
		fmt.Fprintf(w, "%s[%d]: %v\n", label, idx, result)
	}
}

// printDistance prints the squared distance result and the distance.
func printDistance(w io.Writer, squared, label string,
	results []interface{}) {

	printResult(w, squared, results)
	if len(results) != 1 {
		return
	}
	v, ok := bigValue(results[0])
	if !ok || v.Sign() < 0 {
		return
	}
	root := new(big.Float).SetInt(v)
	root.Sqrt(root)
	fmt.Fprintf(w, "%s: %s\n", label, root.Text('f', 3))
}

// bigValue converts an integer result value to big.Int.
func bigValue(v interface{}) (*big.Int, bool) {
	switch v := v.(type) {
	case *big.Int:
		return v, true
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint64:
		return new(big.Int).SetUint64(v), true
	case int8:
		return big.NewInt(int64(v)), true
	case int16:
		return big.NewInt(int64(v)), true
	case int32:
		return big.NewInt(int64(v)), true
	case int64:
		return big.NewInt(v), true
	default:
		return nil, false
	}
}
