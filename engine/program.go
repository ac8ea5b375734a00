//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"bytes"
	"embed"
	"math/bits"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pkg/errors"
)

//go:embed programs/*.mpcl
var programFS embed.FS

var programs = template.Must(template.ParseFS(programFS, "programs/*.mpcl"))

// Program names.
const (
	ProgramMillionaire = "millionaire"
	ProgramEuclid      = "euclid"
	ProgramMinEuclid   = "min_euclid"
)

// Shape defines the program instantiation parameters.
type Shape struct {
	Bits   int
	Points int
	Dim    int
}

// Cells returns the number of coordinates in the server database.
func (s Shape) Cells() int {
	return s.Points * s.Dim
}

// DistanceBits returns the width of the distance computations. It
// holds a sign bit and the sum of Dim squared differences of Bits wide
// coordinates, rounded up to whole bytes.
func (s Shape) DistanceBits() int {
	dim := s.Dim
	if dim < 1 {
		dim = 1
	}
	width := 2*s.Bits + bits.Len(uint(dim-1)) + 1
	return (width + 7) / 8 * 8
}

// Program instantiates the named MPCL program for the shape.
func Program(name string, shape Shape) (string, error) {
	var buf bytes.Buffer
	err := programs.ExecuteTemplate(&buf, name+".mpcl", shape)
	if err != nil {
		return "", errors.Wrapf(err, "program %s", name)
	}
	return buf.String(), nil
}

// writeProgram writes the instantiated program into a new temporary
// directory. The caller must remove the returned directory.
func writeProgram(name string, shape Shape) (dir, file string, err error) {
	code, err := Program(name, shape)
	if err != nil {
		return "", "", err
	}
	dir, err = os.MkdirTemp("", "mpcdemo")
	if err != nil {
		return "", "", err
	}
	file = filepath.Join(dir, name+".mpcl")
	err = os.WriteFile(file, []byte(code), 0o600)
	if err != nil {
		os.RemoveAll(dir)
		return "", "", err
	}
	return dir, file, nil
}
