//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package session

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var addressTests = []struct {
	input    string
	expected string
	valid    bool
}{
	{"", DefaultAddress, true},
	{"   ", DefaultAddress, true},
	{"\t", DefaultAddress, true},
	{"127.0.0.1", "127.0.0.1", true},
	{"0.0.0.0", "0.0.0.0", true},
	{"255.255.255.255", "255.255.255.255", true},
	{"192.168.001.010", "192.168.001.010", true},
	{"10.0.0.256", "", false},
	{"256.0.0.1", "", false},
	{"10.0.0", "", false},
	{"10.0.0.1.5", "", false},
	{"10.0.0.1\n", "", false},
	{" 10.0.0.1", "", false},
	{"a.b.c.d", "", false},
	{"localhost", "", false},
	{"::1", "", false},
	{"1000.0.0.1", "", false},
}

func TestValidateAddress(t *testing.T) {
	for _, test := range addressTests {
		addr, err := ValidateAddress(test.input)
		if !test.valid {
			assert.True(t, errors.Is(err, ErrAddress), "%q", test.input)
			continue
		}
		require.NoError(t, err, "%q", test.input)
		assert.Equal(t, test.expected, addr)
	}
}

func TestValidatePort(t *testing.T) {
	port, err := ValidatePort("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, port)

	port, err = ValidatePort(" ")
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, port)

	for p := 1000; p <= 1100; p++ {
		port, err := ValidatePort(fmt.Sprintf("%d", p))
		if p <= 1024 {
			assert.True(t, errors.Is(err, ErrPort), "%d", p)
		} else {
			require.NoError(t, err)
			assert.Equal(t, p, port)
		}
	}
	for _, p := range []string{"65535", "7766", "1025"} {
		_, err := ValidatePort(p)
		assert.NoError(t, err, p)
	}
	for _, p := range []string{" 8080", "8080 ", "80 80", "+", "8080\t"} {
		_, err := ValidatePort(p)
		assert.True(t, errors.Is(err, ErrPort), "%q", p)
	}
	for _, p := range []string{"65536", "0", "-1", "999", "abc", "80.5",
		"99999999999999999999"} {
		_, err := ValidatePort(p)
		assert.True(t, errors.Is(err, ErrPort), p)
	}
}

func TestValidateBitWidth(t *testing.T) {
	bits, err := ValidateBitWidth("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBitWidth, bits)

	for w := -1; w <= 128; w++ {
		bits, err := ValidateBitWidth(fmt.Sprintf("%d", w))
		switch w {
		case 8, 16, 32, 64:
			require.NoError(t, err)
			assert.Equal(t, w, bits)
		default:
			assert.True(t, errors.Is(err, ErrBitWidth), "%d", w)
		}
	}
	_, err = ValidateBitWidth("sixteen")
	assert.True(t, errors.Is(err, ErrBitWidth))
}

func TestValidateSecurityParam(t *testing.T) {
	bits, err := ValidateSecurityParam("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSecurityParam, bits)

	for s := 0; s <= 300; s++ {
		bits, err := ValidateSecurityParam(fmt.Sprintf("%d", s))
		switch s {
		case 80, 112, 128, 192, 256:
			require.NoError(t, err)
			assert.Equal(t, s, bits)
		default:
			assert.True(t, errors.Is(err, ErrSecurityParam), "%d", s)
		}
	}
}

func TestValidate(t *testing.T) {
	result := Validate(Raw{BitWidth: "16"})
	valid, ok := result.(Valid)
	require.True(t, ok)
	assert.Equal(t, "127.0.0.1", valid.Config.Address())
	assert.Equal(t, 7766, valid.Config.Port())
	assert.Equal(t, 16, valid.Config.BitWidth())
	assert.Equal(t, 128, valid.Config.SecurityParam())
	assert.Equal(t, "long", valid.Config.Tier().Name)
	assert.Equal(t, "127.0.0.1:7766", valid.Config.HostPort())

	tests := []struct {
		raw   Raw
		field Field
	}{
		{Raw{Address: "1.2.3"}, FieldAddress},
		{Raw{Port: "999"}, FieldPort},
		{Raw{Port: "x"}, FieldPort},
		{Raw{BitWidth: "12"}, FieldBitWidth},
		{Raw{SecurityParam: "100"}, FieldSecurityParam},
		{Raw{Port: " 8080"}, FieldPort},
		{Raw{BitWidth: "16 "}, FieldBitWidth},
		{Raw{Address: "1.2.3", SecurityParam: "100"}, FieldAddress},
	}
	for _, test := range tests {
		invalid, ok := Validate(test.raw).(Invalid)
		require.True(t, ok, "%+v", test.raw)
		assert.Equal(t, test.field, invalid.Field)
		assert.Contains(t, invalid.Error(), test.field.String())
	}
}

func TestValidateIdempotent(t *testing.T) {
	raw := Raw{
		Address:       "10.1.2.3",
		Port:          "8080",
		BitWidth:      "64",
		SecurityParam: "256",
	}
	first := Validate(raw)
	second := Validate(raw)
	assert.Equal(t, first, second)

	valid, ok := first.(Valid)
	require.True(t, ok)
	assert.Equal(t, "10.1.2.3:8080 bits=64 sec=256", valid.Config.String())
}
