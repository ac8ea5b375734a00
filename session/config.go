//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package session implements the network session parameters of a
// two-party computation run and their validation.
package session

import (
	"fmt"
	"net"
	"strconv"
)

// Default session parameters.
const (
	DefaultAddress       = "127.0.0.1"
	DefaultPort          = 7766
	DefaultBitWidth      = 32
	DefaultSecurityParam = 128
)

// Config defines the validated session parameters. Config values are
// immutable; they are created with Default or Validate.
type Config struct {
	address       string
	port          int
	bitWidth      int
	securityParam int
}

// Default returns the default session configuration.
func Default() Config {
	return Config{
		address:       DefaultAddress,
		port:          DefaultPort,
		bitWidth:      DefaultBitWidth,
		securityParam: DefaultSecurityParam,
	}
}

// Address returns the peer IPv4 address.
func (c Config) Address() string {
	return c.address
}

// Port returns the TCP port.
func (c Config) Port() int {
	return c.port
}

// BitWidth returns the integer bit width of the computation inputs.
func (c Config) BitWidth() int {
	return c.bitWidth
}

// SecurityParam returns the security parameter in bits.
func (c Config) SecurityParam() int {
	return c.securityParam
}

// HostPort returns the session address in host:port format.
func (c Config) HostPort() string {
	return net.JoinHostPort(c.address, strconv.Itoa(c.port))
}

func (c Config) String() string {
	return fmt.Sprintf("%s bits=%d sec=%d", c.HostPort(), c.bitWidth,
		c.securityParam)
}
