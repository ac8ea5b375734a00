//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package session

import (
	"log/slog"
)

// RetryMessage is printed when the entered parameters are rejected.
const RetryMessage = "port, addr, bitlen or secparam incorrect: GO AGAIN!"

// Console defines the operator console used for reading the session
// parameters.
type Console interface {
	ReadLine() (string, error)
	Printf(format string, a ...interface{})
	Diagf(format string, a ...interface{})
}

// Prompt reads the session parameters from the console until all
// four parameters are valid. A single invalid parameter restarts the
// prompt sequence from the address.
func Prompt(c Console, log *slog.Logger) (Config, error) {
	for {
		raw, err := readRaw(c)
		if err != nil {
			return Config{}, err
		}
		switch result := Validate(raw).(type) {
		case Valid:
			log.Debug("session parameters accepted",
				"config", result.Config.String())
			return result.Config, nil

		case Invalid:
			log.Debug("session parameters rejected",
				"field", result.Field.String(), "err", result.Err)
			if result.Field == FieldAddress {
				c.Printf("Invalid addr\n")
			}
			c.Diagf("%s\n", RetryMessage)
		}
	}
}

func readRaw(c Console) (raw Raw, err error) {
	c.Printf("Enter ipaddress for client and server to connect\n")
	raw.Address, err = c.ReadLine()
	if err != nil {
		return
	}
	c.Printf("Enter port number to create socket on\n")
	raw.Port, err = c.ReadLine()
	if err != nil {
		return
	}
	c.Printf("Enter bitlen 8, 16, 32 or 64\n")
	raw.BitWidth, err = c.ReadLine()
	if err != nil {
		return
	}
	c.Printf("Enter the security param:default %d\n", DefaultSecurityParam)
	for _, tier := range Tiers {
		c.Printf("%d-%s\n", tier.Bits, tier.Name)
	}
	raw.SecurityParam, err = c.ReadLine()
	return
}
