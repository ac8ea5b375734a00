//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package session

// Tier describes a security parameter level.
type Tier struct {
	Bits int
	Name string
}

// Tiers lists the supported security levels in increasing order.
var Tiers = []Tier{
	{80, "short"},
	{112, "mid"},
	{128, "long"},
	{192, "extra long"},
	{256, "xx long"},
}

// BitWidths lists the supported input bit widths.
var BitWidths = []int{8, 16, 32, 64}

// TierOf returns the security tier for the argument security
// parameter.
func TierOf(bits int) (Tier, bool) {
	for _, tier := range Tiers {
		if tier.Bits == bits {
			return tier, true
		}
	}
	return Tier{}, false
}

// Tier returns the security tier of the configuration.
func (c Config) Tier() Tier {
	tier, _ := TierOf(c.securityParam)
	return tier
}
