//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package session

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// Print prints the session parameters as a table.
func (c Config) Print(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Param").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.MR)

	row := tab.Row()
	row.Column("Address")
	row.Column(c.address)

	row = tab.Row()
	row.Column("Port")
	row.Column(fmt.Sprintf("%d", c.port))

	row = tab.Row()
	row.Column("Bitlen")
	row.Column(fmt.Sprintf("%d", c.bitWidth))

	row = tab.Row()
	row.Column("Secparam")
	row.Column(fmt.Sprintf("%d (%s)", c.securityParam, c.Tier().Name))

	tab.Print(w)
}
