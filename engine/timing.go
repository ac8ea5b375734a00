//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/mpc/p2p"
	"github.com/markkurossi/tabulate"
)

// FileSize specifies a transfer size in bytes.
type FileSize uint64

func (s FileSize) String() string {
	if s > 1000*1000*1000 {
		return fmt.Sprintf("%d GB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%d MB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%d kB", s/1000)
	}
	return fmt.Sprintf("%d B", s)
}

// Timing records the phases of a protocol run.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// Sample is a timing sample of one phase.
type Sample struct {
	Label string
	Start time.Time
	End   time.Time
}

// NewTiming creates a new Timing starting now.
func NewTiming() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample ends the current phase with the label.
func (t *Timing) Sample(label string) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Print prints the timing and transfer report.
func (t *Timing) Print(w io.Writer, stats p2p.IOStats) {
	if len(t.Samples) == 0 {
		return
	}
	sent := stats.Sent.Load()
	received := stats.Recvd.Load()

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)

	total := t.Samples[len(t.Samples)-1].End.Sub(t.Start)
	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.End.Sub(sample.Start)
		row.Column(duration.String())
		row.Column(fmt.Sprintf("%.2f%%", percent(duration, total)))
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)

	row = tab.Row()
	row.Column("├╴Sent").SetFormat(tabulate.FmtItalic)
	row.Column(FileSize(sent).String()).SetFormat(tabulate.FmtItalic)
	row.Column("")

	row = tab.Row()
	row.Column("╰╴Rcvd").SetFormat(tabulate.FmtItalic)
	row.Column(FileSize(received).String()).SetFormat(tabulate.FmtItalic)
	row.Column("")

	tab.Print(w)
}

func percent(d, total time.Duration) float64 {
	if total == 0 {
		return 0
	}
	return float64(d) / float64(total) * 100
}
