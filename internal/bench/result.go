package bench

import (
	"fmt"
	"time"
)

// BlockLen is the number of bytes compressed per iteration.
const BlockLen = 64

// Result is one timed run of a driver.
type Result struct {
	Driver  string
	Width   int
	Threads int
	Iters   uint64
	Elapsed time.Duration
	OK      bool
}

// Total is the number of hashes computed across all lanes and threads.
func (r Result) Total() uint64 { return r.Iters * uint64(r.Width) * uint64(r.Threads) }

func (r Result) rate() float64 { return float64(r.Total()) / r.Elapsed.Seconds() }

func (r Result) MHs() float64  { return r.rate() / 1e6 }
func (r Result) MBs() float64  { return r.rate() * BlockLen / 1e6 }
func (r Result) MiBs() float64 { return r.rate() * BlockLen / (1 << 20) }

// CyclesPerBlock converts the rate into clock cycles per hash at ghz.
func (r Result) CyclesPerBlock(ghz float64) float64 { return ghz * 1e9 / r.rate() }

// CyclesPerByte is CyclesPerBlock spread over the block.
func (r Result) CyclesPerByte(ghz float64) float64 { return r.CyclesPerBlock(ghz) / BlockLen }

// Format renders r in unit. A zero ghz leaves the per-clock figures as n/a.
func (r Result) Format(unit Unit, ghz float64) string {
	verify := "ok"
	if !r.OK {
		verify = "ERROR"
	}

	var value string
	switch unit {
	case MHs:
		value = fmt.Sprintf("%7.2f MH/s (%s MH/s/0.1GHz)", r.MHs(), perTenth(r.MHs(), ghz, "%6.3f"))
	case MBs:
		value = fmt.Sprintf("%9.2f MB/s (%s MB/s/0.1GHz)", r.MBs(), perTenth(r.MBs(), ghz, "%7.2f"))
	case MiBs:
		value = fmt.Sprintf("%9.2f MiB/s (%s MiB/s/0.1GHz)", r.MiBs(), perTenth(r.MiBs(), ghz, "%7.2f"))
	case CPB:
		if ghz == 0 {
			value = "n/a cycles per block (n/a per byte)"
		} else {
			value = fmt.Sprintf("%6.1f cycles per block (%4.2f per byte)",
				r.CyclesPerBlock(ghz), r.CyclesPerByte(ghz))
		}
	}

	return fmt.Sprintf("%s [verify hash: %s]", value, verify)
}

func perTenth(v, ghz float64, format string) string {
	if ghz == 0 {
		return "n/a"
	}
	return fmt.Sprintf(format, v/(ghz*10))
}
