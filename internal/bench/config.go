package bench

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/zeebo/rsha256/internal/consts"
)

// Unit selects how a result is reported.
type Unit int

const (
	MHs Unit = iota
	MBs
	MiBs
	CPB
)

var unitNames = [...]string{
	MHs:  "MH",
	MBs:  "MB",
	MiBs: "MiB",
	CPB:  "cpb",
}

// ParseUnit parses MH, MB, MiB or cpb, ignoring case.
func ParseUnit(s string) (Unit, error) {
	for u, name := range unitNames {
		if strings.EqualFold(s, name) {
			return Unit(u), nil
		}
	}
	return 0, Error.New("unknown unit %q (want MH, MB, MiB or cpb)", s)
}

func (u Unit) String() string {
	switch u {
	case MHs:
		return "MH/s"
	case MBs:
		return "MB/s"
	case MiBs:
		return "MiB/s"
	case CPB:
		return "cpb"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Set and Type make Unit usable as a pflag.Value.
func (u *Unit) Set(s string) (err error) {
	*u, err = ParseUnit(s)
	return err
}

func (u *Unit) Type() string { return "unit" }

var itersNames = []struct {
	name  string
	iters uint64
}{
	{"10M", 10e6},
	{"50M", 50e6},
	{"100M", 100e6},
	{"200M", 200e6},
	{"500M", 500e6},
}

// ParseIters parses one of the recorded run lengths: 10M, 50M, 100M, 200M
// or 500M, ignoring case.
func ParseIters(s string) (uint64, error) {
	for _, e := range itersNames {
		if strings.EqualFold(s, e.name) {
			return e.iters, nil
		}
	}
	return 0, Error.New("unknown iteration count %q (want 10M, 50M, 100M, 200M or 500M)", s)
}

const (
	minGHz = 0.1
	maxGHz = 999.9
)

// ParseGHz checks a cpu speed and truncates it to two decimals.
func ParseGHz(v float64) (float64, error) {
	if math.IsNaN(v) || v < minGHz || v > maxGHz {
		return 0, Error.New("cpu speed %v out of range [%v, %v] GHz", v, minGHz, maxGHz)
	}
	return math.Trunc(v*100) / 100, nil
}

const maxThreads = 256

// Config describes a benchmark run.
type Config struct {
	// Iters is the chain length of every lane. It must have a recorded
	// vector.
	Iters uint64

	// GHz is the cpu speed used to derive per-clock figures. Zero means
	// unknown.
	GHz float64

	Unit    Unit
	Threads int

	// Widths lists the lane counts to run, each in 1..4.
	Widths []int

	// Reference also runs the generic driver at width 1.
	Reference bool
}

// DefaultConfig is what the command runs without flags.
func DefaultConfig() Config {
	return Config{
		Iters:   10e6,
		Unit:    MHs,
		Threads: 1,
		Widths:  []int{1, 2, 3, 4},
	}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if c.Iters == 0 {
		return Error.New("iteration count must be positive")
	}
	for l := 0; l < consts.MaxLanes; l++ {
		if _, ok := lookup(l, c.Iters); !ok {
			return Error.New("no recorded values for %d iterations", c.Iters)
		}
	}
	if c.GHz != 0 {
		if _, err := ParseGHz(c.GHz); err != nil {
			return err
		}
	}
	if c.Unit < MHs || c.Unit > CPB {
		return Error.New("invalid unit %v", c.Unit)
	}
	if c.Threads < 1 || c.Threads > maxThreads {
		return Error.New("threads must be in [1, %d], got %d", maxThreads, c.Threads)
	}
	if len(c.Widths) == 0 && !c.Reference {
		return Error.New("nothing to run")
	}

	seen := make(map[int]bool)
	for _, w := range c.Widths {
		if w < 1 || w > consts.MaxLanes {
			return Error.New("width must be in [1, %d], got %d", consts.MaxLanes, w)
		}
		if seen[w] {
			return Error.New("width %d given twice", w)
		}
		seen[w] = true
	}
	return nil
}

// Notes returns the informational lines a run with c should print.
func (c Config) Notes() (notes []string) {
	if c.Unit == CPB && c.Threads > 1 {
		notes = append(notes,
			"cycle counts are only meaningful for one thread on one core; pin the process to a single core")
	}
	if c.Unit == CPB && c.GHz == 0 {
		notes = append(notes, "cycle counts need the cpu speed (-s)")
	}
	return notes
}

// Parameters describes c on one line.
func (c Config) Parameters() string {
	ghz := "n/a"
	if c.GHz != 0 {
		ghz = fmt.Sprintf("%.2f", c.GHz)
	}

	widths := append([]int(nil), c.Widths...)
	sort.Ints(widths)

	return fmt.Sprintf("%d MH (iterations), %s GHz (cpu speed), %v (unit), %d (threads), widths %v",
		c.Iters/1e6, ghz, c.Unit, c.Threads, widths)
}
