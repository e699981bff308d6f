// Package bench measures the recursive SHA-256 drivers the way the classic
// benchmark did: every lane starts from a recorded seed, the result after the
// run is checked against recorded values, and throughput is reported in
// hashes, bytes or cycles.
package bench

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/remeh/sizedwaitgroup"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/zeebo/rsha256"
	"github.com/zeebo/rsha256/internal/consts"
	"github.com/zeebo/rsha256/internal/vectors"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("bench")

func lookup(lane int, n uint64) ([consts.Size]byte, bool) { return vectors.Lookup(lane, n) }

// Driver advances Width independent lanes packed in buf.
type Driver struct {
	Name  string
	Width int
	Run   func(buf []byte, n uint64)
}

func fastDriver(width int) Driver {
	d := Driver{Name: fmt.Sprintf("x%d", width), Width: width}
	switch width {
	case 1:
		d.Run = func(buf []byte, n uint64) { rsha256.Recurse((*[rsha256.Size]byte)(buf), n) }
	case 2:
		d.Run = func(buf []byte, n uint64) { rsha256.Recurse2((*[2 * rsha256.Size]byte)(buf), n) }
	case 3:
		d.Run = func(buf []byte, n uint64) { rsha256.Recurse3((*[3 * rsha256.Size]byte)(buf), n) }
	case 4:
		d.Run = func(buf []byte, n uint64) { rsha256.Recurse4((*[4 * rsha256.Size]byte)(buf), n) }
	}
	return d
}

var referenceDriver = Driver{
	Name:  "ref",
	Width: 1,
	Run:   func(buf []byte, n uint64) { rsha256.Reference((*[rsha256.Size]byte)(buf), n) },
}

// Drivers lists what c runs, in order.
func (c Config) Drivers() (ds []Driver) {
	if c.Reference {
		ds = append(ds, referenceDriver)
	}
	for _, w := range c.Widths {
		ds = append(ds, fastDriver(w))
	}
	return ds
}

// Header is the banner printed before a run.
func Header() string {
	return fmt.Sprintf("rsha256 benchmark: backend %s on %s (%d cores, %d threads)",
		rsha256.Backend(), cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
}

// Runner executes benchmarks and writes progress to Out.
type Runner struct {
	Config Config
	Out    io.Writer
	Log    *zap.Logger
}

func (r *Runner) log() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

func (r *Runner) printf(format string, args ...interface{}) {
	if r.Out != nil {
		fmt.Fprintf(r.Out, format, args...)
	}
}

// Run validates the configuration, then runs every driver in turn. Results
// are returned even when a run fails verification, in which case the error
// is also set. Consistency check failures stop the run.
func (r *Runner) Run(ctx context.Context) (results []Result, err error) {
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}
	if !rsha256.Accelerated() {
		return nil, Error.New("backend %s is not supported by this cpu", rsha256.Backend())
	}

	r.printf("- Parameters: %s\n", r.Config.Parameters())
	for _, note := range r.Config.Notes() {
		r.printf("- INFO: %s\n", note)
	}

	var group errs.Group
	for _, d := range r.Config.Drivers() {
		if err := ctx.Err(); err != nil {
			return results, Error.Wrap(err)
		}

		res, err := r.runDriver(d)
		if err != nil {
			return results, err
		}
		results = append(results, res)

		r.printf("- %-4s %s\n", d.Name, res.Format(r.Config.Unit, r.Config.GHz))
		if !res.OK {
			group.Add(Error.New("%s: value after %d iterations does not match the recorded value", d.Name, res.Iters))
		}
	}

	return results, group.Err()
}

func seeds(buf []byte, width int) []byte {
	return append(buf[:0], vectors.Seeds(width)...)
}

// Check runs d for 0 and 1 iterations from the recorded seeds and compares
// the lanes with the recorded values.
func Check(d Driver) error {
	buf := make([]byte, d.Width*consts.Size)
	for _, n := range []uint64{0, 1} {
		seeds(buf, d.Width)
		d.Run(buf, n)
		if !vectors.Check(buf, n) {
			return Error.New("%s: value after %d iterations does not match the recorded value", d.Name, n)
		}
	}
	return nil
}

func (r *Runner) runDriver(d Driver) (Result, error) {
	cfg := r.Config
	log := r.log().With(zap.String("driver", d.Name))

	if err := Check(d); err != nil {
		return Result{}, err
	}
	log.Debug("consistency check passed")

	buf := seeds(make([]byte, d.Width*consts.Size), d.Width)
	spin := time.Now()
	d.Run(buf, cfg.Iters)
	log.Debug("spin run done", zap.Duration("elapsed", time.Since(spin)))

	limit := cfg.Threads
	if procs := runtime.GOMAXPROCS(0); limit > procs {
		limit = procs
	}
	swg := sizedwaitgroup.New(limit)
	ok := make([]bool, cfg.Threads)

	start := time.Now()
	for t := 0; t < cfg.Threads; t++ {
		swg.Add()
		go func(t int) {
			defer swg.Done()
			buf := seeds(make([]byte, d.Width*consts.Size), d.Width)
			d.Run(buf, cfg.Iters)
			ok[t] = vectors.Check(buf, cfg.Iters)
		}(t)
	}
	swg.Wait()
	elapsed := time.Since(start)

	if elapsed <= 0 {
		return Result{}, Error.New("%s: elapsed time after %d iterations is zero", d.Name, cfg.Iters)
	}

	res := Result{
		Driver:  d.Name,
		Width:   d.Width,
		Threads: cfg.Threads,
		Iters:   cfg.Iters,
		Elapsed: elapsed,
		OK:      true,
	}
	for t, good := range ok {
		if !good {
			log.Debug("thread failed verification", zap.Int("thread", t))
			res.OK = false
		}
	}

	log.Debug("timed run done",
		zap.Duration("elapsed", elapsed),
		zap.Uint64("total", res.Total()),
		zap.Bool("ok", res.OK))

	return res, nil
}
