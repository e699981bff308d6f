// Package checkpoint builds and checks long recursive SHA-256 chains in the
// manner of a verifiable delay function: creating a chain is strictly
// sequential, while the recorded checkpoints split it into segments that can
// all be verified at the same time.
package checkpoint

import (
	"context"
	"fmt"
	"math/bits"
	"runtime"

	"github.com/minio/sha256-simd"
	hex "github.com/tmthrgd/go-hex"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zeebo/rsha256"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("checkpoint")

// Hash is a chain value.
type Hash [rsha256.Size]byte

// SeedFrom derives a chain seed from arbitrary bytes.
func SeedFrom(data []byte) Hash { return Hash(sha256.Sum256(data)) }

func (h Hash) String() string { return hex.EncodeToString(h[:]) }

func (h Hash) MarshalText() ([]byte, error) {
	out := make([]byte, hex.EncodedLen(len(h)))
	hex.Encode(out, h[:])
	return out, nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	if len(text) != hex.EncodedLen(len(h)) {
		return Error.New("hash must be %d hex digits, got %d", hex.EncodedLen(len(h)), len(text))
	}
	if _, err := hex.Decode(h[:], text); err != nil {
		return Error.Wrap(err)
	}
	return nil
}

// Chain is a seed and the chain value after every Interval iterations:
// Checkpoints[i] is Seed after (i+1)*Interval iterations.
type Chain struct {
	Seed        Hash   `json:"seed"`
	Interval    uint64 `json:"interval"`
	Checkpoints []Hash `json:"checkpoints"`
}

// Iterations is the length of the whole chain. Decode and Create reject
// chains whose length does not fit in a uint64.
func (c *Chain) Iterations() uint64 { return c.Interval * uint64(len(c.Checkpoints)) }

// Output is the final chain value.
func (c *Chain) Output() Hash {
	if len(c.Checkpoints) == 0 {
		return c.Seed
	}
	return c.Checkpoints[len(c.Checkpoints)-1]
}

func (c *Chain) validate() error {
	switch {
	case c.Interval == 0:
		return Error.New("interval must be positive")
	case len(c.Checkpoints) == 0:
		return Error.New("chain has no checkpoints")
	case overflows(c.Interval, len(c.Checkpoints)):
		return Error.New("chain of %d segments of %d iterations is too long", len(c.Checkpoints), c.Interval)
	}
	return nil
}

func overflows(interval uint64, count int) bool {
	hi, _ := bits.Mul64(interval, uint64(count))
	return hi != 0
}

// Options configures Create and Verify.
type Options struct {
	// Workers bounds the goroutines Verify uses. Zero means GOMAXPROCS.
	Workers int

	// Log receives debug progress. Nil disables logging.
	Log *zap.Logger
}

func (o Options) log() *zap.Logger {
	if o.Log == nil {
		return zap.NewNop()
	}
	return o.Log
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}

func checkBackend() error {
	if !rsha256.Accelerated() {
		return Error.New("backend %s is not supported by this cpu", rsha256.Backend())
	}
	return nil
}

// MismatchError reports a segment whose recomputed end value differs from
// the recorded checkpoint.
type MismatchError struct {
	Segment int
	Got     Hash
	Want    Hash
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("segment %d: computed %v, recorded %v", e.Segment, e.Got, e.Want)
}

// Create runs the chain from seed for count segments of interval iterations
// each and records the value at the end of every segment. The work is one
// dependent chain, so it runs on a single lane; ctx is checked between
// segments.
func Create(ctx context.Context, seed Hash, interval uint64, count int, opts Options) (*Chain, error) {
	if err := checkBackend(); err != nil {
		return nil, err
	}

	switch {
	case interval == 0:
		return nil, Error.New("interval must be positive")
	case count < 1:
		return nil, Error.New("count must be positive")
	case overflows(interval, count):
		return nil, Error.New("chain of %d segments of %d iterations is too long", count, interval)
	}

	c := &Chain{Seed: seed, Interval: interval, Checkpoints: make([]Hash, 0, count)}

	log := opts.log()
	h := [rsha256.Size]byte(seed)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, Error.Wrap(err)
		}

		rsha256.Recurse(&h, interval)
		c.Checkpoints = append(c.Checkpoints, Hash(h))

		log.Debug("checkpoint created",
			zap.Int("segment", i),
			zap.Stringer("value", Hash(h)))
	}

	return c, nil
}

// Verify recomputes every segment of c and compares it with the recorded
// checkpoint. Segments are independent chains, so they are paired onto the
// lanes of rsha256.Recurse2 and the pairs spread over opts.Workers
// goroutines. The first mismatch found is returned as a *MismatchError
// wrapped in Error and stops the remaining work. With more than one worker
// that is not necessarily the lowest bad segment. Once every segment has been
// checked Verify succeeds even if ctx is canceled before it returns.
func Verify(ctx context.Context, c *Chain, opts Options) error {
	if err := checkBackend(); err != nil {
		return err
	}
	if err := c.validate(); err != nil {
		return err
	}

	log := opts.log()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	start := func(i int) Hash {
		if i == 0 {
			return c.Seed
		}
		return c.Checkpoints[i-1]
	}

	check := func(i int, got Hash) error {
		if got != c.Checkpoints[i] {
			return Error.Wrap(&MismatchError{Segment: i, Got: got, Want: c.Checkpoints[i]})
		}
		return nil
	}

	segments, scheduled := len(c.Checkpoints), 0
	for i := 0; i < segments; i += 2 {
		i := i
		if gctx.Err() != nil {
			break
		}
		scheduled = i + 2

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return Error.Wrap(err)
			}

			if i+1 == segments {
				h := [rsha256.Size]byte(start(i))
				rsha256.Recurse(&h, c.Interval)
				return check(i, Hash(h))
			}

			var lanes [2 * rsha256.Size]byte
			s0, s1 := start(i), start(i+1)
			copy(lanes[:rsha256.Size], s0[:])
			copy(lanes[rsha256.Size:], s1[:])
			rsha256.Recurse2(&lanes, c.Interval)

			log.Debug("segments verified", zap.Int("first", i), zap.Int("count", 2))

			if err := check(i, Hash(lanes[:rsha256.Size])); err != nil {
				return err
			}
			return check(i+1, Hash(lanes[rsha256.Size:]))
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if scheduled < segments {
		return Error.Wrap(ctx.Err())
	}
	return nil
}
