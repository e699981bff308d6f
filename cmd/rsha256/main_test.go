package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeebo/assert"

	"github.com/zeebo/rsha256"
	"github.com/zeebo/rsha256/checkpoint"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	a := new(app)
	cmd := a.root()

	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCPU(t *testing.T) {
	out, err := run(t, "", "cpu")
	assert.NoError(t, err)
	assert.That(t, strings.Contains(out, "backend:     "+rsha256.Backend()))
}

func TestChain(t *testing.T) {
	if !rsha256.Accelerated() {
		t.SkipNow()
	}

	path := filepath.Join(t.TempDir(), "chain.json")

	_, err := run(t, "", "chain", "create", "--seed-text", "hello", "--interval", "100", "--count", "5", "-o", path)
	assert.NoError(t, err)

	fh, err := os.Open(path)
	assert.NoError(t, err)
	c, err := checkpoint.Decode(fh)
	assert.NoError(t, fh.Close())
	assert.NoError(t, err)
	assert.Equal(t, c.Seed, checkpoint.SeedFrom([]byte("hello")))
	assert.Equal(t, c.Iterations(), uint64(500))

	out, err := run(t, "", "chain", "verify", "-f", path, "--workers", "2")
	assert.NoError(t, err)
	assert.That(t, strings.HasPrefix(out, "ok: 5 segments, 500 iterations"))

	c.Checkpoints[2][0] ^= 1
	var buf bytes.Buffer
	assert.NoError(t, checkpoint.Encode(&buf, c))

	_, err = run(t, buf.String(), "chain", "verify")
	assert.Error(t, err)
}

func TestChain_Flags(t *testing.T) {
	_, err := run(t, "", "chain", "create", "--interval", "1", "--count", "1")
	assert.Error(t, err)

	_, err = run(t, "", "chain", "create", "--seed", "00", "--seed-text", "x", "--interval", "1", "--count", "1")
	assert.Error(t, err)
}

func TestBench_Flags(t *testing.T) {
	for _, args := range [][]string{
		{"bench", "-i", "1M"},
		{"bench", "-s", "0.01"},
		{"bench", "-m", "GB"},
		{"bench", "-t", "0"},
		{"bench", "-w", "5"},
	} {
		_, err := run(t, "", args...)
		assert.Error(t, err)
	}
}
