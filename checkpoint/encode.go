package checkpoint

import (
	"io"

	json "github.com/goccy/go-json"
)

// Encode writes c to w as indented JSON with hex encoded hashes.
func Encode(w io.Writer, c *Chain) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return Error.Wrap(enc.Encode(c))
}

// Decode reads a chain written by Encode. Unknown fields are rejected and
// the chain must have a positive interval and at least one checkpoint.
func Decode(r io.Reader) (*Chain, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var c Chain
	if err := dec.Decode(&c); err != nil {
		return nil, Error.Wrap(err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
