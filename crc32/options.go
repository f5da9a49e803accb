package crc32

import (
	"errors"
	"fmt"
)

// ErrZeroPolynomial is returned when the polynomial is 0.
var ErrZeroPolynomial = errors.New("polynomial must be non-zero")

const (
	// DefaultPolynomial is the bit-reversed IEEE 802.3 polynomial.
	DefaultPolynomial = 0xEDB88320

	// DefaultSeed is the default initial key.
	DefaultSeed = 0
)

// Option is a function that configures an Engine.
type Option func(*config) error

// config holds the configuration for an Engine.
type config struct {
	polynomial uint32
	noTable    bool
}

func defaultConfig() *config {
	return &config{
		polynomial: DefaultPolynomial,
	}
}

// validate checks that the configuration is valid.
func (c *config) validate() error {
	if c.polynomial == 0 {
		return fmt.Errorf("%w: got %#08x", ErrZeroPolynomial, c.polynomial)
	}

	return nil
}

// WithPolynomial sets the bit-reversed polynomial.
// A different polynomial is a different checksum, not a tweak of this one.
func WithPolynomial(poly uint32) Option {
	return func(c *config) error {
		if poly == 0 {
			return ErrZeroPolynomial
		}

		c.polynomial = poly

		return nil
	}
}

// WithoutTable selects the arithmetic engine: no lookup table is built and
// every input byte is reduced bit by bit. Output is identical.
func WithoutTable() Option {
	return func(c *config) error {
		c.noTable = true

		return nil
	}
}
