package fnv1a

import (
	"errors"
	"fmt"
)

// ErrEvenPrime is returned when a prime is even. Multiplying by an even
// number shifts low bits out of the state for good.
var ErrEvenPrime = errors.New("prime must be odd")

const (
	// DefaultBasis32 is the 32-bit offset basis.
	DefaultBasis32 = 0x811C9DC5

	// DefaultPrime32 is the 32-bit FNV prime.
	DefaultPrime32 = 0x01000193

	// DefaultBasis64 is the 64-bit offset basis.
	DefaultBasis64 = 0xCBF29CE484222325

	// DefaultPrime64 is the 64-bit FNV prime.
	DefaultPrime64 = 0x100000001B3
)

// Option is a function that configures an Engine32 or Engine64.
// Each engine reads only the settings of its own width.
type Option func(*config) error

// config holds the configuration for FNV engines.
type config struct {
	prime32 uint32
	prime64 uint64
}

func defaultConfig() *config {
	return &config{
		prime32: DefaultPrime32,
		prime64: DefaultPrime64,
	}
}

// validate checks that the configuration is valid.
func (c *config) validate() error {
	if c.prime32&1 == 0 {
		return fmt.Errorf("%w: prime32 (%#x)", ErrEvenPrime, c.prime32)
	}

	if c.prime64&1 == 0 {
		return fmt.Errorf("%w: prime64 (%#x)", ErrEvenPrime, c.prime64)
	}

	return nil
}

func newConfig(opts []Option) (*config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithPrime32 sets the multiplier of the 32-bit hash.
func WithPrime32(prime uint32) Option {
	return func(c *config) error {
		if prime&1 == 0 {
			return fmt.Errorf("%w: got %#x", ErrEvenPrime, prime)
		}

		c.prime32 = prime

		return nil
	}
}

// WithPrime64 sets the multiplier of the 64-bit hash.
func WithPrime64(prime uint64) Option {
	return func(c *config) error {
		if prime&1 == 0 {
			return fmt.Errorf("%w: got %#x", ErrEvenPrime, prime)
		}

		c.prime64 = prime

		return nil
	}
}
