package murmur3

import (
	"errors"
	"fmt"
)

// ErrEvenConstant is returned when a multiplicative constant is even.
var ErrEvenConstant = errors.New("multiplicative constant must be odd")

const (
	// DefaultC1 multiplies every word before the rotation.
	DefaultC1 = 0xCC9E2D51

	// DefaultC2 multiplies every word after the rotation.
	DefaultC2 = 0x1B873593

	// DefaultC3 is added to the state after every word.
	DefaultC3 = 0xE6546B64

	// DefaultF1 is the first avalanche multiplier.
	DefaultF1 = 0x85EBCA6B

	// DefaultF2 is the second avalanche multiplier.
	DefaultF2 = 0xC2B2AE35

	// DefaultSeed is the default initial key.
	DefaultSeed = 0
)

// Option is a function that configures an Engine.
type Option func(*config) error

// config holds the mixing constants of an Engine.
type config struct {
	c1, c2, c3 uint32
	f1, f2     uint32
}

func defaultConfig() *config {
	return &config{
		c1: DefaultC1,
		c2: DefaultC2,
		c3: DefaultC3,
		f1: DefaultF1,
		f2: DefaultF2,
	}
}

// validate checks that the configuration is valid. C3 is additive and may
// take any value.
func (c *config) validate() error {
	for _, k := range []struct {
		name  string
		value uint32
	}{{"c1", c.c1}, {"c2", c.c2}, {"f1", c.f1}, {"f2", c.f2}} {
		if k.value&1 == 0 {
			return fmt.Errorf("%w: %s (%#08x)", ErrEvenConstant, k.name, k.value)
		}
	}

	return nil
}

// WithMixConstants sets the per-word constants.
func WithMixConstants(c1, c2, c3 uint32) Option {
	return func(c *config) error {
		c.c1, c.c2, c.c3 = c1, c2, c3

		return nil
	}
}

// WithAvalancheConstants sets the finalization multipliers.
func WithAvalancheConstants(f1, f2 uint32) Option {
	return func(c *config) error {
		c.f1, c.f2 = f1, f2

		return nil
	}
}
