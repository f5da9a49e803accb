package murmur2

import (
	"errors"
	"fmt"
)

// ErrEvenModulo is returned when a multiplier is even.
var ErrEvenModulo = errors.New("modulo must be odd")

const (
	// DefaultModulo is the multiplier of MurMur2.
	DefaultModulo = 0x5BD1E995

	// DefaultModuloA is the multiplier of MurMur2A.
	DefaultModuloA = 0x5BD1E995

	// DefaultModulo64 is the multiplier of MurMur2-64.
	DefaultModulo64 = 0xC6A4A7935BD1E995

	// DefaultSeed is the default initial key of every variant.
	DefaultSeed = 0
)

// Option is a function that configures an Engine.
type Option func(*config) error

// config holds the configuration for an Engine.
type config struct {
	modulo   uint32
	moduloA  uint32
	modulo64 uint64
}

func defaultConfig() *config {
	return &config{
		modulo:   DefaultModulo,
		moduloA:  DefaultModuloA,
		modulo64: DefaultModulo64,
	}
}

// validate checks that the configuration is valid.
func (c *config) validate() error {
	if c.modulo&1 == 0 {
		return fmt.Errorf("%w: modulo (%#x)", ErrEvenModulo, c.modulo)
	}

	if c.moduloA&1 == 0 {
		return fmt.Errorf("%w: moduloA (%#x)", ErrEvenModulo, c.moduloA)
	}

	if c.modulo64&1 == 0 {
		return fmt.Errorf("%w: modulo64 (%#x)", ErrEvenModulo, c.modulo64)
	}

	return nil
}

// WithModulo sets the multiplier of MurMur2. MurMur2A keeps its own, set
// with WithModuloA.
func WithModulo(m uint32) Option {
	return func(c *config) error {
		if m&1 == 0 {
			return fmt.Errorf("%w: got %#x", ErrEvenModulo, m)
		}

		c.modulo = m

		return nil
	}
}

// WithModuloA sets the multiplier of MurMur2A.
func WithModuloA(m uint32) Option {
	return func(c *config) error {
		if m&1 == 0 {
			return fmt.Errorf("%w: got %#x", ErrEvenModulo, m)
		}

		c.moduloA = m

		return nil
	}
}

// WithModulo64 sets the multiplier of MurMur2-64.
func WithModulo64(m uint64) Option {
	return func(c *config) error {
		if m&1 == 0 {
			return fmt.Errorf("%w: got %#x", ErrEvenModulo, m)
		}

		c.modulo64 = m

		return nil
	}
}
