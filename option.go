package delpi

import (
	"math/big"

	"github.com/costela/delpi/backend"
)

// Option customises a Model at construction time, applied in order by
// NewModel.
type Option func(*Model) error

// WithLogger sets the Logger a Model reports diagnostics to.
func WithLogger(logger Logger) Option {
	return func(m *Model) error {
		m.logger = logger
		return nil
	}
}

// WithBackend overrides the default backend.Exact engine, e.g. to inject a
// test double.
func WithBackend(b backend.Backend) Option {
	return func(m *Model) error {
		m.backend = b
		return nil
	}
}

// WithConfig replaces the model's whole Config with cfg, zero-valued fields
// included.
func WithConfig(cfg Config) Option {
	return func(m *Model) error {
		m.config = cfg
		return nil
	}
}

// WithRationalTolerance sets the model's default delta-optimality
// precision (Config.Precision), used by Solve/SolveWithContext whenever
// they are called with a nil precision. It is equivalent to passing
// tolerance to Config.SetOption(":precision", ...) up front.
func WithRationalTolerance(tolerance *big.Rat) Option {
	return func(m *Model) error {
		m.config.Precision = tolerance
		return nil
	}
}
