package layout

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-panel/internal/debug"
)

// Option is a functional option for a layout pass.
type Option func(*calculator)

// WithLogger reports clamped input (spans past the last column, negative
// preferred sizes, percentages over 100) to l at debug level.
// Defaults to the process debug logger, which is a no-op unless
// PANEL_DEBUG is set.
func WithLogger(l *zap.Logger) Option {
	return func(c *calculator) {
		if l != nil {
			c.log = l
		}
	}
}

// calculator carries per-pass settings. It holds no state between passes.
type calculator struct {
	log *zap.Logger
}

func newCalculator(opts []Option) *calculator {
	c := &calculator{log: debug.Logger()}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Named("layout")
	return c
}
