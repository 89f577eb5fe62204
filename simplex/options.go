package simplex

import (
	"log/slog"

	"q.log/exactsimplex/model"
)

// Observer is called with the tableau before the first pivot (with a zero
// Step) and after every pivot. It must not modify the tableau.
type Observer func(step Step, t *model.Tableau)

type config struct {
	logger   *slog.Logger
	observer Observer
}

// Option configures Solve.
type Option func(*config)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers a callback for the initial tableau and every pivot.
func WithObserver(o Observer) Option {
	return func(c *config) { c.observer = o }
}

func newConfig(opts []Option) *config {
	c := &config{logger: slog.Default()}
	for _, o := range opts {
		o(c)
	}
	return c
}
