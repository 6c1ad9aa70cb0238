// Package salesbook loads a sales workbook into an in-memory catalog
// and answers queries over it.
package salesbook

import "go.uber.org/zap"

// Options configures a session.
type Options struct {
	// Logger receives load summaries and per-row rejection diagnostics.
	// If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns options with logging disabled.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
