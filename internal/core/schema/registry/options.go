package registry

import "github.com/zeusync/gnr/internal/core/observability/log"

type Option func(*options)

type options struct {
	logger         log.Log
	strictVersions bool
}

func defaultOptions() options {
	return options{logger: log.NewNop()}
}

// WithLogger sets where compatibility notices go. The default discards them.
func WithLogger(logger log.Log) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStrictVersions disables the fallback path: a version that is neither
// current nor registered as legacy fails with *UnknownVersionError.
func WithStrictVersions() Option {
	return func(o *options) {
		o.strictVersions = true
	}
}
