package store

import (
	"time"

	"github.com/zeusync/gnr/internal/core/observability/log"
	"github.com/zeusync/gnr/internal/core/schema/registry"
)

type Option func(*options)

type options struct {
	logger          log.Log
	codec           *registry.Codec
	echo            bool
	cacheTTL        time.Duration
	cleanupInterval time.Duration
}

func defaultOptions() options {
	return options{
		logger:          log.NewNop(),
		cacheTTL:        5 * time.Minute,
		cleanupInterval: 10 * time.Minute,
	}
}

func WithLogger(logger log.Log) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCodec sets the codec used to encode payloads. The default is
// registry.NewDefault with the store's logger.
func WithCodec(codec *registry.Codec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

// WithEcho logs every statement at debug level.
func WithEcho(echo bool) Option {
	return func(o *options) {
		o.echo = echo
	}
}

// WithCache sets the read-through cache lifetime. A ttl of zero disables it.
func WithCache(ttl, cleanupInterval time.Duration) Option {
	return func(o *options) {
		o.cacheTTL = ttl
		o.cleanupInterval = cleanupInterval
	}
}
