package httpapi

import "time"

// Options controls HTTP API runtime behavior.
//
// Keep it small: this service wraps a pure formatting pipeline, not a
// framework.
type Options struct {
	// FormatTimeout is the hard upper bound for a single request (body read +
	// parse + pipeline + render).
	FormatTimeout time.Duration

	// MaxBodyBytes caps the node-list document size.
	MaxBodyBytes int64
}

func (o Options) withDefaults() Options {
	if o.FormatTimeout <= 0 {
		o.FormatTimeout = 15 * time.Second
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = 8 * 1024 * 1024
	}
	return o
}
