package handler

import (
	"github.com/dhananjayvscot/camel/logger"
	"github.com/dhananjayvscot/camel/rest"
)

type Options struct {
	Registry rest.Registry
	// Path the service listing is served on, the count lives below it
	Path   string
	Logger logger.Logger
}

type Option func(o *Options)

// NewOptions fills in defaults
func NewOptions(opts ...Option) Options {
	options := Options{
		Registry: rest.DefaultRegistry,
		Path:     DefaultPath,
		Logger:   logger.DefaultLogger,
	}
	for _, o := range opts {
		o(&options)
	}
	return options
}

// WithRegistry sets the registry being listed
func WithRegistry(r rest.Registry) Option {
	return func(o *Options) {
		o.Registry = r
	}
}

// WithPath sets the path the listing is served on
func WithPath(p string) Option {
	return func(o *Options) {
		o.Path = p
	}
}

func WithLogger(l logger.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
