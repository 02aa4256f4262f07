package rest

import (
	"context"

	"github.com/dhananjayvscot/camel/logger"
)

type Options struct {
	// Strict rejects mutations before Start and after Stop
	Strict bool
	Logger logger.Logger

	// Other options for implementations of the interface
	// can be stored in a context
	Context context.Context
}

type WatchOptions struct {
	// Specify an http method to watch
	// If blank, the watch is for all services
	Method string
	// Other options for implementations of the interface
	// can be stored in a context
	Context context.Context
}

// Strict makes Add and Remove fail with an illegal state error while the
// registry is not started. By default the registry allocates its store on
// first use instead.
func Strict(b bool) Option {
	return func(o *Options) {
		o.Strict = b
	}
}

// Logger sets the logger used for registry events.
func Logger(l logger.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

type servicesKey struct{}

// Services preloads REST services each time the registry starts.
func Services(defs ...Definition) Option {
	return func(o *Options) {
		if o.Context == nil {
			o.Context = context.Background()
		}
		prev, _ := o.Context.Value(servicesKey{}).([]Definition)
		all := append(append([]Definition{}, prev...), defs...)
		o.Context = context.WithValue(o.Context, servicesKey{}, all)
	}
}

func getServices(ctx context.Context) []Definition {
	if ctx == nil {
		return nil
	}
	defs, _ := ctx.Value(servicesKey{}).([]Definition)
	return defs
}

// WatchMethod only delivers events for services with the given http method.
func WatchMethod(method string) WatchOption {
	return func(o *WatchOptions) {
		o.Method = method
	}
}
