package consul

import (
	consul "github.com/hashicorp/consul/api"

	"github.com/dhananjayvscot/camel/logger"
	"github.com/dhananjayvscot/camel/rest"
)

type Options struct {
	Registry rest.Registry
	// Name consul services are registered under
	Name string
	// Prefix of the consul service id, followed by the consumer id
	Prefix string
	Config *consul.Config
	Logger logger.Logger
}

type Option func(*Options)

func newOptions(opts ...Option) Options {
	options := Options{
		Registry: rest.DefaultRegistry,
		Name:     "camel",
		Prefix:   "camel-rest-",
		Config:   consul.DefaultConfig(),
		Logger:   logger.DefaultLogger,
	}
	for _, o := range opts {
		o(&options)
	}
	return options
}

// Registry is the REST service registry being exported
func Registry(r rest.Registry) Option {
	return func(o *Options) {
		o.Registry = r
	}
}

func Name(n string) Option {
	return func(o *Options) {
		o.Name = n
	}
}

func Prefix(p string) Option {
	return func(o *Options) {
		o.Prefix = p
	}
}

// Address of the consul agent
func Address(addr string) Option {
	return func(o *Options) {
		o.Config.Address = addr
	}
}

// Config replaces the consul client config
func Config(c *consul.Config) Option {
	return func(o *Options) {
		if c != nil {
			o.Config = c
		}
	}
}

func Logger(l logger.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
