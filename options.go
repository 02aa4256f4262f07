package camel

import (
	"context"

	"github.com/dhananjayvscot/camel/converter"
	"github.com/dhananjayvscot/camel/logger"
	"github.com/dhananjayvscot/camel/resolver"
	"github.com/dhananjayvscot/camel/rest"
)

type Option func(*Options)

type Options struct {
	Name string

	// RuntimeContext is the optional bundle the context is deployed into.
	// When set, resolvers left unset consult it before the defaults.
	RuntimeContext resolver.Bundle

	RestRegistry      rest.Registry
	TypeConverter     *converter.TypeConverter
	FactoryFinder     resolver.FactoryFinder
	PackageScanner    resolver.PackageScanner
	ComponentResolver resolver.ComponentResolver
	LanguageResolver  resolver.LanguageResolver

	Logger logger.Logger

	// Before and After funcs
	BeforeStart []func() error
	AfterStop   []func() error

	// Other options for implementations of the interface
	// can be stored in a context
	Context context.Context
}

func newOptions(opts ...Option) Options {
	opt := Options{
		Name:    "camel",
		Logger:  logger.DefaultLogger,
		Context: context.Background(),
	}

	for _, o := range opts {
		o(&opt)
	}

	if opt.RestRegistry == nil {
		opt.RestRegistry = rest.NewRegistry(rest.Logger(opt.Logger))
	}

	if opt.TypeConverter == nil {
		opt.TypeConverter = converter.NewTypeConverter(converter.DefaultLoader())
	}

	var def resolver.Resolver = resolver.DefaultResolver

	if b := opt.RuntimeContext; b != nil {
		opt.Logger.Logf(logger.DebugLevel, "Runtime context %s is present, using bundle resolvers", b.Name())
		def = resolver.Bundled(b, resolver.DefaultResolver)

		src, _ := b.(converter.Source)
		opt.TypeConverter.ReplaceLoader("default", converter.BundleLoader(src))
		opt.Logger.Logf(logger.DebugLevel, "Added the bundle type converter loader")
	}

	if opt.FactoryFinder == nil {
		opt.FactoryFinder = def
	}
	if opt.PackageScanner == nil {
		opt.PackageScanner = def
	}
	if opt.ComponentResolver == nil {
		opt.ComponentResolver = def
	}
	if opt.LanguageResolver == nil {
		opt.LanguageResolver = def
	}

	return opt
}

// Name of the context
func Name(n string) Option {
	return func(o *Options) {
		o.Name = n
	}
}

// RuntimeContext deploys the context into bundle b
func RuntimeContext(b resolver.Bundle) Option {
	return func(o *Options) {
		o.RuntimeContext = b
	}
}

func RestRegistry(r rest.Registry) Option {
	return func(o *Options) {
		o.RestRegistry = r
	}
}

func TypeConverter(t *converter.TypeConverter) Option {
	return func(o *Options) {
		o.TypeConverter = t
	}
}

func FactoryFinder(f resolver.FactoryFinder) Option {
	return func(o *Options) {
		o.FactoryFinder = f
	}
}

func PackageScanner(p resolver.PackageScanner) Option {
	return func(o *Options) {
		o.PackageScanner = p
	}
}

func ComponentResolver(c resolver.ComponentResolver) Option {
	return func(o *Options) {
		o.ComponentResolver = c
	}
}

func LanguageResolver(l resolver.LanguageResolver) Option {
	return func(o *Options) {
		o.LanguageResolver = l
	}
}

func Logger(l logger.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// BeforeStart run funcs before the context starts
func BeforeStart(fn func() error) Option {
	return func(o *Options) {
		o.BeforeStart = append(o.BeforeStart, fn)
	}
}

// AfterStop run funcs after the context stops
func AfterStop(fn func() error) Option {
	return func(o *Options) {
		o.AfterStop = append(o.AfterStop, fn)
	}
}
