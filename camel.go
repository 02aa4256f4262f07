// Package camel is the routing context. It owns the REST service registry,
// the type converter and the resolvers routes are assembled from.
package camel

import (
	"sync"

	"github.com/dhananjayvscot/camel/converter"
	"github.com/dhananjayvscot/camel/logger"
	"github.com/dhananjayvscot/camel/resolver"
	"github.com/dhananjayvscot/camel/rest"
)

// Context is a routing context
type Context interface {
	Name() string
	Options() Options
	RestRegistry() rest.Registry
	TypeConverter() *converter.TypeConverter
	FactoryFinder() resolver.FactoryFinder
	PackageScanner() resolver.PackageScanner
	ComponentResolver() resolver.ComponentResolver
	LanguageResolver() resolver.LanguageResolver
	Start() error
	Stop() error
	String() string
}

// NewContext creates and returns a new routing context based on the options
func NewContext(opts ...Option) Context {
	return &camelContext{opts: newOptions(opts...)}
}

type camelContext struct {
	opts Options

	sync.Mutex
	started bool
}

func (c *camelContext) Name() string {
	return c.opts.Name
}

func (c *camelContext) Options() Options {
	return c.opts
}

func (c *camelContext) RestRegistry() rest.Registry {
	return c.opts.RestRegistry
}

func (c *camelContext) TypeConverter() *converter.TypeConverter {
	return c.opts.TypeConverter
}

func (c *camelContext) FactoryFinder() resolver.FactoryFinder {
	return c.opts.FactoryFinder
}

func (c *camelContext) PackageScanner() resolver.PackageScanner {
	return c.opts.PackageScanner
}

func (c *camelContext) ComponentResolver() resolver.ComponentResolver {
	return c.opts.ComponentResolver
}

func (c *camelContext) LanguageResolver() resolver.LanguageResolver {
	return c.opts.LanguageResolver
}

func (c *camelContext) Start() error {
	c.Lock()
	defer c.Unlock()

	if c.started {
		return nil
	}

	for _, fn := range c.opts.BeforeStart {
		if err := fn(); err != nil {
			return err
		}
	}

	if err := c.opts.TypeConverter.Load(); err != nil {
		return err
	}

	if err := c.opts.RestRegistry.Start(); err != nil {
		return err
	}

	c.started = true
	c.opts.Logger.Logf(logger.InfoLevel, "Context %s started", c.opts.Name)
	return nil
}

func (c *camelContext) Stop() error {
	c.Lock()
	defer c.Unlock()

	if !c.started {
		return nil
	}

	err := c.opts.RestRegistry.Stop()
	c.started = false

	for _, fn := range c.opts.AfterStop {
		if ferr := fn(); ferr != nil && err == nil {
			err = ferr
		}
	}

	c.opts.Logger.Logf(logger.InfoLevel, "Context %s stopped", c.opts.Name)
	return err
}

func (c *camelContext) String() string {
	return "camel"
}
