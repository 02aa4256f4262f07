// Package noop is a resolver that resolves nothing
package noop

import (
	"fmt"

	"github.com/dhananjayvscot/camel/resolver"
)

type Resolver struct{}

func NewResolver() resolver.Resolver {
	return new(Resolver)
}

func (r *Resolver) FindFactory(key string) (interface{}, error) {
	return nil, fmt.Errorf("%w: %s %s", resolver.ErrNotFound, resolver.Factory, key)
}

func (r *Resolver) Scan(prefix string) []string {
	return []string{}
}

func (r *Resolver) ResolveComponent(name string) (interface{}, error) {
	return nil, fmt.Errorf("%w: %s %s", resolver.ErrNotFound, resolver.Component, name)
}

func (r *Resolver) ResolveLanguage(name string) (interface{}, error) {
	return nil, fmt.Errorf("%w: %s %s", resolver.ErrNotFound, resolver.Language, name)
}

func (r *Resolver) String() string {
	return "noop"
}
