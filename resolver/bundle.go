package resolver

import (
	"fmt"
	"sync"

	"github.com/dhananjayvscot/camel/converter"
)

// Bundle is the optional runtime context a routing context may be deployed
// into. It owns strategies that take precedence over the defaults.
type Bundle interface {
	Name() string
	Lookup(kind Kind, name string) (interface{}, bool)
	Names(kind Kind) []string
}

type bundled struct {
	bundle   Bundle
	fallback Resolver
}

// Bundled returns a Resolver that asks bundle first and fallback second.
func Bundled(bundle Bundle, fallback Resolver) Resolver {
	return &bundled{bundle: bundle, fallback: fallback}
}

func (b *bundled) lookup(kind Kind, name string, fn func(string) (interface{}, error)) (interface{}, error) {
	if v, ok := b.bundle.Lookup(kind, name); ok {
		return v, nil
	}
	if b.fallback == nil {
		return nil, fmt.Errorf("%w: %s %s in bundle %s", ErrNotFound, kind, name, b.bundle.Name())
	}
	return fn(name)
}

func (b *bundled) FindFactory(key string) (interface{}, error) {
	return b.lookup(Factory, key, func(n string) (interface{}, error) { return b.fallback.FindFactory(n) })
}

func (b *bundled) Scan(prefix string) []string {
	names := b.bundle.Names(Package)
	if b.fallback != nil {
		names = append(names, b.fallback.Scan(prefix)...)
	}
	return filter(names, prefix)
}

func (b *bundled) ResolveComponent(name string) (interface{}, error) {
	return b.lookup(Component, name, func(n string) (interface{}, error) { return b.fallback.ResolveComponent(n) })
}

func (b *bundled) ResolveLanguage(name string) (interface{}, error) {
	return b.lookup(Language, name, func(n string) (interface{}, error) { return b.fallback.ResolveLanguage(n) })
}

func (b *bundled) String() string {
	return "bundle:" + b.bundle.Name()
}

// MapBundle is an in-memory Bundle. It also publishes type conversions so
// a bundle aware type converter can load them.
type MapBundle struct {
	name string

	sync.RWMutex
	entries    map[Kind]map[string]interface{}
	converters []converter.Definition
}

func NewBundle(name string) *MapBundle {
	return &MapBundle{
		name:    name,
		entries: make(map[Kind]map[string]interface{}),
	}
}

func (m *MapBundle) Name() string {
	return m.name
}

func (m *MapBundle) Register(kind Kind, name string, v interface{}) {
	m.Lock()
	defer m.Unlock()

	if m.entries[kind] == nil {
		m.entries[kind] = make(map[string]interface{})
	}
	m.entries[kind][name] = v
}

func (m *MapBundle) Lookup(kind Kind, name string) (interface{}, bool) {
	m.RLock()
	defer m.RUnlock()
	v, ok := m.entries[kind][name]
	return v, ok
}

func (m *MapBundle) Names(kind Kind) []string {
	m.RLock()
	defer m.RUnlock()

	names := make([]string, 0, len(m.entries[kind]))
	for n := range m.entries[kind] {
		names = append(names, n)
	}
	return names
}

// AddConverter publishes a conversion.
func (m *MapBundle) AddConverter(d converter.Definition) {
	m.Lock()
	m.converters = append(m.converters, d)
	m.Unlock()
}

func (m *MapBundle) Converters() []converter.Definition {
	m.RLock()
	defer m.RUnlock()
	return append([]converter.Definition{}, m.converters...)
}
