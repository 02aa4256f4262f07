// Package resolver looks up the named strategies a routing context is built
// from: factories, packages, components and languages. A runtime may supply
// a Bundle that is consulted before the statically registered defaults.
package resolver

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	ErrNotFound = errors.New("not found")

	DefaultResolver = NewStatic()
)

// Kind is the kind of strategy being resolved.
type Kind int

const (
	Factory Kind = iota
	Package
	Component
	Language
)

func (k Kind) String() string {
	switch k {
	case Factory:
		return "factory"
	case Package:
		return "package"
	case Component:
		return "component"
	case Language:
		return "language"
	default:
		return "unknown"
	}
}

type FactoryFinder interface {
	FindFactory(key string) (interface{}, error)
}

type PackageScanner interface {
	// Scan returns the sorted names of packages under prefix
	Scan(prefix string) []string
}

type ComponentResolver interface {
	ResolveComponent(name string) (interface{}, error)
}

type LanguageResolver interface {
	ResolveLanguage(name string) (interface{}, error)
}

// Resolver resolves every kind.
type Resolver interface {
	FactoryFinder
	PackageScanner
	ComponentResolver
	LanguageResolver
	String() string
}

// Register adds a strategy to the DefaultResolver.
func Register(kind Kind, name string, v interface{}) {
	DefaultResolver.Register(kind, name, v)
}

// Static resolves from strategies registered in process.
type Static struct {
	sync.RWMutex
	entries map[Kind]map[string]interface{}
}

func NewStatic() *Static {
	return &Static{entries: make(map[Kind]map[string]interface{})}
}

func (s *Static) Register(kind Kind, name string, v interface{}) {
	s.Lock()
	defer s.Unlock()

	if s.entries[kind] == nil {
		s.entries[kind] = make(map[string]interface{})
	}
	s.entries[kind][name] = v
}

func (s *Static) lookup(kind Kind, name string) (interface{}, error) {
	s.RLock()
	v, ok := s.entries[kind][name]
	s.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, kind, name)
	}
	return v, nil
}

func (s *Static) names(kind Kind) []string {
	s.RLock()
	defer s.RUnlock()

	names := make([]string, 0, len(s.entries[kind]))
	for n := range s.entries[kind] {
		names = append(names, n)
	}
	return names
}

func (s *Static) FindFactory(key string) (interface{}, error) {
	return s.lookup(Factory, key)
}

func (s *Static) Scan(prefix string) []string {
	return filter(s.names(Package), prefix)
}

func (s *Static) ResolveComponent(name string) (interface{}, error) {
	return s.lookup(Component, name)
}

func (s *Static) ResolveLanguage(name string) (interface{}, error) {
	return s.lookup(Language, name)
}

func (s *Static) String() string {
	return "static"
}

func filter(names []string, prefix string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] || !strings.HasPrefix(n, prefix) {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
