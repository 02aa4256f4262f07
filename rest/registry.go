// Package rest is a registry of the REST services exposed by the routing
// context. Consumers add themselves when they start and remove themselves
// when they stop; management tooling lists them at any time.
package rest

import (
	"errors"

	"github.com/dhananjayvscot/camel/consumer"
	merrors "github.com/dhananjayvscot/camel/errors"
)

// The registry works with REST services. Each service is keyed by the id of
// the consumer serving it.
type Registry interface {
	Init(...Option) error
	Options() Options
	Start() error
	Stop() error
	AddRestService(c consumer.Consumer, url, method, uriTemplate, consumes, produces string) error
	RemoveRestService(c consumer.Consumer) error
	ListAllRestServices() []*Service
	Size() int
	Watch(...WatchOption) (Watcher, error)
	String() string
}

type Option func(*Options)

type WatchOption func(*WatchOptions)

var (
	DefaultRegistry = NewRegistry()

	// ErrWatcherStopped is returned by Next once the watcher is stopped.
	ErrWatcherStopped = errors.New("watcher stopped")
)

const errorId = "rest.registry"

// AddRestService adds a REST service to the default registry.
func AddRestService(c consumer.Consumer, url, method, uriTemplate, consumes, produces string) error {
	return DefaultRegistry.AddRestService(c, url, method, uriTemplate, consumes, produces)
}

// RemoveRestService removes a REST service from the default registry.
func RemoveRestService(c consumer.Consumer) error {
	return DefaultRegistry.RemoveRestService(c)
}

// ListAllRestServices lists the REST services of the default registry.
func ListAllRestServices() []*Service {
	return DefaultRegistry.ListAllRestServices()
}

// Size returns the number of REST services in the default registry.
func Size() int {
	return DefaultRegistry.Size()
}

// Watch returns a watcher on the default registry.
func Watch(opts ...WatchOption) (Watcher, error) {
	return DefaultRegistry.Watch(opts...)
}

// IsValidation reports whether err was caused by a malformed registration.
func IsValidation(err error) bool {
	verr, ok := err.(*merrors.Error)
	return ok && verr.Code == 400
}

// IsIllegalState reports whether err was caused by calling the registry
// outside of its lifecycle.
func IsIllegalState(err error) bool {
	verr, ok := err.(*merrors.Error)
	return ok && verr.Code == 409
}

func String() string {
	return DefaultRegistry.String()
}
