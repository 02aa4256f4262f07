// Package consul mirrors the REST service registry into a consul agent
package consul

import (
	"context"
	"net"
	"net/url"
	"strconv"
	"sync"

	consul "github.com/hashicorp/consul/api"
	"github.com/pkg/errors"

	"github.com/dhananjayvscot/camel/logger"
	"github.com/dhananjayvscot/camel/rest"
)

// Exporter registers every REST service with the consul agent and
// deregisters it once the service leaves the registry.
type Exporter struct {
	opts   Options
	client *consul.Client

	sync.Mutex
	// consul ids currently registered
	exported map[string]bool
}

func NewExporter(opts ...Option) (*Exporter, error) {
	options := newOptions(opts...)

	client, err := consul.NewClient(options.Config)
	if err != nil {
		return nil, errors.Wrap(err, "consul client")
	}

	return &Exporter{
		opts:     options,
		client:   client,
		exported: make(map[string]bool),
	}, nil
}

// Run exports the current services then follows registry events until ctx
// is done or the registry stops. Exported services are deregistered on return.
func (e *Exporter) Run(ctx context.Context) error {
	w, err := e.opts.Registry.Watch()
	if err != nil {
		return errors.Wrap(err, "watch registry")
	}
	defer e.deregisterAll()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			w.Stop()
		case <-done:
		}
	}()

	// events raced with the snapshot are replayed, registration is idempotent
	for _, s := range e.opts.Registry.ListAllRestServices() {
		e.register(s)
	}

	for {
		res, err := w.Next()
		if err == rest.ErrWatcherStopped {
			return nil
		}
		if err != nil {
			return err
		}

		switch res.Action {
		case rest.Create.String(), rest.Update.String():
			e.register(res.Service)
		case rest.Delete.String():
			e.deregister(e.serviceId(res.Service))
		}
	}
}

// Exported returns the consul ids currently registered.
func (e *Exporter) Exported() []string {
	e.Lock()
	defer e.Unlock()

	ids := make([]string, 0, len(e.exported))
	for id := range e.exported {
		ids = append(ids, id)
	}
	return ids
}

func (e *Exporter) serviceId(s *rest.Service) string {
	return e.opts.Prefix + s.Consumer.Id()
}

func (e *Exporter) register(s *rest.Service) {
	reg, err := e.registration(s)
	if err != nil {
		e.opts.Logger.Logf(logger.WarnLevel, "Skipping consul export of %s: %v", s.Url, err)
		return
	}

	if err := e.client.Agent().ServiceRegister(reg); err != nil {
		e.opts.Logger.Logf(logger.ErrorLevel, "Consul register %s failed: %v", reg.ID, err)
		return
	}

	e.Lock()
	e.exported[reg.ID] = true
	e.Unlock()

	e.opts.Logger.Logf(logger.DebugLevel, "Exported rest service %s to consul as %s", s.Url, reg.ID)
}

func (e *Exporter) deregister(id string) {
	e.Lock()
	ok := e.exported[id]
	delete(e.exported, id)
	e.Unlock()

	if !ok {
		return
	}

	if err := e.client.Agent().ServiceDeregister(id); err != nil {
		e.opts.Logger.Logf(logger.ErrorLevel, "Consul deregister %s failed: %v", id, err)
	}
}

func (e *Exporter) deregisterAll() {
	for _, id := range e.Exported() {
		e.deregister(id)
	}
}

func (e *Exporter) registration(s *rest.Service) (*consul.AgentServiceRegistration, error) {
	u, err := url.Parse(s.Url)
	if err != nil {
		return nil, err
	}

	host, port := u.Hostname(), u.Port()
	if port == "" {
		switch u.Scheme {
		case "https":
			port = "443"
		default:
			port = "80"
		}
	}

	p, err := strconv.Atoi(port)
	if err != nil {
		return nil, errors.Wrapf(err, "port of %s", net.JoinHostPort(host, port))
	}

	meta := map[string]string{
		"url":   s.Url,
		"state": s.State.String(),
	}
	if s.Consumes != "" {
		meta["consumes"] = s.Consumes
	}
	if s.Produces != "" {
		meta["produces"] = s.Produces
	}

	tags := []string{s.Method}
	if s.UriTemplate != "" {
		tags = append(tags, s.UriTemplate)
	}

	return &consul.AgentServiceRegistration{
		ID:      e.serviceId(s),
		Name:    e.opts.Name,
		Tags:    tags,
		Address: host,
		Port:    p,
		Meta:    meta,
	}, nil
}

func (e *Exporter) String() string {
	return "consul"
}
