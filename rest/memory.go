package rest

import (
	"context"
	"sync"

	"github.com/dhananjayvscot/camel/consumer"
	"github.com/dhananjayvscot/camel/errors"
	"github.com/dhananjayvscot/camel/logger"
	"github.com/google/uuid"
)

type memRegistry struct {
	options Options

	sync.RWMutex
	started bool
	// set by Stop, cleared by Start
	stopped bool
	records map[string]*record
	// consumer ids in insertion order
	order    []string
	watchers map[string]*memWatcher
}

// NewRegistry returns an in-memory REST service registry.
func NewRegistry(opts ...Option) Registry {
	options := Options{
		Logger:  logger.DefaultLogger,
		Context: context.Background(),
	}

	for _, o := range opts {
		o(&options)
	}

	return &memRegistry{
		options:  options,
		watchers: make(map[string]*memWatcher),
	}
}

func (m *memRegistry) Init(opts ...Option) error {
	m.Lock()
	defer m.Unlock()

	for _, o := range opts {
		o(&m.options)
	}
	return nil
}

func (m *memRegistry) Options() Options {
	m.RLock()
	defer m.RUnlock()
	return m.options
}

func (m *memRegistry) Start() error {
	m.Lock()
	defer m.Unlock()

	if m.started {
		return nil
	}

	if m.records == nil {
		m.records = make(map[string]*record)
	}

	defs := getServices(m.options.Context)
	for _, d := range defs {
		if err := validate("Start", d.Consumer, d.Url, d.Method); err != nil {
			return err
		}
	}

	for _, d := range defs {
		// services added before start win over the preloaded catalogue
		if _, ok := m.records[d.Consumer.Id()]; ok {
			continue
		}
		r := newRecord(d)
		m.put(r)
		m.sendEvent(&Result{Action: Create.String(), Service: r.toService()})
	}

	m.started = true
	m.stopped = false
	m.options.Logger.Logf(logger.InfoLevel, "Rest registry started with %d services", len(m.records))
	return nil
}

func (m *memRegistry) Stop() error {
	m.Lock()
	defer m.Unlock()

	n := len(m.records)
	m.started = false
	m.stopped = true
	m.records = nil
	m.order = nil

	for id, w := range m.watchers {
		w.Stop()
		delete(m.watchers, id)
	}

	m.options.Logger.Logf(logger.InfoLevel, "Rest registry stopped, released %d services", n)
	return nil
}

func (m *memRegistry) AddRestService(c consumer.Consumer, url, method, uriTemplate, consumes, produces string) error {
	if err := validate("AddRestService", c, url, method); err != nil {
		return err
	}

	r := newRecord(Definition{
		Consumer:    c,
		Url:         url,
		Method:      method,
		UriTemplate: uriTemplate,
		Consumes:    consumes,
		Produces:    produces,
	})

	m.Lock()
	defer m.Unlock()

	if err := m.checkStarted("AddRestService"); err != nil {
		return err
	}

	if m.stopped {
		m.options.Logger.Logf(logger.DebugLevel, "Ignoring rest service %s %s for consumer %s, registry is stopped", method, url, r.id)
		return nil
	}

	if m.records == nil {
		m.records = make(map[string]*record)
	}

	action := Create
	if _, ok := m.records[r.id]; ok {
		action = Update
	}
	m.put(r)

	m.options.Logger.Logf(logger.DebugLevel, "Rest service %s %s added for consumer %s", method, url, r.id)
	m.sendEvent(&Result{Action: action.String(), Service: r.toService()})
	return nil
}

func (m *memRegistry) RemoveRestService(c consumer.Consumer) error {
	if isNil(c) {
		return errors.BadRequest(errorId, "missing consumer in RemoveRestService")
	}

	m.Lock()
	defer m.Unlock()

	if err := m.checkStarted("RemoveRestService"); err != nil {
		return err
	}

	id := c.Id()
	r, ok := m.records[id]
	if !ok {
		return nil
	}

	delete(m.records, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	m.options.Logger.Logf(logger.DebugLevel, "Rest service %s %s removed for consumer %s", r.method, r.url, id)
	m.sendEvent(&Result{Action: Delete.String(), Service: r.toService()})
	return nil
}

func (m *memRegistry) ListAllRestServices() []*Service {
	m.RLock()
	defer m.RUnlock()

	services := make([]*Service, 0, len(m.order))
	for _, id := range m.order {
		services = append(services, m.records[id].toService())
	}
	return services
}

func (m *memRegistry) Size() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.records)
}

func (m *memRegistry) Watch(opts ...WatchOption) (Watcher, error) {
	var wo WatchOptions
	for _, o := range opts {
		o(&wo)
	}

	w := &memWatcher{
		id:     uuid.New().String(),
		wo:     wo,
		notify: make(chan struct{}, 1),
		exit:   make(chan bool),
	}

	m.Lock()
	m.watchers[w.id] = w
	m.Unlock()
	return w, nil
}

func (m *memRegistry) String() string {
	return "memory"
}

// put inserts or replaces r keeping the original insertion position.
// Callers hold the write lock.
func (m *memRegistry) put(r *record) {
	if _, ok := m.records[r.id]; !ok {
		m.order = append(m.order, r.id)
	}
	m.records[r.id] = r
}

func (m *memRegistry) checkStarted(op string) error {
	if m.options.Strict && !m.started {
		return errors.Conflict(errorId, "%s called on a registry that is not started", op)
	}
	return nil
}

// sendEvent queues r on every live watcher. Queues are unbounded so this
// never blocks while the write lock is held, and events keep commit order.
func (m *memRegistry) sendEvent(r *Result) {
	for id, w := range m.watchers {
		select {
		case <-w.exit:
			delete(m.watchers, id)
		default:
			w.push(r)
		}
	}
}
