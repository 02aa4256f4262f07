package consumer

import (
	"sync"

	"github.com/dhananjayvscot/camel/errors"
	"go.uber.org/atomic"
)

// Hooks run inside a lifecycle transition. A nil hook is skipped.
type Hooks struct {
	OnStart   func() error
	OnStop    func() error
	OnSuspend func() error
	OnResume  func() error
}

// Support is a lifecycle state machine consumers can embed. Transitions are
// serialised; Status is lock free so registries reading it never wait on a
// running hook.
type Support struct {
	id    string
	hooks Hooks

	mu        sync.Mutex
	status    *atomic.Int32
	destroyed *atomic.Bool
}

// NewSupport returns a stopped lifecycle for the consumer id.
func NewSupport(id string, hooks Hooks) *Support {
	return &Support{
		id:        id,
		hooks:     hooks,
		status:    atomic.NewInt32(int32(Stopped)),
		destroyed: atomic.NewBool(false),
	}
}

func (s *Support) Id() string {
	return s.id
}

func (s *Support) Status() (Status, error) {
	if s.destroyed.Load() {
		return Stopped, ErrDestroyed
	}
	return Status(s.status.Load()), nil
}

func (s *Support) String() string {
	return s.id
}

func (s *Support) set(st Status) {
	s.status.Store(int32(st))
}

func (s *Support) current() Status {
	return Status(s.status.Load())
}

// Start moves a stopped consumer to started. Starting a started consumer is
// a no-op and starting a suspended one resumes it.
func (s *Support) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed.Load() {
		return errors.Conflict("consumer", "consumer %s is destroyed", s.id)
	}

	switch s.current() {
	case Started:
		return nil
	case Suspended:
		return s.resume()
	}

	s.set(Starting)
	if err := run(s.hooks.OnStart); err != nil {
		s.set(Stopped)
		return err
	}
	s.set(Started)
	return nil
}

// Stop moves the consumer to stopped. The consumer ends stopped even when
// the hook fails; the hook error is returned.
func (s *Support) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current() == Stopped {
		return nil
	}

	s.set(Stopping)
	err := run(s.hooks.OnStop)
	s.set(Stopped)
	return err
}

// Suspend pauses a started consumer.
func (s *Support) Suspend() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch st := s.current(); st {
	case Suspended:
		return nil
	case Started:
	default:
		return errors.Conflict("consumer", "cannot suspend consumer %s while %s", s.id, st)
	}

	s.set(Suspending)
	if err := run(s.hooks.OnSuspend); err != nil {
		s.set(Started)
		return err
	}
	s.set(Suspended)
	return nil
}

// Resume restarts a suspended consumer.
func (s *Support) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch st := s.current(); st {
	case Started:
		return nil
	case Suspended:
		return s.resume()
	default:
		return errors.Conflict("consumer", "cannot resume consumer %s while %s", s.id, st)
	}
}

func (s *Support) resume() error {
	s.set(Starting)
	if err := run(s.hooks.OnResume); err != nil {
		s.set(Suspended)
		return err
	}
	s.set(Started)
	return nil
}

// Destroy tears the consumer down. Afterwards Status reports ErrDestroyed.
func (s *Support) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set(Stopped)
	s.destroyed.Store(true)
}

func run(fn func() error) error {
	if fn == nil {
		return nil
	}
	return fn()
}
