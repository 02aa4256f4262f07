// Package consumer defines the capability a route consumer exposes to the
// registries that track it.
package consumer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDestroyed is returned by Status once a consumer has been torn down
	// and can no longer be queried.
	ErrDestroyed = errors.New("consumer destroyed")
)

// Consumer is an endpoint-side listener bound to a route.
type Consumer interface {
	// Id is the stable identity of the consumer
	Id() string
	// Status reports the current lifecycle state
	Status() (Status, error)
}

// Status is the lifecycle state of a consumer.
type Status int

const (
	Stopped Status = iota
	Starting
	Started
	Suspending
	Suspended
	Stopping
)

func (s Status) String() string {
	switch s {
	case Starting:
		return "starting"
	case Started:
		return "started"
	case Suspending:
		return "suspending"
	case Suspended:
		return "suspended"
	case Stopping:
		return "stopping"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ParseStatus converts a status name into a Status, ignoring case.
func ParseStatus(s string) (Status, error) {
	for _, st := range []Status{Starting, Started, Suspending, Suspended, Stopping, Stopped} {
		if strings.EqualFold(st.String(), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return Stopped, fmt.Errorf("unknown consumer status %q", s)
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	st, err := ParseStatus(str)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// StatusOf returns the status of c, treating a consumer that cannot be
// queried as stopped.
func StatusOf(c Consumer) Status {
	if c == nil {
		return Stopped
	}
	st, err := c.Status()
	if err != nil {
		return Stopped
	}
	return st
}

type static struct {
	id     string
	status Status
}

// NewStatic returns a consumer that always reports status. It backs
// services declared in configuration rather than started by a route.
func NewStatic(id string, status Status) Consumer {
	return &static{id: id, status: status}
}

func (s *static) Id() string {
	return s.id
}

func (s *static) Status() (Status, error) {
	return s.status, nil
}

func (s *static) String() string {
	return s.id
}
