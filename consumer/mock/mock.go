// Package mock provides a consumer whose status is set by the test
package mock

import (
	"sync"

	"github.com/dhananjayvscot/camel/consumer"
)

type Consumer struct {
	id string

	sync.RWMutex
	status    consumer.Status
	destroyed bool
	calls     int
}

// NewConsumer returns a started mock consumer.
func NewConsumer(id string) *Consumer {
	return &Consumer{id: id, status: consumer.Started}
}

func (c *Consumer) Id() string {
	return c.id
}

func (c *Consumer) Status() (consumer.Status, error) {
	c.Lock()
	defer c.Unlock()

	c.calls++
	if c.destroyed {
		return consumer.Stopped, consumer.ErrDestroyed
	}
	return c.status, nil
}

// SetStatus changes the reported status.
func (c *Consumer) SetStatus(s consumer.Status) {
	c.Lock()
	c.status = s
	c.Unlock()
}

// Destroy makes further Status calls fail.
func (c *Consumer) Destroy() {
	c.Lock()
	c.destroyed = true
	c.Unlock()
}

// Calls returns how many times Status was queried.
func (c *Consumer) Calls() int {
	c.RLock()
	defer c.RUnlock()
	return c.calls
}

func (c *Consumer) String() string {
	return c.id
}
