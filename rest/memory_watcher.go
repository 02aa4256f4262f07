package rest

import (
	"strings"
	"sync"
)

type memWatcher struct {
	id string
	wo WatchOptions

	mu     sync.Mutex
	queue  []*Result
	notify chan struct{}
	exit   chan bool
}

func (m *memWatcher) push(r *Result) {
	m.mu.Lock()
	m.queue = append(m.queue, r)
	m.mu.Unlock()

	select {
	case m.notify <- struct{}{}:
	default:
	}
}

func (m *memWatcher) pop() (*Result, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.queue) == 0 {
		return nil, false
	}
	r := m.queue[0]
	m.queue[0] = nil
	m.queue = m.queue[1:]
	return r, true
}

func (m *memWatcher) Next() (*Result, error) {
	for {
		select {
		case <-m.exit:
			return nil, ErrWatcherStopped
		default:
		}

		r, ok := m.pop()
		if !ok {
			select {
			case <-m.notify:
			case <-m.exit:
				return nil, ErrWatcherStopped
			}
			continue
		}

		if len(m.wo.Method) > 0 && !strings.EqualFold(m.wo.Method, r.Service.Method) {
			continue
		}
		return r, nil
	}
}

func (m *memWatcher) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.exit:
		return
	default:
		close(m.exit)
	}
}
