package consumer

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/dhananjayvscot/camel/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusNames(t *testing.T) {
	tests := []struct {
		status Status
		name   string
	}{
		{Starting, "starting"},
		{Started, "started"},
		{Suspending, "suspending"},
		{Suspended, "suspended"},
		{Stopping, "stopping"},
		{Stopped, "stopped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.status.String())

			st, err := ParseStatus(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.status, st)

			b, err := json.Marshal(tt.status)
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("%q", tt.name), string(b))

			var back Status
			require.NoError(t, json.Unmarshal(b, &back))
			assert.Equal(t, tt.status, back)
		})
	}

	st, err := ParseStatus(" Started")
	require.NoError(t, err)
	assert.Equal(t, Started, st)

	st, err = ParseStatus("SUSPENDED")
	require.NoError(t, err)
	assert.Equal(t, Suspended, st)

	_, err = ParseStatus("running")
	assert.Error(t, err)
	assert.Equal(t, "unknown", Status(42).String())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, Stopped, StatusOf(nil))
	assert.Equal(t, Suspended, StatusOf(NewStatic("a", Suspended)))

	s := NewSupport("b", Hooks{})
	require.NoError(t, s.Start())
	assert.Equal(t, Started, StatusOf(s))

	s.Destroy()
	_, err := s.Status()
	assert.Equal(t, ErrDestroyed, err)
	assert.Equal(t, Stopped, StatusOf(s))
}

func TestSupportLifecycle(t *testing.T) {
	var seen []Status

	var s *Support
	record := func() error {
		st, _ := s.Status()
		seen = append(seen, st)
		return nil
	}
	s = NewSupport("route1", Hooks{
		OnStart:   record,
		OnSuspend: record,
		OnResume:  record,
		OnStop:    record,
	})

	assert.Equal(t, "route1", s.Id())
	assert.Equal(t, Stopped, StatusOf(s))

	require.NoError(t, s.Start())
	require.NoError(t, s.Start())
	assert.Equal(t, Started, StatusOf(s))

	require.NoError(t, s.Suspend())
	assert.Equal(t, Suspended, StatusOf(s))

	require.NoError(t, s.Resume())
	assert.Equal(t, Started, StatusOf(s))

	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop())
	assert.Equal(t, Stopped, StatusOf(s))

	// hooks observe the transitional state
	assert.Equal(t, []Status{Starting, Suspending, Starting, Stopping}, seen)
}

func TestSupportIllegalTransitions(t *testing.T) {
	s := NewSupport("route1", Hooks{})

	err := s.Suspend()
	require.Error(t, err)
	assert.Equal(t, int32(409), errors.FromError(err).Code)

	err = s.Resume()
	require.Error(t, err)
	assert.Equal(t, int32(409), errors.FromError(err).Code)

	require.NoError(t, s.Start())
	require.NoError(t, s.Suspend())
	// start on a suspended consumer resumes it
	require.NoError(t, s.Start())
	assert.Equal(t, Started, StatusOf(s))

	s.Destroy()
	assert.Error(t, s.Start())
}

func TestSupportHookFailure(t *testing.T) {
	boom := fmt.Errorf("boom")

	s := NewSupport("route1", Hooks{
		OnStart:   func() error { return boom },
		OnStop:    func() error { return boom },
		OnSuspend: func() error { return boom },
	})

	assert.Equal(t, boom, s.Start())
	assert.Equal(t, Stopped, StatusOf(s))

	s.hooks.OnStart = nil
	require.NoError(t, s.Start())

	assert.Equal(t, boom, s.Suspend())
	assert.Equal(t, Started, StatusOf(s))

	assert.Equal(t, boom, s.Stop())
	assert.Equal(t, Stopped, StatusOf(s))
}
