package rest

import (
	"testing"

	"github.com/dhananjayvscot/camel/consumer"
	"github.com/dhananjayvscot/camel/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	l := logger.NewLogger(logger.WithLevel(logger.ErrorLevel))

	m := NewRegistry(Strict(true), Logger(l))
	opts := m.Options()
	assert.True(t, opts.Strict)
	assert.Equal(t, l, opts.Logger)

	require.NoError(t, m.Init(Strict(false)))
	assert.False(t, m.Options().Strict)

	// defaults
	opts = NewRegistry().Options()
	assert.False(t, opts.Strict)
	assert.Equal(t, logger.DefaultLogger, opts.Logger)
	assert.NotNil(t, opts.Context)
}

func TestServicesOptionAccumulates(t *testing.T) {
	var o Options
	Services(Definition{Consumer: consumer.NewStatic("a", consumer.Started)})(&o)
	Services(Definition{Consumer: consumer.NewStatic("b", consumer.Started)})(&o)

	defs := getServices(o.Context)
	require.Len(t, defs, 2)
	assert.Equal(t, "a", defs[0].Consumer.Id())
	assert.Equal(t, "b", defs[1].Consumer.Id())

	assert.Nil(t, getServices(nil))
}
