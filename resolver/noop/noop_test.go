package noop

import (
	"errors"
	"testing"

	"github.com/dhananjayvscot/camel/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoop(t *testing.T) {
	r := NewResolver()

	_, err := r.FindFactory("x")
	assert.True(t, errors.Is(err, resolver.ErrNotFound))
	_, err = r.ResolveComponent("x")
	assert.True(t, errors.Is(err, resolver.ErrNotFound))
	_, err = r.ResolveLanguage("x")
	assert.True(t, errors.Is(err, resolver.ErrNotFound))
	assert.Empty(t, r.Scan(""))
	assert.Equal(t, "noop", r.String())
}

// A bundle over a noop fallback only sees its own strategies.
func TestNoopFallback(t *testing.T) {
	resolver.Register(resolver.Component, "global", 1)

	b := resolver.NewBundle("isolated")
	b.Register(resolver.Component, "local", 2)

	r := resolver.Bundled(b, NewResolver())

	v, err := r.ResolveComponent("local")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = r.ResolveComponent("global")
	assert.True(t, errors.Is(err, resolver.ErrNotFound))
}
