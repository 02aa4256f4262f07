package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dhananjayvscot/camel/consumer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
name: orders
log:
  level: debug
registry:
  strict: true
management:
  address: 127.0.0.1:9090
consul:
  enabled: true
services:
  - id: orders-get
    url: http://host/api/orders
    method: GET
    uriTemplate: /orders
    produces: application/json
  - id: orders-post
    url: http://host/api/orders
    method: POST
    uriTemplate: /orders
    consumes: application/json
    state: Suspended
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(testConfig))
	require.NoError(t, err)

	assert.Equal(t, "orders", c.Name)
	assert.Equal(t, "debug", c.Log.Level)
	// unset values come from the defaults
	assert.Equal(t, "console", c.Log.Encoding)
	assert.True(t, c.Registry.Strict)
	assert.Equal(t, "127.0.0.1:9090", c.Management.Address)
	assert.Equal(t, "/rest/services", c.Management.Path)
	assert.Equal(t, "/metrics", c.Management.MetricsPath)
	assert.True(t, c.Consul.Enabled)
	assert.Equal(t, "127.0.0.1:8500", c.Consul.Address)
	require.Len(t, c.Services, 2)

	defs := c.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "orders-get", defs[0].Consumer.Id())
	assert.Equal(t, consumer.Started, consumer.StatusOf(defs[0].Consumer))
	assert.Equal(t, "application/json", defs[0].Produces)
	assert.Equal(t, "POST", defs[1].Method)
	assert.Equal(t, consumer.Suspended, consumer.StatusOf(defs[1].Consumer))
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"yaml":         "name: [",
		"missing id":   "services:\n  - url: http://h/a\n    method: GET\n",
		"duplicate id": "services:\n  - {id: a, url: http://h/a, method: GET}\n  - {id: a, url: http://h/b, method: GET}\n",
		"missing url":  "services:\n  - {id: a, method: GET}\n",
		"missing verb": "services:\n  - {id: a, url: http://h/a}\n",
		"bad state":    "services:\n  - {id: a, url: http://h/a, method: GET, state: running}\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *c)

	path := filepath.Join(t.TempDir(), "camel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "orders", c.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
