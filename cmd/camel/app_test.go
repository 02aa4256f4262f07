package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/dhananjayvscot/camel/config"
	"github.com/dhananjayvscot/camel/rest"
)

func configureArgs(t *testing.T, args ...string) *config.Config {
	var cfg *config.Config

	app := newApp()
	app.Action = func(c *cli.Context) error {
		var err error
		cfg, err = configure(c)
		return err
	}
	require.NoError(t, app.Run(append([]string{"camel"}, args...)))
	return cfg
}

func TestConfigure(t *testing.T) {
	cfg := configureArgs(t)
	assert.Equal(t, config.Defaults(), *cfg)

	path := filepath.Join(t.TempDir(), "camel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: orders\nmanagement:\n  address: :9000\n"), 0o600))

	cfg = configureArgs(t,
		"--config", path,
		"--log_level", "debug",
		"--registry_strict",
		"--consul_address", "consul:8500",
	)
	assert.Equal(t, "orders", cfg.Name)
	assert.Equal(t, ":9000", cfg.Management.Address)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Registry.Strict)
	assert.True(t, cfg.Consul.Enabled)
	assert.Equal(t, "consul:8500", cfg.Consul.Address)

	// flags win over the file
	cfg = configureArgs(t, "--config", path, "--name", "billing")
	assert.Equal(t, "billing", cfg.Name)
}

func TestConfigureEnv(t *testing.T) {
	t.Setenv("CAMEL_NAME", "from-env")
	t.Setenv("CAMEL_MANAGEMENT_ADDRESS", "127.0.0.1:7000")

	cfg := configureArgs(t)
	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, "127.0.0.1:7000", cfg.Management.Address)
}

func TestMux(t *testing.T) {
	cfg := config.Defaults()
	cfg.Services = []config.Service{
		{Id: "orders", Url: "http://host/api/orders", Method: "GET", UriTemplate: "/orders"},
	}

	reg := rest.NewRegistry(rest.Services(cfg.Definitions()...))
	require.NoError(t, reg.Start())
	defer reg.Stop()

	mux, err := newMux(&cfg, reg)
	require.NoError(t, err)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	get := func(path string) (int, string) {
		rsp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer rsp.Body.Close()
		b, err := io.ReadAll(rsp.Body)
		require.NoError(t, err)
		return rsp.StatusCode, string(b)
	}

	code, body := get("/rest/services/count")
	assert.Equal(t, 200, code)
	assert.JSONEq(t, `{"size":1}`, body)

	code, body = get("/rest/services")
	assert.Equal(t, 200, code)
	assert.Contains(t, body, `"consumer":"orders"`)

	code, body = get("/metrics")
	assert.Equal(t, 200, code)
	assert.True(t, strings.Contains(body, `camel_rest_services{method="GET",state="started"} 1`))
}
