package consul

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	consul "github.com/hashicorp/consul/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhananjayvscot/camel/consumer/mock"
	"github.com/dhananjayvscot/camel/rest"
)

// agent fakes the consul agent service endpoints
type agent struct {
	sync.Mutex
	services map[string]*consul.AgentServiceRegistration
}

func (a *agent) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.Lock()
	defer a.Unlock()

	switch {
	case r.Method == "PUT" && r.URL.Path == "/v1/agent/service/register":
		reg := new(consul.AgentServiceRegistration)
		if err := json.NewDecoder(r.Body).Decode(reg); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		a.services[reg.ID] = reg
	case r.Method == "PUT" && strings.HasPrefix(r.URL.Path, "/v1/agent/service/deregister/"):
		delete(a.services, strings.TrimPrefix(r.URL.Path, "/v1/agent/service/deregister/"))
	default:
		http.NotFound(w, r)
	}
}

func (a *agent) get(id string) *consul.AgentServiceRegistration {
	a.Lock()
	defer a.Unlock()
	return a.services[id]
}

func (a *agent) len() int {
	a.Lock()
	defer a.Unlock()
	return len(a.services)
}

func testExporter(t *testing.T, r rest.Registry) (*Exporter, *agent) {
	a := &agent{services: make(map[string]*consul.AgentServiceRegistration)}
	srv := httptest.NewServer(a)
	t.Cleanup(srv.Close)

	e, err := NewExporter(
		Registry(r),
		Name("orders"),
		Config(&consul.Config{Address: srv.Listener.Addr().String(), Scheme: "http"}),
	)
	require.NoError(t, err)
	return e, a
}

func TestExporter(t *testing.T) {
	r := rest.NewRegistry()
	require.NoError(t, r.Start())
	defer r.Stop()

	a := mock.NewConsumer("A")
	require.NoError(t, r.AddRestService(a, "http://host:8080/api/a", "GET", "/a", "", "application/json"))

	e, fake := testExporter(t, r)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	// seeded from the snapshot
	require.Eventually(t, func() bool { return fake.get("camel-rest-A") != nil }, time.Second, 10*time.Millisecond)

	reg := fake.get("camel-rest-A")
	assert.Equal(t, "orders", reg.Name)
	assert.Equal(t, "host", reg.Address)
	assert.Equal(t, 8080, reg.Port)
	assert.Equal(t, []string{"GET", "/a"}, reg.Tags)
	assert.Equal(t, "http://host:8080/api/a", reg.Meta["url"])
	assert.Equal(t, "application/json", reg.Meta["produces"])
	assert.Equal(t, "started", reg.Meta["state"])

	b := mock.NewConsumer("B")
	require.NoError(t, r.AddRestService(b, "https://host/api/b", "POST", "/b", "", ""))
	require.Eventually(t, func() bool { return fake.get("camel-rest-B") != nil }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 443, fake.get("camel-rest-B").Port)

	require.NoError(t, r.RemoveRestService(a))
	require.Eventually(t, func() bool { return fake.get("camel-rest-A") == nil }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"camel-rest-B"}, e.Exported())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("exporter did not return")
	}

	assert.Equal(t, 0, fake.len())
	assert.Empty(t, e.Exported())
}

func TestExporterRegistryStop(t *testing.T) {
	r := rest.NewRegistry()
	require.NoError(t, r.Start())
	require.NoError(t, r.AddRestService(mock.NewConsumer("A"), "http://host/a", "GET", "/a", "", ""))

	e, fake := testExporter(t, r)

	done := make(chan error, 1)
	go func() { done <- e.Run(context.Background()) }()
	require.Eventually(t, func() bool { return fake.len() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, r.Stop())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("exporter did not return")
	}
	assert.Equal(t, 0, fake.len())
}

func TestExporterBadUrl(t *testing.T) {
	r := rest.NewRegistry()
	require.NoError(t, r.Start())
	defer r.Stop()
	require.NoError(t, r.AddRestService(mock.NewConsumer("A"), "http://host:port/a", "GET", "/a", "", ""))
	require.NoError(t, r.AddRestService(mock.NewConsumer("B"), "http://host/b", "GET", "/b", "", ""))

	e, fake := testExporter(t, r)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go e.Run(ctx)

	// a service that cannot be exported does not stop the others
	require.Eventually(t, func() bool { return fake.get("camel-rest-B") != nil }, time.Second, 10*time.Millisecond)
	assert.Nil(t, fake.get("camel-rest-A"))
}

func TestExporterRunReleasesGoroutines(t *testing.T) {
	srv := httptest.NewServer(&agent{services: make(map[string]*consul.AgentServiceRegistration)})
	defer srv.Close()

	base := runtime.NumGoroutine()

	// the registry ends each run while ctx stays live
	for i := 0; i < 20; i++ {
		r := rest.NewRegistry()
		require.NoError(t, r.Start())
		e, err := NewExporter(Registry(r), Config(&consul.Config{Address: srv.Listener.Addr().String(), Scheme: "http"}))
		require.NoError(t, err)

		done := make(chan error, 1)
		go func() { done <- e.Run(context.Background()) }()

		require.Eventually(t, func() bool {
			require.NoError(t, r.Stop())
			select {
			case err := <-done:
				require.NoError(t, err)
				return true
			default:
				return false
			}
		}, time.Second, 10*time.Millisecond)
	}

	assert.Eventually(t, func() bool { return runtime.NumGoroutine() < base+10 }, time.Second, 10*time.Millisecond)
}
