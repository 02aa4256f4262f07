// Package metrics exports the REST service registry to prometheus
package metrics

import (
	"strings"

	"github.com/dhananjayvscot/camel/consumer"
	"github.com/dhananjayvscot/camel/rest"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	servicesDesc = prometheus.NewDesc(
		"camel_rest_services",
		"Number of REST services in the registry by state and http method.",
		[]string{"state", "method"}, nil,
	)

	sizeDesc = prometheus.NewDesc(
		"camel_rest_registry_size",
		"Number of REST services in the registry.",
		nil, nil,
	)
)

// Collector is a prometheus.Collector reading a registry on every scrape.
// States are derived at scrape time so they always match the listing.
type Collector struct {
	registry rest.Registry
}

func NewCollector(r rest.Registry) *Collector {
	return &Collector{registry: r}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- servicesDesc
	ch <- sizeDesc
}

type labels struct {
	state  consumer.Status
	method string
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	services := c.registry.ListAllRestServices()

	counts := make(map[labels]int)
	for _, s := range services {
		counts[labels{s.State, strings.ToUpper(s.Method)}]++
	}

	for l, n := range counts {
		ch <- prometheus.MustNewConstMetric(servicesDesc, prometheus.GaugeValue, float64(n), l.state.String(), l.method)
	}
	ch <- prometheus.MustNewConstMetric(sizeDesc, prometheus.GaugeValue, float64(len(services)))
}

// NewRegistry returns a prometheus registry holding the collector
// alongside the go runtime and process collectors.
func NewRegistry(r rest.Registry) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()

	for _, c := range []prometheus.Collector{
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{Namespace: "goruntime"}),
		NewCollector(r),
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
