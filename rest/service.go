package rest

import (
	"encoding/json"

	"github.com/dhananjayvscot/camel/consumer"
)

// Service is a point in time view of a registered REST service.
type Service struct {
	Consumer    consumer.Consumer `json:"-"`
	State       consumer.Status   `json:"state"`
	Url         string            `json:"url"`
	UriTemplate string            `json:"uriTemplate"`
	Method      string            `json:"method"`
	Consumes    string            `json:"consumes,omitempty"`
	Produces    string            `json:"produces,omitempty"`
}

// MarshalJSON renders the consumer by its id.
func (s *Service) MarshalJSON() ([]byte, error) {
	type service Service

	var id string
	if s.Consumer != nil {
		id = s.Consumer.Id()
	}

	return json.Marshal(struct {
		Id string `json:"consumer"`
		*service
	}{
		Id:      id,
		service: (*service)(s),
	})
}

// Definition describes a REST service to preload into a registry.
type Definition struct {
	Consumer    consumer.Consumer
	Url         string
	Method      string
	UriTemplate string
	Consumes    string
	Produces    string
}
