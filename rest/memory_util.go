package rest

import (
	"reflect"
	"strings"

	"github.com/dhananjayvscot/camel/consumer"
	"github.com/dhananjayvscot/camel/errors"
)

// record is what the registry stores. It has no state field: state always
// comes from the consumer when a service is read.
type record struct {
	id          string
	consumer    consumer.Consumer
	url         string
	method      string
	uriTemplate string
	consumes    string
	produces    string
}

func newRecord(d Definition) *record {
	return &record{
		id:          d.Consumer.Id(),
		consumer:    d.Consumer,
		url:         d.Url,
		method:      d.Method,
		uriTemplate: d.UriTemplate,
		consumes:    d.Consumes,
		produces:    d.Produces,
	}
}

func (r *record) toService() *Service {
	return &Service{
		Consumer:    r.consumer,
		State:       consumer.StatusOf(r.consumer),
		Url:         r.url,
		UriTemplate: r.uriTemplate,
		Method:      r.method,
		Consumes:    r.consumes,
		Produces:    r.produces,
	}
}

// isNil also catches a nil pointer held in a non-nil interface.
func isNil(c consumer.Consumer) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func validate(op string, c consumer.Consumer, url, method string) error {
	if isNil(c) {
		return errors.BadRequest(errorId, "missing consumer in %s", op)
	}
	if strings.TrimSpace(c.Id()) == "" {
		return errors.BadRequest(errorId, "missing consumer id in %s", op)
	}
	if strings.TrimSpace(url) == "" {
		return errors.BadRequest(errorId, "missing url in %s", op)
	}
	if strings.TrimSpace(method) == "" {
		return errors.BadRequest(errorId, "missing method in %s", op)
	}
	return nil
}
