// Package handler serves the REST service registry over http
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/dhananjayvscot/camel/errors"
	"github.com/dhananjayvscot/camel/logger"
	"github.com/dhananjayvscot/camel/rest"
)

const (
	DefaultPath = "/rest/services"

	errorId = "rest.handler"
)

// Listing is the body returned for the service listing. Size always
// equals the number of services since both come from one snapshot.
type Listing struct {
	Size     int             `json:"size"`
	Services []*rest.Service `json:"services"`
}

type Count struct {
	Size int `json:"size"`
}

type Handler struct {
	opts Options
}

func NewHandler(opts ...Option) *Handler {
	options := NewOptions(opts...)
	options.Path = "/" + strings.Trim(options.Path, "/")

	return &Handler{
		opts: options,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/")

	var fn func() interface{}

	switch path {
	case h.opts.Path:
		fn = h.list
	case h.opts.Path + "/count":
		fn = h.count
	default:
		h.writeError(w, errors.NotFound(errorId, "no such path %s", r.URL.Path))
		return
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		h.writeError(w, errors.MethodNotAllowed(errorId, "method %s not allowed", r.Method))
		return
	}

	b, err := json.Marshal(fn())
	if err != nil {
		h.writeError(w, errors.InternalServerError(errorId, "encoding response: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		w.Write(b)
	}
}

func (h *Handler) list() interface{} {
	services := h.opts.Registry.ListAllRestServices()
	if services == nil {
		services = []*rest.Service{}
	}
	return &Listing{
		Size:     len(services),
		Services: services,
	}
}

func (h *Handler) count() interface{} {
	return &Count{Size: h.opts.Registry.Size()}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	ce := errors.FromError(err)
	if ce.Code == 0 {
		ce.Code = 500
		ce.Id = errorId
		ce.Status = http.StatusText(500)
	}

	if ce.Code >= 500 {
		h.opts.Logger.Logf(logger.ErrorLevel, "Handler error: %s", ce.Detail)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(int(ce.Code))
	w.Write([]byte(ce.Error()))
}

func (h *Handler) String() string {
	return "rest"
}
