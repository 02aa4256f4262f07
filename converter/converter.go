// Package converter provides the type converter of the routing context. Its
// conversion table is filled by an ordered list of loaders, each identified
// by a stable tag so a runtime can swap one out without inspecting types.
package converter

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	// ErrNoConverter is returned when no conversion between two types is known.
	ErrNoConverter = errors.New("no type converter found")
)

// Func converts a value into the target type of its table entry.
type Func func(interface{}) (interface{}, error)

// Loader fills a TypeConverter with conversions.
type Loader interface {
	// String returns the tag the loader is replaced by
	String() string
	Load(*TypeConverter) error
}

type pair struct {
	from, to reflect.Type
}

type TypeConverter struct {
	sync.RWMutex
	loaders []Loader
	table   map[pair]Func
}

// NewTypeConverter returns a converter with the given loaders in order.
func NewTypeConverter(loaders ...Loader) *TypeConverter {
	return &TypeConverter{
		loaders: append([]Loader{}, loaders...),
		table:   make(map[pair]Func),
	}
}

// Loaders returns a copy of the loader list.
func (t *TypeConverter) Loaders() []Loader {
	t.RLock()
	defer t.RUnlock()
	return append([]Loader{}, t.loaders...)
}

// AddLoader appends l to the loader list.
func (t *TypeConverter) AddLoader(l Loader) {
	t.Lock()
	t.loaders = append(t.loaders, l)
	t.Unlock()
}

// RemoveLoader removes the first loader tagged tag.
func (t *TypeConverter) RemoveLoader(tag string) bool {
	t.Lock()
	defer t.Unlock()

	for i, l := range t.loaders {
		if l.String() == tag {
			t.loaders = append(t.loaders[:i], t.loaders[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceLoader puts l in place of the loader tagged tag, or appends it
// when there is none.
func (t *TypeConverter) ReplaceLoader(tag string, l Loader) {
	t.Lock()
	defer t.Unlock()

	for i, o := range t.loaders {
		if o.String() == tag {
			t.loaders[i] = l
			return
		}
	}
	t.loaders = append(t.loaders, l)
}

// Load runs every loader in order. Later loaders override earlier entries.
func (t *TypeConverter) Load() error {
	for _, l := range t.Loaders() {
		if err := l.Load(t); err != nil {
			return fmt.Errorf("loader %s: %v", l, err)
		}
	}
	return nil
}

// AddConverter registers fn for conversions from one type to another.
func (t *TypeConverter) AddConverter(from, to reflect.Type, fn Func) {
	t.Lock()
	t.table[pair{from, to}] = fn
	t.Unlock()
}

// Convert converts v into the type to.
func (t *TypeConverter) Convert(v interface{}, to reflect.Type) (interface{}, error) {
	if v == nil {
		return nil, ErrNoConverter
	}

	from := reflect.TypeOf(v)
	if from == to {
		return v, nil
	}

	t.RLock()
	fn, ok := t.table[pair{from, to}]
	t.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s to %s", ErrNoConverter, from, to)
	}
	return fn(v)
}

// To converts v into a T using tc.
func To[T any](tc *TypeConverter, v interface{}) (T, error) {
	var zero T
	out, err := tc.Convert(v, reflect.TypeOf(zero))
	if err != nil {
		return zero, err
	}
	res, ok := out.(T)
	if !ok {
		return zero, fmt.Errorf("%w: converter to %T returned %T", ErrNoConverter, zero, out)
	}
	return res, nil
}
