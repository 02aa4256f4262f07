package converter

import (
	"reflect"
	"strconv"
)

var (
	stringType  = reflect.TypeOf("")
	intType     = reflect.TypeOf(int(0))
	int64Type   = reflect.TypeOf(int64(0))
	float64Type = reflect.TypeOf(float64(0))
	boolType    = reflect.TypeOf(false)
)

// Definition is a single conversion published by a loader source.
type Definition struct {
	From reflect.Type
	To   reflect.Type
	Func Func
}

// Source publishes conversions, typically a runtime bundle.
type Source interface {
	Converters() []Definition
}

type defaultLoader struct{}

// DefaultLoader registers conversions between strings and the basic scalar types.
func DefaultLoader() Loader {
	return defaultLoader{}
}

func (defaultLoader) String() string {
	return "default"
}

func (defaultLoader) Load(t *TypeConverter) error {
	for _, d := range builtins() {
		t.AddConverter(d.From, d.To, d.Func)
	}
	return nil
}

type bundleLoader struct {
	src Source
}

// BundleLoader registers the builtin conversions followed by those
// published by src. A nil src behaves like DefaultLoader.
func BundleLoader(src Source) Loader {
	return &bundleLoader{src: src}
}

func (b *bundleLoader) String() string {
	return "bundle"
}

func (b *bundleLoader) Load(t *TypeConverter) error {
	if err := (defaultLoader{}).Load(t); err != nil {
		return err
	}
	if b.src == nil {
		return nil
	}
	for _, d := range b.src.Converters() {
		t.AddConverter(d.From, d.To, d.Func)
	}
	return nil
}

func builtins() []Definition {
	return []Definition{
		{stringType, intType, func(v interface{}) (interface{}, error) {
			return strconv.Atoi(v.(string))
		}},
		{stringType, int64Type, func(v interface{}) (interface{}, error) {
			return strconv.ParseInt(v.(string), 10, 64)
		}},
		{stringType, float64Type, func(v interface{}) (interface{}, error) {
			return strconv.ParseFloat(v.(string), 64)
		}},
		{stringType, boolType, func(v interface{}) (interface{}, error) {
			return strconv.ParseBool(v.(string))
		}},
		{intType, stringType, func(v interface{}) (interface{}, error) {
			return strconv.Itoa(v.(int)), nil
		}},
		{int64Type, stringType, func(v interface{}) (interface{}, error) {
			return strconv.FormatInt(v.(int64), 10), nil
		}},
		{float64Type, stringType, func(v interface{}) (interface{}, error) {
			return strconv.FormatFloat(v.(float64), 'g', -1, 64), nil
		}},
		{boolType, stringType, func(v interface{}) (interface{}, error) {
			return strconv.FormatBool(v.(bool)), nil
		}},
	}
}
