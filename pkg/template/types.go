package template

import (
	"errors"
	"reflect"
	"sync"
)

var (
	// ErrUnknownProperty is wrapped by targets for names they do not style.
	ErrUnknownProperty = errors.New("unknown style property")
	// ErrWrongType is wrapped by targets for values of the wrong type.
	ErrWrongType = errors.New("wrong value type")
)

var (
	typesMu       sync.RWMutex
	propertyTypes = make(map[string]reflect.Type)
)

// RegisterType records the Go type of a style property from a sample
// value, so files can decode the property into that type. Properties with
// the same name share one type across kinds.
func RegisterType(name string, sample any) {
	typesMu.Lock()
	defer typesMu.Unlock()
	propertyTypes[name] = reflect.TypeOf(sample)
}

// TypeOf returns the registered type of a property, or nil.
func TypeOf(name string) reflect.Type {
	typesMu.RLock()
	defer typesMu.RUnlock()
	return propertyTypes[name]
}
