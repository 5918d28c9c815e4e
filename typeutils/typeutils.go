package typeutils

import (
	"reflect"
)

// IsInterfaceNil returns true if the given interface is nil or wraps a nil value.
// A plain nil comparison is not enough because an interface that holds a typed
// nil pointer is itself non-nil.
func IsInterfaceNil(param interface{}) bool {
	if param == nil {
		return true
	}

	switch reflect.TypeOf(param).Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Slice, reflect.Func, reflect.UnsafePointer, reflect.Interface:
		return reflect.ValueOf(param).IsNil()
	default:
		return false
	}
}
