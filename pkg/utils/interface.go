package utils

import "reflect"

// IsNilInterface reports whether i is nil or an interface wrapping a nil
// pointer, slice, map, channel or func.
//
// A typed nil stored in an interface does not compare equal to nil:
//
//	var f *types.StringField
//	var field types.Field = f
//	field == nil            // false
//	IsNilInterface(field)   // true
func IsNilInterface(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)

	switch v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
