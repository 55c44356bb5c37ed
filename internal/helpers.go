package internal

import (
	"reflect"
)

func InstanceTypeName(instance any) string {
	t := reflect.TypeOf(instance)
	if t == nil {
		return "<nil>"
	}

	if t.Name() == "" {
		return t.String()
	}

	return t.Name()
}

// IsNil reports whether v is nil or a nil pointer, map, slice, func or channel
// stored in an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Flatten splices every []T and []any argument into one list.
// accept converts a single argument into T and reports whether it could.
// On failure the offending argument is returned with ok set to false.
func Flatten[T any](args []any, accept func(any) (T, bool)) (flat []T, rejected any, ok bool) {
	flat = make([]T, 0, len(args))

	for _, arg := range args {
		switch v := arg.(type) {
		case []T:
			flat = append(flat, v...)
		case []any:
			nested, rejected, ok := Flatten(v, accept)
			if !ok {
				return nil, rejected, false
			}

			flat = append(flat, nested...)
		default:
			t, ok := accept(arg)
			if !ok {
				return nil, arg, false
			}

			flat = append(flat, t)
		}
	}

	return flat, nil, true
}

// Elements expands an array-like value into its elements.
// Strings yield one string per rune, slices and arrays yield their items.
// Anything else has no length and yields nil.
func Elements(v any) []any {
	switch v := v.(type) {
	case nil:
		return nil
	case []any:
		return v
	case string:
		elements := make([]any, 0, len(v))
		for _, r := range v {
			elements = append(elements, string(r))
		}

		return elements
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elements := make([]any, rv.Len())
		for i := range elements {
			elements[i] = rv.Index(i).Interface()
		}

		return elements
	default:
		return nil
	}
}
