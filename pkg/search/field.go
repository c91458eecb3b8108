package search

// Getter returns the value stored under key in record.
// The boolean is false when the record has no such field.
type Getter[T any] func(record T, key string) (any, bool)

// Fielder is implemented by records that expose their fields by name.
type Fielder interface {
	Field(key string) (any, bool)
}

// FielderGetter returns a Getter for types implementing Fielder.
func FielderGetter[T Fielder]() Getter[T] {
	return func(record T, key string) (any, bool) {
		return record.Field(key)
	}
}

// MapGetter reads fields from map[string]any records.
func MapGetter(record map[string]any, key string) (any, bool) {
	v, ok := record[key]
	return v, ok
}

// lookup resolves a field and reports whether it holds a usable value.
func lookup[T any](get Getter[T], record T, key string) (any, bool) {
	v, ok := get(record, key)
	if !ok {
		return nil, false
	}
	return deref(v)
}
