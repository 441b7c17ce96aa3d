package container

import "reflect"

// TypeKey names a declared Go type. It is the key of every binding in the
// container. Two keys are equal iff they name the same type, so TypeKey can be
// compared with == and used as a map key.
//
//	container.KeyOf[*repos.UserRepo]()      // static type
//	container.KeyFor(userRepo)              // dynamic type of an instance
type TypeKey struct {
	t reflect.Type
}

// KeyOf returns the key for the static type T. Interface types are allowed:
//
//	container.KeyOf[io.Writer]()
func KeyOf[T any]() TypeKey {
	return TypeKey{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// KeyFor returns the key for the dynamic type of v. A nil v yields the zero
// key.
func KeyFor(v any) TypeKey {
	return TypeKey{t: reflect.TypeOf(v)}
}

// Type returns the underlying reflect.Type (nil for the zero key).
func (k TypeKey) Type() reflect.Type { return k.t }

// IsZero reports whether k names no type.
func (k TypeKey) IsZero() bool { return k.t == nil }

// String returns the package-qualified type name, e.g. "*repos.UserRepo".
func (k TypeKey) String() string {
	if k.t == nil {
		return "<nil>"
	}
	return k.t.String()
}

// zero returns the zero value of the named type, used when a nil instance is
// bound under a nillable key.
func (k TypeKey) zero() reflect.Value {
	return reflect.Zero(k.t)
}
