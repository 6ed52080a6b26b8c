package kernel

import (
	"encoding/binary"
	"math"
	"math/bits"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// ValueObject is implemented by every immutable domain value whose identity is the
// full set of its defining fields.
//
// EqualityComponents returns those fields in a fixed order. Two value objects of the
// same concrete type are interchangeable when their component slices are element-wise
// equal. A component may be nil (an absent optional field) or another ValueObject,
// which is compared structurally.
type ValueObject interface {
	EqualityComponents() []any
}

// Equal reports whether a and b are the same concrete type with equal components.
// Two nil values are equal; a nil and a non-nil value are not.
//
// Example:
//
//	a, _ := kernel.NewMoneyFromString("10.00", "usd")
//	b, _ := kernel.NewMoneyFromString("10", "USD")
//	kernel.Equal(a, b) // true
func Equal(a, b ValueObject) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	ac, bc := a.EqualityComponents(), b.EqualityComponents()
	if len(ac) != len(bc) {
		return false
	}

	for i := range ac {
		if !componentEqual(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// Hash folds the hashes of v's equality components into one value.
// Nil components hash to 0, and Equal(a, b) implies Hash(a) == Hash(b).
func Hash(v ValueObject) uint64 {
	if isNil(v) {
		return 0
	}

	var h uint64
	for _, c := range v.EqualityComponents() {
		// rotate before xor so that swapping two components changes the hash
		h = bits.RotateLeft64(h, 7) ^ componentHash(c)
	}
	return h
}

// Components are compared and hashed by one structural walk so the two can never
// disagree. Floats compare numerically on both paths (-0 equals +0), slices and arrays
// element by element, maps entry by entry and interfaces by their dynamic value.
// Reachable ValueObjects defer to Equal and Hash. Components must not contain cycles.

func componentEqual(x, y any) bool {
	if isNil(x) || isNil(y) {
		return isNil(x) && isNil(y)
	}
	return valueEqual(reflect.ValueOf(x), reflect.ValueOf(y))
}

func componentHash(c any) uint64 {
	if isNil(c) {
		return 0
	}

	d := xxhash.New()
	v := reflect.ValueOf(c)
	_, _ = d.WriteString(v.Type().String())
	writeValue(d, v)
	return d.Sum64()
}

// asValueObject returns v as a ValueObject when it implements the interface and can be
// read through reflection (unexported struct fields cannot).
func asValueObject(v reflect.Value) (ValueObject, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	vo, ok := v.Interface().(ValueObject)
	return vo, ok
}

func valueEqual(x, y reflect.Value) bool {
	if x.Type() != y.Type() {
		return false
	}

	if xv, ok := asValueObject(x); ok {
		yv, _ := asValueObject(y)
		return Equal(xv, yv)
	}

	switch x.Kind() { //nolint:exhaustive // remaining kinds compare by identity
	case reflect.Bool:
		return x.Bool() == y.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return x.Int() == y.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return x.Uint() == y.Uint()
	case reflect.Float32, reflect.Float64:
		return x.Float() == y.Float()
	case reflect.Complex64, reflect.Complex128:
		return x.Complex() == y.Complex()
	case reflect.String:
		return x.String() == y.String()
	case reflect.Array, reflect.Slice:
		if x.Len() != y.Len() {
			return false
		}
		for i := 0; i < x.Len(); i++ {
			if !valueEqual(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < x.NumField(); i++ {
			if !valueEqual(x.Field(i), y.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Pointer, reflect.Interface:
		if x.IsNil() || y.IsNil() {
			return x.IsNil() && y.IsNil()
		}
		return valueEqual(x.Elem(), y.Elem())
	case reflect.Map:
		if x.Len() != y.Len() {
			return false
		}
		iter := x.MapRange()
		for iter.Next() {
			other := y.MapIndex(iter.Key())
			if !other.IsValid() || !valueEqual(iter.Value(), other) {
				return false
			}
		}
		return true
	default:
		return x.Pointer() == y.Pointer()
	}
}

func writeValue(d *xxhash.Digest, v reflect.Value) {
	if vo, ok := asValueObject(v); ok {
		writeUint(d, Hash(vo))
		return
	}

	switch v.Kind() { //nolint:exhaustive // remaining kinds hash by identity
	case reflect.Bool:
		if v.Bool() {
			writeUint(d, 1)
		} else {
			writeUint(d, 0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(d, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(d, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeFloat(d, v.Float())
	case reflect.Complex64, reflect.Complex128:
		writeFloat(d, real(v.Complex()))
		writeFloat(d, imag(v.Complex()))
	case reflect.String:
		writeUint(d, uint64(v.Len()))
		_, _ = d.WriteString(v.String())
	case reflect.Array, reflect.Slice:
		writeUint(d, uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			writeValue(d, v.Index(i))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			writeValue(d, v.Field(i))
		}
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			writeUint(d, 0)
			return
		}
		_, _ = d.WriteString(v.Elem().Type().String())
		writeValue(d, v.Elem())
	case reflect.Map:
		// entries are summed so iteration order does not matter
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			entry := xxhash.New()
			writeValue(entry, iter.Key())
			writeValue(entry, iter.Value())
			sum += entry.Sum64()
		}
		writeUint(d, uint64(v.Len()))
		writeUint(d, sum)
	default:
		writeUint(d, uint64(v.Pointer()))
	}
}

func writeFloat(d *xxhash.Digest, f float64) {
	if f == 0 {
		f = 0 // folds -0 into +0
	}
	writeUint(d, math.Float64bits(f))
}

func writeUint(d *xxhash.Digest, u uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	_, _ = d.Write(buf[:])
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint:exhaustive // only nillable kinds matter
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
