package hashtable

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/twmb/murmur3"
)

// hashKey hashes the value of key, so keys that compare equal with == always
// produce the same hash.
func hashKey[K comparable](key K) uint64 {
	var buf [8]byte
	switch k := any(key).(type) {
	case string:
		return murmur3.Sum64([]byte(k))
	case int:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case int32:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case uint8:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case uint64:
		binary.LittleEndian.PutUint64(buf[:], k)
	default:
		return murmur3.Sum64(appendKey(nil, reflect.ValueOf(any(key))))
	}
	return murmur3.Sum64(buf[:])
}

// appendKey encodes v by kind. Named types and composite keys (arrays, structs,
// interfaces, pointers) end up here.
func appendKey(b []byte, v reflect.Value) []byte {
	if !v.IsValid() {
		return append(b, 0)
	}
	switch v.Kind() {
	case reflect.String:
		// length prefix keeps struct{a, b string}{"ab", ""} apart from {"a", "b"}
		b = binary.LittleEndian.AppendUint64(b, uint64(v.Len()))
		return append(b, v.String()...)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return binary.LittleEndian.AppendUint64(b, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return binary.LittleEndian.AppendUint64(b, v.Uint())
	case reflect.Bool:
		if v.Bool() {
			return append(b, 1)
		}
		return append(b, 0)
	case reflect.Float32, reflect.Float64:
		return appendFloat(b, v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return appendFloat(appendFloat(b, real(c)), imag(c))
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			b = appendKey(b, v.Index(i))
		}
		return b
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			b = appendKey(b, v.Field(i))
		}
		return b
	case reflect.Interface:
		if v.IsNil() {
			return append(b, 0)
		}
		return appendKey(append(b, 1), v.Elem())
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return binary.LittleEndian.AppendUint64(b, uint64(v.Pointer()))
	default:
		// not reachable for comparable types
		return b
	}
}

func appendFloat(b []byte, f float64) []byte {
	// +0 == -0
	if f == 0 {
		f = 0
	}
	return binary.LittleEndian.AppendUint64(b, math.Float64bits(f))
}
