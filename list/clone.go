package list

import (
	"fmt"
	"reflect"
)

// Clone returns a shallow copy of the list: a new instance over a freshly
// allocated backing slice holding the same element values.
func (l *List[T]) Clone() *List[T] {
	return From(l.items)
}

// CloneDeep returns a deep copy of the list, duplicating nested structures
// (slices, arrays, maps, pointers, and structs) recursively so the result
// shares no mutable storage with the receiver.
//
// Values Go cannot structurally copy — non-nil functions, channels, unsafe
// pointers, and structs with unexported fields — make the clone fail with
// [ErrUnsupportedOperation].
func (l *List[T]) CloneDeep() (*List[T], error) {
	out := make([]T, len(l.items))
	for i := range l.items {
		dst := reflect.ValueOf(&out[i]).Elem()
		src := reflect.ValueOf(&l.items[i]).Elem()
		if err := deepCopy(dst, src); err != nil {
			return nil, err
		}
	}
	return &List[T]{items: out}, nil
}

// deepCopy recursively copies src into the addressable value dst.
// dst and src always have the same type.
func deepCopy(dst, src reflect.Value) error {
	switch src.Kind() {
	case reflect.Slice:
		if src.IsNil() {
			dst.Set(src)
			return nil
		}
		dst.Set(reflect.MakeSlice(src.Type(), src.Len(), src.Len()))
		for i := 0; i < src.Len(); i++ {
			if err := deepCopy(dst.Index(i), src.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Array:
		for i := 0; i < src.Len(); i++ {
			if err := deepCopy(dst.Index(i), src.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		if src.IsNil() {
			dst.Set(src)
			return nil
		}
		dst.Set(reflect.MakeMapWithSize(src.Type(), src.Len()))
		for _, key := range src.MapKeys() {
			k := reflect.New(src.Type().Key()).Elem()
			if err := deepCopy(k, key); err != nil {
				return err
			}
			v := reflect.New(src.Type().Elem()).Elem()
			if err := deepCopy(v, src.MapIndex(key)); err != nil {
				return err
			}
			dst.SetMapIndex(k, v)
		}
	case reflect.Pointer:
		if src.IsNil() {
			dst.Set(src)
			return nil
		}
		dst.Set(reflect.New(src.Type().Elem()))
		return deepCopy(dst.Elem(), src.Elem())
	case reflect.Interface:
		if src.IsNil() {
			dst.Set(src)
			return nil
		}
		elem := src.Elem()
		tmp := reflect.New(elem.Type()).Elem()
		if err := deepCopy(tmp, elem); err != nil {
			return err
		}
		dst.Set(tmp)
	case reflect.Struct:
		t := src.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				return fmt.Errorf("%w: cannot deep-clone struct %s with unexported field %s",
					ErrUnsupportedOperation, t, t.Field(i).Name)
			}
			if err := deepCopy(dst.Field(i), src.Field(i)); err != nil {
				return err
			}
		}
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if src.IsNil() {
			dst.Set(src)
			return nil
		}
		return fmt.Errorf("%w: cannot deep-clone %s value", ErrUnsupportedOperation, src.Kind())
	default:
		// Bools, integers, floats, complex numbers, and strings copy by value.
		dst.Set(src)
	}
	return nil
}
