package optional

import (
	"errors"
	"fmt"
)

// ErrEmptyOptional is the panic value of [Option.MustGet] when the option is
// absent.
var ErrEmptyOptional = errors.New("optional: unwrap of an absent value")

// Option is a sealed present-or-absent container for a single value of type T.
//
// It replaces nullable returns and (T, bool) pairs at API boundaries where
// "no result" is an expected, first-class outcome the caller must handle:
//
//	v := list.Of(1, 2, 3).At(-1)
//	if v.IsPresent() {
//	    fmt.Println(v.MustGet()) // 3
//	}
//	fmt.Println(v.GetOr(0))
//
// The zero value of Option is absent.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns a present Option carrying v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an absent Option of type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of adapts Go's comma-ok idiom: present when ok is true, absent otherwise.
func Of[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// IsPresent reports whether the option carries a value.
func (o Option[T]) IsPresent() bool { return o.present }

// IsAbsent reports whether the option carries no value.
func (o Option[T]) IsAbsent() bool { return !o.present }

// Get returns the carried value and a presence flag.
// The value is the zero value of T when absent.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the carried value, panicking with [ErrEmptyOptional] when
// the option is absent. Use [Option.Get] or [Option.GetOr] when absence is a
// normal outcome.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic(ErrEmptyOptional)
	}
	return o.value
}

// GetOr returns the carried value, or fallback when absent.
func (o Option[T]) GetOr(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

// GetOrElse returns the carried value, or the result of fn when absent.
// fn is only called on an absent option.
func (o Option[T]) GetOrElse(fn func() T) T {
	if !o.present {
		return fn()
	}
	return o.value
}

// String returns "Some(v)" or "None". It implements [fmt.Stringer].
func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
