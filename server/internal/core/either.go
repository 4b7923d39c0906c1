package core

// Either is a sum type holding exactly one of a left or right value,
// grounded on StarEither.hpp. Used where a call either fails with a typed
// reason or succeeds with a result (e.g. pathMove's per-tick Option<Result>,
// script dispatch results).
type Either[L any, R any] struct {
	left    L
	right   R
	hasLeft bool
}

// Left constructs an Either holding the left alternative.
func Left[L any, R any](v L) Either[L, R] {
	return Either[L, R]{left: v, hasLeft: true}
}

// Right constructs an Either holding the right alternative.
func Right[L any, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, hasLeft: false}
}

// IsLeft reports whether the left alternative is held.
func (e Either[L, R]) IsLeft() bool { return e.hasLeft }

// LeftValue returns the left value and whether it was present.
func (e Either[L, R]) LeftValue() (L, bool) { return e.left, e.hasLeft }

// RightValue returns the right value and whether it was present.
func (e Either[L, R]) RightValue() (R, bool) { return e.right, !e.hasLeft }

// Option is the common case of Either where the left side carries nothing.
type Option[T any] struct {
	value T
	some  bool
}

// Some constructs a present Option.
func Some[T any](v T) Option[T] { return Option[T]{value: v, some: true} }

// None constructs an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the held value and whether one is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.some }

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.some }
