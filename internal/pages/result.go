package pages

import "fmt"

// Result is the outcome of a wait-backed read. A zero Result is NotFoundWithinTimeout.
type Result[T any] struct {
	value T
	found bool
}

func Found[T any](v T) Result[T] {
	return Result[T]{value: v, found: true}
}

func NotFoundWithinTimeout[T any]() Result[T] {
	return Result[T]{}
}

func (r Result[T]) Value() (T, bool) {
	return r.value, r.found
}

func (r Result[T]) IsFound() bool {
	return r.found
}

// OrZero returns the value, or T's zero value when nothing was found
func (r Result[T]) OrZero() T {
	return r.value
}

func (r Result[T]) String() string {
	if !r.found {
		return "NotFoundWithinTimeout"
	}
	return fmt.Sprintf("Found(%v)", r.value)
}
