// Package ctxstore keeps typed values in a context.Context.
package ctxstore

import "context"

// Key identifies a value of type T. Keys with the same name but different
// types never collide.
type Key[T any] struct {
	name string
}

func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

func (k Key[T]) String() string {
	return k.name
}

func (k Key[T]) With(ctx context.Context, value T) context.Context {
	return context.WithValue(ctx, k, value)
}

func (k Key[T]) From(ctx context.Context) (T, bool) {
	value, ok := ctx.Value(k).(T)
	return value, ok
}

func (k Key[T]) MustFrom(ctx context.Context) T {
	value, ok := k.From(ctx)
	if !ok {
		panic("ctxstore: " + k.name + " not found")
	}
	return value
}
