package data

// Lens provides scoped access to one value inside an owner.
//
// The binding layer only ever needs these two operations; it never assumes
// the addressed value is reachable by reference or index. Lenses compose
// end to end with Chain.
type Lens[T, V any] interface {
	// With calls f with the current value.
	With(owner *T, f func(value V))
	// WithMut calls f with mutable access to the value.
	WithMut(owner *T, f func(value *V))
}

// Field builds a lens from a function addressing one field of the owner.
//
//	nameLens := data.Field(func(s *AppState) *string { return &s.Name })
func Field[T, V any](access func(owner *T) *V) Lens[T, V] {
	return fieldLens[T, V]{access: access}
}

type fieldLens[T, V any] struct {
	access func(*T) *V
}

func (l fieldLens[T, V]) With(owner *T, f func(V)) {
	f(*l.access(owner))
}

func (l fieldLens[T, V]) WithMut(owner *T, f func(*V)) {
	f(l.access(owner))
}

// Map builds a lens through a get/put conversion pair, for values that are
// derived rather than stored.
func Map[T, V any](get func(*T) V, put func(*T, V)) Lens[T, V] {
	return mapLens[T, V]{get: get, put: put}
}

type mapLens[T, V any] struct {
	get func(*T) V
	put func(*T, V)
}

func (l mapLens[T, V]) With(owner *T, f func(V)) {
	f(l.get(owner))
}

func (l mapLens[T, V]) WithMut(owner *T, f func(*V)) {
	value := l.get(owner)
	f(&value)
	l.put(owner, value)
}

// Chain composes two lenses end to end.
func Chain[T, U, V any](outer Lens[T, U], inner Lens[U, V]) Lens[T, V] {
	return chainLens[T, U, V]{outer: outer, inner: inner}
}

type chainLens[T, U, V any] struct {
	outer Lens[T, U]
	inner Lens[U, V]
}

func (l chainLens[T, U, V]) With(owner *T, f func(V)) {
	l.outer.With(owner, func(mid U) {
		l.inner.With(&mid, f)
	})
}

func (l chainLens[T, U, V]) WithMut(owner *T, f func(*V)) {
	l.outer.WithMut(owner, func(mid *U) {
		l.inner.WithMut(mid, f)
	})
}

// Id returns the identity lens, exposing the owner itself.
func Id[T any]() Lens[T, T] {
	return Field(func(owner *T) *T { return owner })
}
