package outcome

// Option is either a present T or nothing. The zero Option is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns None for a nil pointer and Some of the pointee otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// Get returns the value and true, or the zero T and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// MatchOption calls some with the value or none, and returns its value.
func MatchOption[T, R any](o Option[T], some func(T) R, none func() R) R {
	if o.some {
		return some(o.value)
	}
	return none()
}
