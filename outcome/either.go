package outcome

// Either holds a left L or a right R. Neither side is assumed to be an
// error; by convention right is the expected case. The zero Either is a
// left holding the zero L.
type Either[L, R any] struct {
	left  L
	right R
	isR   bool
}

// Left returns an Either holding l.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right returns an Either holding r.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isR: true}
}

// IsRight reports whether the right side is live.
func (e Either[L, R]) IsRight() bool { return e.isR }

// MatchEither calls right or left with the live side and returns its value.
func MatchEither[L, R, T any](e Either[L, R], right func(R) T, left func(L) T) T {
	if e.isR {
		return right(e.right)
	}
	return left(e.left)
}
