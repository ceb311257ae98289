package equator

import (
	"hash/fnv"
	"strings"

	"github.com/pkg/errors"
)

var ErrNilFunction = errors.New("equator requires both an equate and a hash function")

type (
	// EquateFn decides whether two elements belong to the same
	// equivalence class.
	EquateFn[T any] func(a, b T) bool

	// HashFn must be consistent with its EquateFn: equal elements
	// produce the same hash.
	HashFn[T any] func(v T) uint64
)

// Equator is a caller-supplied equivalence relation that overrides an
// element type's built-in notion of sameness. The hash/equality contract
// is the caller's responsibility and is never validated here.
type Equator[T any] struct {
	equate EquateFn[T]
	hash   HashFn[T]
}

func New[T any](equate EquateFn[T], hash HashFn[T]) (*Equator[T], error) {
	if equate == nil || hash == nil {
		return nil, errors.WithStack(ErrNilFunction)
	}

	return &Equator[T]{equate: equate, hash: hash}, nil
}

func (e *Equator[T]) Equate(a, b T) bool {
	return e.equate(a, b)
}

func (e *Equator[T]) Hash(v T) uint64 {
	return e.hash(v)
}

// CaseInsensitive equates strings regardless of letter case. Both the
// relation and the hash normalize through strings.ToLower so the
// hash/equality contract holds.
func CaseInsensitive() *Equator[string] {
	return &Equator[string]{
		equate: func(a, b string) bool {
			return strings.ToLower(a) == strings.ToLower(b)
		},
		hash: func(v string) uint64 {
			h := fnv.New64a()
			_, _ = h.Write([]byte(strings.ToLower(v)))
			return h.Sum64()
		},
	}
}
