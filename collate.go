package setops

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// CompareFn is a three-way ordering: negative when a < b, zero when
// equal, positive when a > b.
type CompareFn[T any] func(a, b T) int

type collateConfig struct {
	includeDuplicates bool
}

type CollateOption func(cfg *collateConfig)

// WithoutDuplicates collapses runs of adjacent equal elements in the
// merged output, keeping the first element of each run.
func WithoutDuplicates() CollateOption {
	return func(cfg *collateConfig) {
		cfg.includeDuplicates = false
	}
}

// Collate merges two naturally ordered slices into one sorted slice.
// Both inputs must already be sorted; that precondition is not checked.
func Collate[T constraints.Ordered](a, b []T, options ...CollateOption) []T {
	merged, _ := CollateBy(a, b, naturalOrder[T], options...)
	return merged
}

func naturalOrder[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CollateBy merges two slices sorted by cmp into one slice sorted by
// cmp, in O(n+m). The merge is stable: when the heads compare equal the
// element of the first input is pulled first.
func CollateBy[T any](a, b []T, cmp CompareFn[T], options ...CollateOption) ([]T, error) {
	if cmp == nil {
		return nil, errors.WithStack(ErrNilComparator)
	}

	cfg := collateConfig{includeDuplicates: true}
	for _, o := range options {
		o(&cfg)
	}

	merged := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if cmp(a[i], b[j]) <= 0 {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)

	if cfg.includeDuplicates {
		return merged, nil
	}

	deduped := make([]T, 0, len(merged))
	for idx, item := range merged {
		if idx == 0 || cmp(deduped[len(deduped)-1], item) != 0 {
			deduped = append(deduped, item)
		}
	}

	return deduped, nil
}
