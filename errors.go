package setops

import "github.com/pkg/errors"

var (
	ErrNilEquator    = errors.New("equator must not be nil")
	ErrNilComparator = errors.New("comparator must not be nil")
	ErrNilPredicate  = errors.New("predicate must not be nil")
)
