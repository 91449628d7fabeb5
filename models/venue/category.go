package venue

import (
	"errors"
	"fmt"
)

// Category is the kind of venue.
type Category string

const (
	CategoryGym          Category = "gym"
	CategoryWellnessClub Category = "wellness-club"
)

func (c Category) Valid() bool {
	return c == CategoryGym || c == CategoryWellnessClub
}

// TypeFilter restricts discovery results to a category.
type TypeFilter string

const (
	FilterAll          TypeFilter = "all"
	FilterGym          TypeFilter = TypeFilter(CategoryGym)
	FilterWellnessClub TypeFilter = TypeFilter(CategoryWellnessClub)
)

var ErrInvalidTypeFilter = errors.New("invalid type filter")

// ParseTypeFilter maps a query argument onto a TypeFilter. Empty means all.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch TypeFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterGym, FilterWellnessClub:
		return TypeFilter(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTypeFilter, s)
}

// Matches reports whether a venue of category c passes the filter.
func (f TypeFilter) Matches(c Category) bool {
	return f == FilterAll || Category(f) == c
}
