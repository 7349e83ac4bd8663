package model

import (
	"fmt"
	"strings"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterPending   Filter = "pending"
)

var Filters = []Filter{FilterAll, FilterCompleted, FilterPending}

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterCompleted, FilterPending:
		return true
	default:
		return false
	}
}

func (f Filter) Match(t Task) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	default:
		return true
	}
}

func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterCompleted
	case FilterCompleted:
		return FilterPending
	default:
		return FilterAll
	}
}

// Label is the capitalized form shown on filter tabs.
func (f Filter) Label() string {
	s := string(f)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func ParseFilter(raw string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(raw)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}
	return f, nil
}
