// Package viewstate turns an in-memory entity list plus user-selected
// criteria into what a screen should render. Every transform is pure: the
// input slice is never mutated and identical criteria over an unchanged
// list always produce the same output.
package viewstate

import (
	"sort"
	"strings"
	"time"
)

// Sentinel filter values meaning "no filter applied".
const (
	StatusAll = "All"
	NameAll   = "ALL"
)

// Sort keys.
const (
	SortLatest = "latest"
	SortOldest = "oldest"
	SortStatus = "status"
)

// DateLastWeek restricts to items created after now minus seven days.
const DateLastWeek = "last7days"

type Criteria struct {
	Status string `json:"status"`
	Search string `json:"search"`
	Sort   string `json:"sort"`
	Date   string `json:"date"` // YYYY-MM-DD or DateLastWeek
	Name   string `json:"name"`
}

// Fields maps criteria onto an entity type. Nil accessors skip the
// corresponding criterion.
type Fields[T any] struct {
	Status      func(T) string
	Title       func(T) string
	Description func(T) string
	EmployeeID  func(T) string
	Name        func(T) string
	CreatedAt   func(T) time.Time
}

// Apply filters and sorts items. The returned slice is always a fresh copy.
func Apply[T any](items []T, crit Criteria, fields Fields[T], now time.Time) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if matches(it, crit, fields, now) {
			out = append(out, it)
		}
	}
	sortItems(out, crit.Sort, fields)
	return out
}

func matches[T any](it T, crit Criteria, fields Fields[T], now time.Time) bool {
	if crit.Status != "" && !isSentinel(crit.Status) && fields.Status != nil {
		if fields.Status(it) != crit.Status {
			return false
		}
	}
	if crit.Search != "" && !searchMatch(it, crit.Search, fields) {
		return false
	}
	if crit.Date != "" && fields.CreatedAt != nil {
		created := fields.CreatedAt(it)
		if created.IsZero() {
			// unknown dates never match a date filter
			return false
		}
		if crit.Date == DateLastWeek {
			if !created.After(now.AddDate(0, 0, -7)) {
				return false
			}
		} else if created.Format("2006-01-02") != crit.Date {
			return false
		}
	}
	if crit.Name != "" && crit.Name != NameAll && fields.Name != nil {
		if fields.Name(it) != crit.Name {
			return false
		}
	}
	return true
}

// searchMatch - case-insensitive substring over title/description/employeeId
func searchMatch[T any](it T, search string, fields Fields[T]) bool {
	needle := strings.ToLower(search)
	for _, get := range []func(T) string{fields.Title, fields.Description, fields.EmployeeID} {
		if get == nil {
			continue
		}
		if strings.Contains(strings.ToLower(get(it)), needle) {
			return true
		}
	}
	return false
}

func sortItems[T any](items []T, key string, fields Fields[T]) {
	switch key {
	case SortLatest:
		if fields.CreatedAt == nil {
			return
		}
		sort.SliceStable(items, func(i, j int) bool {
			return fields.CreatedAt(items[i]).After(fields.CreatedAt(items[j]))
		})
	case SortOldest:
		if fields.CreatedAt == nil {
			return
		}
		sort.SliceStable(items, func(i, j int) bool {
			return fields.CreatedAt(items[i]).Before(fields.CreatedAt(items[j]))
		})
	case SortStatus:
		if fields.Status == nil {
			return
		}
		sort.SliceStable(items, func(i, j int) bool {
			return fields.Status(items[i]) < fields.Status(items[j])
		})
	}
}

// GroupByName buckets items by display name when the sentinel "ALL" is
// selected; any other name yields a single group holding its matches.
func GroupByName[T any](items []T, name string, get func(T) string) map[string][]T {
	groups := make(map[string][]T)
	if name == "" || name == NameAll {
		for _, it := range items {
			k := get(it)
			groups[k] = append(groups[k], it)
		}
		return groups
	}
	for _, it := range items {
		if get(it) == name {
			groups[name] = append(groups[name], it)
		}
	}
	return groups
}

func isSentinel(status string) bool {
	return strings.EqualFold(status, StatusAll)
}
