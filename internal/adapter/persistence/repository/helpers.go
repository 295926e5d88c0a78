package repository

import (
	"sort"
	"strconv"
	"time"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// paginate sorts newest first and returns the requested 1-based page plus the total.
func paginate[T any](items []T, createdAt func(T) time.Time, page, limit int) ([]T, int) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	total := len(items)
	pages := (total + limit - 1) / limit
	if page > pages {
		return []T{}, total
	}
	from := (page - 1) * limit
	to := from + limit
	if to > total {
		to = total
	}
	return items[from:to], total
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
