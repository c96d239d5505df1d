// Package view derives the displayed table page from a full in-memory roster
// plus the UI state (search term, sort key/direction, page number). The
// pipeline recomputes from scratch on every input change: search filter,
// stable sort, page clamp, slice. No network access and no caching.
package view

import (
	"sort"
	"strconv"
	"strings"

	"nba-roster-service/internal/domain"
)

// PageSize is the fixed number of rows per table page.
const PageSize = 15

// Order is a sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Options is the UI state the derived view is computed from.
type Options struct {
	// Search is matched as a lowercased trimmed substring against name,
	// team, position, stringified age and stringified jersey number.
	Search string
	// SortKey selects the column to sort by; empty keeps source order.
	SortKey string
	// SortOrder defaults to ascending when unset.
	SortOrder Order
	// Page is 1-based and clamped into the valid range after filtering.
	Page int
}

// Page is one derived slice of the roster plus the pagination bookkeeping
// the controls need.
type Page struct {
	Players    []domain.Player `json:"players"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
	Total      int             `json:"total"`
}

var sortKeys = map[string]bool{
	"name":     true,
	"team":     true,
	"number":   true,
	"position": true,
	"age":      true,
	"height":   true,
	"weight":   true,
	"college":  true,
	"salary":   true,
}

// ValidSortKey reports whether key names a sortable column.
func ValidSortKey(key string) bool {
	return sortKeys[strings.ToLower(strings.TrimSpace(key))]
}

// Derive runs the full pipeline. Cheap enough to run per keystroke for
// rosters in the low thousands: one O(n) filter plus an O(n log n) sort.
func Derive(players []domain.Player, opts Options) Page {
	filtered := applySearch(players, opts.Search)

	if key := strings.ToLower(strings.TrimSpace(opts.SortKey)); sortKeys[key] {
		order := opts.SortOrder
		if order != Desc {
			order = Asc
		}
		sort.SliceStable(filtered, func(i, j int) bool {
			return Compare(filtered[i], filtered[j], key, order) < 0
		})
	}

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize

	page := opts.Page
	if page < 1 {
		page = 1
	}
	if last := totalPages; page > last {
		if last < 1 {
			last = 1
		}
		page = last
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Players:    filtered[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}

func applySearch(players []domain.Player, term string) []domain.Player {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]domain.Player, 0, len(players))
	if needle == "" {
		out = append(out, players...)
		return out
	}

	for _, p := range players {
		if matchesSearch(p, needle) {
			out = append(out, p)
		}
	}
	return out
}

func matchesSearch(p domain.Player, needle string) bool {
	age := ""
	if p.Age > 0 {
		age = strconv.Itoa(p.Age)
	}
	fields := []string{p.Name, p.Team, p.Position, age, p.Number}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
