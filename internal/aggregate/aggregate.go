// Package aggregate implements the in-memory query core: bucket counting,
// bucket-to-rows filtering and the per-team position rollup. All functions
// are pure reads over a player slice; the SQL-backed catalog must produce
// identical results (the store packages share this package's ordering rules).
package aggregate

import (
	"sort"
	"strings"

	"nba-roster-service/internal/buckets"
	"nba-roster-service/internal/domain"
	"nba-roster-service/internal/sortutil"
)

// Aggregate counts players per bucket for one property.
//
// NULL salaries produce no bucket and are silently dropped; empty categorical
// values form a visible "(unspecified)" bucket like any other. Counting keys
// are normalized (trimmed, case-insensitive); the displayed label for each
// key is the byte-wise smallest trimmed variant seen, which keeps the output
// reproducible across backends. Ordering is natural ascending for
// categorical properties and fixed table order for salary.
//
// Zero matching rows yield an empty Series, not an error.
func Aggregate(players []domain.Player, property string) (domain.Series, error) {
	property, ok := domain.NormalizeProperty(property)
	if !ok {
		return domain.Series{}, domain.UnknownPropertyError(property)
	}

	counts := make(map[string]int)
	display := make(map[string]string)

	for _, p := range players {
		label, ok, err := buckets.LabelFor(p, property)
		if err != nil {
			return domain.Series{}, err
		}
		if !ok {
			continue
		}
		key := buckets.Normalize(label)
		counts[key]++
		if cur, seen := display[key]; !seen || label < cur {
			display[key] = label
		}
	}

	series := domain.Series{Kind: domain.SeriesCategorical, Property: property}
	if property == domain.PropertySalary {
		series.Kind = domain.SeriesBucketed
		for _, r := range buckets.SalaryRanges() {
			key := buckets.Normalize(r.Label)
			if n, ok := counts[key]; ok {
				series.Labels = append(series.Labels, r.Label)
				series.Data = append(series.Data, n)
			}
		}
		return series, nil
	}

	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return sortutil.NaturalLess(display[keys[i]], display[keys[j]])
	})

	for _, key := range keys {
		series.Labels = append(series.Labels, display[key])
		series.Data = append(series.Data, counts[key])
	}
	return series, nil
}

// FilterOptions carries the optional conjunctive constraints applied after
// the primary bucket match.
type FilterOptions struct {
	// Team restricts results to one team, matched with the same normalized
	// equality as the primary match. Empty means no restriction.
	Team string
}

// Filter returns the players belonging to one bucket, ordered by name. It
// inverts Aggregate exactly: for every (label, count) pair Aggregate emits,
// Filter returns count rows.
//
// An unknown salary label is a well-formed request for a bucket that cannot
// exist, so it yields an empty result rather than an error. An unknown
// property is rejected.
func Filter(players []domain.Player, property, label string, opts FilterOptions) ([]domain.Player, error) {
	property, ok := domain.NormalizeProperty(property)
	if !ok {
		return nil, domain.UnknownPropertyError(property)
	}

	var matches func(domain.Player) bool
	if property == domain.PropertySalary {
		r, known := buckets.RangeForLabel(label)
		if !known {
			return []domain.Player{}, nil
		}
		matches = func(p domain.Player) bool {
			return p.Salary != nil && *p.Salary >= r.Min && (!r.HasMax || *p.Salary <= r.Max)
		}
	} else {
		target := buckets.Normalize(label)
		matches = func(p domain.Player) bool {
			rowLabel, ok, err := buckets.LabelFor(p, property)
			if err != nil || !ok {
				return false
			}
			return buckets.Normalize(rowLabel) == target
		}
	}

	team := buckets.Normalize(opts.Team)
	result := make([]domain.Player, 0)
	for _, p := range players {
		if !matches(p) {
			continue
		}
		if team != "" && buckets.Normalize(p.Team) != team {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return sortutil.NaturalLess(result[i].Name, result[j].Name)
	})
	return result, nil
}

// Teams returns the distinct team names in natural order. Duplicate casing
// collapses to the byte-wise smallest variant; rows without a team are
// skipped (the sentinel bucket exists for charts, not for the team list).
func Teams(players []domain.Player) []string {
	display := make(map[string]string)
	for _, p := range players {
		trimmed := strings.TrimSpace(p.Team)
		if trimmed == "" {
			continue
		}
		key := buckets.Normalize(trimmed)
		if cur, seen := display[key]; !seen || trimmed < cur {
			display[key] = trimmed
		}
	}

	teams := make([]string, 0, len(display))
	for _, name := range display {
		teams = append(teams, name)
	}
	sort.Slice(teams, func(i, j int) bool { return sortutil.NaturalLess(teams[i], teams[j]) })
	return teams
}

// TeamDetails rolls up one team's roster by position: player count plus
// average salary and age. Averages skip unset values (NULL salary, zero age)
// and are nil when nothing contributed. An unknown team yields empty stats,
// matching the empty-result taxonomy.
func TeamDetails(players []domain.Player, team string) domain.TeamDetails {
	target := buckets.Normalize(team)

	type rollup struct {
		count       int
		salarySum   float64
		salaryCount int
		ageSum      int
		ageCount    int
	}
	groups := make(map[string]*rollup)
	display := make(map[string]string)

	for _, p := range players {
		if buckets.Normalize(p.Team) != target {
			continue
		}
		label, _, err := buckets.LabelFor(p, domain.PropertyPosition)
		if err != nil {
			continue
		}
		key := buckets.Normalize(label)
		g, ok := groups[key]
		if !ok {
			g = &rollup{}
			groups[key] = g
		}
		if cur, seen := display[key]; !seen || label < cur {
			display[key] = label
		}

		g.count++
		if p.Salary != nil {
			g.salarySum += *p.Salary
			g.salaryCount++
		}
		if p.Age > 0 {
			g.ageSum += p.Age
			g.ageCount++
		}
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return sortutil.NaturalLess(display[keys[i]], display[keys[j]])
	})

	details := domain.TeamDetails{Team: strings.TrimSpace(team), Stats: make([]domain.PositionStats, 0, len(keys))}
	for _, key := range keys {
		g := groups[key]
		stats := domain.PositionStats{Position: display[key], PlayerCount: g.count}
		if g.salaryCount > 0 {
			avg := g.salarySum / float64(g.salaryCount)
			stats.AverageSalary = &avg
		}
		if g.ageCount > 0 {
			avg := float64(g.ageSum) / float64(g.ageCount)
			stats.AverageAge = &avg
		}
		details.Stats = append(details.Stats, stats)
	}
	return details
}
