// Package buckets maps raw player field values to the chart group labels the
// dashboard displays. Categorical properties label as their trimmed value
// (empty collapses to a sentinel); salary labels through a fixed range table.
//
// Aggregation and filtering must agree exactly on these rules, so both go
// through this package: a label emitted while counting is always resolvable
// back to the rows that produced it.
package buckets

import (
	"math"
	"strconv"
	"strings"

	"nba-roster-service/internal/domain"
)

// SentinelUnspecified groups empty, whitespace-only and NULL categorical
// values. NULL salaries never appear under it; they are dropped from salary
// aggregation entirely.
const SentinelUnspecified = "(unspecified)"

// SalaryRange is one row of the fixed salary bucket table. Bounds are
// inclusive; HasMax is false for the open-ended top bucket.
type SalaryRange struct {
	Label  string
	Min    float64
	Max    float64
	HasMax bool
}

// The five ranges are ordered, mutually exclusive and exhaustive over
// non-null salaries. Chart ordering for salary follows this table, never the
// alphabetical label order used for categorical properties.
var salaryRanges = []SalaryRange{
	{Label: "< 1M", Min: 0, Max: 999_999, HasMax: true},
	{Label: "1M - 5M", Min: 1_000_000, Max: 4_999_999, HasMax: true},
	{Label: "5M - 10M", Min: 5_000_000, Max: 9_999_999, HasMax: true},
	{Label: "10M - 20M", Min: 10_000_000, Max: 19_999_999, HasMax: true},
	{Label: "20M+", Min: 20_000_000, Max: math.Inf(1)},
}

// SalaryRanges returns a copy of the fixed range table in display order.
func SalaryRanges() []SalaryRange {
	out := make([]SalaryRange, len(salaryRanges))
	copy(out, salaryRanges)
	return out
}

// SalaryLabel returns the bucket label for a non-null salary. The table is
// exhaustive, so every value down to 0 matches; negative values clamp into
// the first bucket rather than vanishing from the chart.
func SalaryLabel(salary float64) string {
	for _, r := range salaryRanges {
		if salary >= r.Min && (!r.HasMax || salary <= r.Max) {
			return r.Label
		}
	}
	return salaryRanges[0].Label
}

// RangeForLabel resolves a salary bucket label back to its bounds. Unknown
// labels report ok=false; callers treat that as an empty result, not an
// error, to distinguish a well-formed-but-unused bucket from a malformed
// property name.
func RangeForLabel(label string) (SalaryRange, bool) {
	needle := Normalize(label)
	for _, r := range salaryRanges {
		if Normalize(r.Label) == needle {
			return r, true
		}
	}
	return SalaryRange{}, false
}

// Normalize applies the single normalization rule used on both the
// aggregation and filter sides: trimmed, case-insensitive.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// LabelFor computes the bucket label for one player and property.
// The second return is false when the row produces no label at all, which
// happens only for NULL salaries. Unknown properties are a configuration
// error.
func LabelFor(p domain.Player, property string) (string, bool, error) {
	switch property {
	case domain.PropertySalary:
		if p.Salary == nil {
			return "", false, nil
		}
		return SalaryLabel(*p.Salary), true, nil
	case domain.PropertyAge:
		if p.Age <= 0 {
			return SentinelUnspecified, true, nil
		}
		return strconv.Itoa(p.Age), true, nil
	case domain.PropertyWeight:
		if p.Weight <= 0 {
			return SentinelUnspecified, true, nil
		}
		return strconv.FormatFloat(p.Weight, 'f', -1, 64), true, nil
	case domain.PropertyPosition:
		return categorical(p.Position), true, nil
	case domain.PropertyTeam:
		return categorical(p.Team), true, nil
	case domain.PropertyCollege:
		return categorical(p.CollegeValue()), true, nil
	case domain.PropertyHeight:
		return categorical(p.Height), true, nil
	case domain.PropertyNumber:
		return categorical(p.Number), true, nil
	default:
		return "", false, domain.UnknownPropertyError(property)
	}
}

func categorical(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return SentinelUnspecified
	}
	return trimmed
}
