package mysqlstore

import (
	"fmt"
	"strings"

	"nba-roster-service/internal/buckets"
	"nba-roster-service/internal/domain"
)

// Column names match the allowed property names one-to-one, and every
// property is validated against the allow-list before it reaches these
// builders, so interpolating the column name is safe.

const playerColumns = "id, name, team, number, position, age, height, weight, college, salary"

// unsetPredicate yields the SQL test for a value that belongs in the sentinel
// bucket. Numeric columns store zero where the roster sheet left the field
// blank, so zero and negative values count as unset alongside NULL.
func unsetPredicate(property string) string {
	switch property {
	case domain.PropertyAge, domain.PropertyWeight:
		return fmt.Sprintf("(%[1]s IS NULL OR %[1]s <= 0)", property)
	default:
		return fmt.Sprintf("(%[1]s IS NULL OR TRIM(%[1]s) = '')", property)
	}
}

// categoricalAggregateSQL groups the table by the normalized value of one
// column. NULL and blank collapse into the sentinel bucket; MIN over the
// group picks a deterministic display label among case variants.
func categoricalAggregateSQL(property string) (string, []any) {
	query := fmt.Sprintf(`SELECT MIN(t.label) AS label, COUNT(*) AS count
FROM (SELECT CASE WHEN %[2]s THEN ? ELSE TRIM(%[1]s) END AS label FROM players) t
GROUP BY LOWER(t.label)`, property, unsetPredicate(property))
	return query, []any{buckets.SentinelUnspecified}
}

// salaryAggregateSQL buckets non-NULL salaries with a CASE ladder built from
// the shared range table.
func salaryAggregateSQL() (string, []any) {
	var (
		b    strings.Builder
		args []any
	)
	b.WriteString("SELECT CASE\n")
	for _, r := range buckets.SalaryRanges() {
		if r.HasMax {
			b.WriteString("  WHEN salary >= ? AND salary <= ? THEN ?\n")
			args = append(args, r.Min, r.Max, r.Label)
		} else {
			b.WriteString("  WHEN salary >= ? THEN ?\n")
			args = append(args, r.Min, r.Label)
		}
	}
	b.WriteString("END AS label, COUNT(*) AS count\n")
	b.WriteString("FROM players\nWHERE salary IS NOT NULL\nGROUP BY label")
	return b.String(), args
}

// categoricalFilterSQL selects the rows of one categorical bucket, with an
// optional team conjunct.
func categoricalFilterSQL(property, label, team string) (string, []any) {
	var (
		b    strings.Builder
		args []any
	)
	fmt.Fprintf(&b, "SELECT %s FROM players WHERE ", playerColumns)
	if buckets.Normalize(label) == buckets.Normalize(buckets.SentinelUnspecified) {
		b.WriteString(unsetPredicate(property))
	} else {
		if property == domain.PropertyAge || property == domain.PropertyWeight {
			fmt.Fprintf(&b, "NOT %s AND ", unsetPredicate(property))
		}
		fmt.Fprintf(&b, "LOWER(TRIM(%s)) = ?", property)
		args = append(args, buckets.Normalize(label))
	}
	args = appendTeamClause(&b, args, team)
	b.WriteString(" ORDER BY name ASC")
	return b.String(), args
}

// salaryFilterSQL selects the rows of one salary range.
func salaryFilterSQL(r buckets.SalaryRange, team string) (string, []any) {
	var (
		b    strings.Builder
		args []any
	)
	fmt.Fprintf(&b, "SELECT %s FROM players WHERE salary IS NOT NULL AND salary >= ?", playerColumns)
	args = append(args, r.Min)
	if r.HasMax {
		b.WriteString(" AND salary <= ?")
		args = append(args, r.Max)
	}
	args = appendTeamClause(&b, args, team)
	b.WriteString(" ORDER BY name ASC")
	return b.String(), args
}

func appendTeamClause(b *strings.Builder, args []any, team string) []any {
	if strings.TrimSpace(team) == "" {
		return args
	}
	b.WriteString(" AND LOWER(TRIM(team)) = ?")
	return append(args, buckets.Normalize(team))
}
