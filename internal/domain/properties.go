package domain

import "strings"

// Property names accepted by the stats and filter endpoints. Anything else is
// a caller error, rejected before the data source is touched.
const (
	PropertyAge      = "age"
	PropertyPosition = "position"
	PropertyTeam     = "team"
	PropertyCollege  = "college"
	PropertyHeight   = "height"
	PropertyNumber   = "number"
	PropertyWeight   = "weight"
	PropertySalary   = "salary"
)

var allowedProperties = []string{
	PropertyAge,
	PropertyPosition,
	PropertyTeam,
	PropertyCollege,
	PropertyHeight,
	PropertyNumber,
	PropertyWeight,
	PropertySalary,
}

// AllowedProperties returns the queryable property names in a fixed order.
func AllowedProperties() []string {
	out := make([]string, len(allowedProperties))
	copy(out, allowedProperties)
	return out
}

// NormalizeProperty lowercases and trims a caller-supplied property name and
// reports whether it is queryable.
func NormalizeProperty(property string) (string, bool) {
	p := strings.ToLower(strings.TrimSpace(property))
	for _, allowed := range allowedProperties {
		if p == allowed {
			return p, true
		}
	}
	return p, false
}
