package domain

// Player is the canonical roster row exposed by the service. The dataset is
// read-only: rows are loaded once per process and never mutated.
//
// Height keeps the source's "feet-inches" string form (e.g. "6-9") because
// downstream sorting parses it; Number stays a string so jersey values like
// "00" survive verbatim. College and Salary are pointers to preserve the
// NULL/absent distinction on the wire.
type Player struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Team     string   `json:"team"`
	Number   string   `json:"number"`
	Position string   `json:"position"`
	Age      int      `json:"age"`
	Height   string   `json:"height"`
	Weight   float64  `json:"weight"`
	College  *string  `json:"college"`
	Salary   *float64 `json:"salary"`
}

// CollegeValue returns the college name or "" when unset.
func (p Player) CollegeValue() string {
	if p.College == nil {
		return ""
	}
	return *p.College
}

// HasSalary reports whether the row carries a salary value.
func (p Player) HasSalary() bool {
	return p.Salary != nil
}

// PositionStats summarizes one position within a team.
// AverageSalary and AverageAge are nil when no row contributed a value.
type PositionStats struct {
	Position      string   `json:"position"`
	PlayerCount   int      `json:"playerCount"`
	AverageSalary *float64 `json:"averageSalary"`
	AverageAge    *float64 `json:"averageAge"`
}

// TeamDetails is the payload returned by /api/teams/details/{team}.
type TeamDetails struct {
	Team  string          `json:"team"`
	Stats []PositionStats `json:"stats"`
}
