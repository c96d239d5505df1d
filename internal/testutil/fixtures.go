package testutil

import "nba-roster-service/internal/domain"

// SamplePlayer returns a minimal player fixture with the provided id and name.
func SamplePlayer(id, name string) domain.Player {
	salary := 2_500_000.0
	college := "UCLA"
	return domain.Player{
		ID:       id,
		Name:     name,
		Team:     "Boston Celtics",
		Number:   "0",
		Position: "PG",
		Age:      25,
		Height:   "6-2",
		Weight:   185,
		College:  &college,
		Salary:   &salary,
	}
}

// SampleRoster returns a small roster spanning two teams, with one player
// missing both college and salary.
func SampleRoster() []domain.Player {
	avery := SamplePlayer("1", "Avery Bradley")
	avery.Number = "0"

	jae := SamplePlayer("2", "Jae Crowder")
	jae.Position = "SF"
	jae.Number = "99"
	jae.Age = 26
	jae.Height = "6-6"
	jae.Weight = 235
	*jae.Salary = 6_796_117

	rudy := SamplePlayer("3", "Rudy Gobert")
	rudy.Team = "Utah Jazz"
	rudy.Position = "C"
	rudy.Number = "27"
	rudy.Age = 24
	rudy.Height = "7-1"
	rudy.Weight = 245
	rudy.College = nil
	rudy.Salary = nil

	return []domain.Player{avery, jae, rudy}
}
