// Package csvsource loads the roster dataset from a CSV export. The file is
// read once at startup; the resulting slice is the frozen snapshot every
// query runs against.
package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"nba-roster-service/internal/domain"
)

// Column headers recognized in the export, matched case-insensitively.
const (
	colName     = "name"
	colTeam     = "team"
	colNumber   = "number"
	colPosition = "position"
	colAge      = "age"
	colHeight   = "height"
	colWeight   = "weight"
	colCollege  = "college"
	colSalary   = "salary"
)

// Load reads and parses the roster file at path.
func Load(path string) ([]domain.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster file: %w", err)
	}
	defer f.Close()

	players, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse roster file %s: %w", path, err)
	}
	return players, nil
}

// Parse reads CSV rows into players. The header row drives column mapping,
// so column order in the export does not matter; unknown columns are
// skipped. Numeric fields parse defensively: malformed ages and weights
// degrade to unset rather than failing the load, and an empty or junk salary
// becomes NULL. Rows without an id column get a synthesized UUID.
func Parse(r io.Reader) ([]domain.Player, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index[colName]; !ok {
		return nil, fmt.Errorf("roster csv has no %q column", colName)
	}

	var players []domain.Player
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		field := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		p := domain.Player{
			ID:       field("id"),
			Name:     field(colName),
			Team:     field(colTeam),
			Number:   field(colNumber),
			Position: field(colPosition),
			Age:      parseAge(field(colAge)),
			Height:   field(colHeight),
			Weight:   parseWeight(field(colWeight)),
			College:  parseCollege(field(colCollege)),
			Salary:   parseSalary(field(colSalary)),
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.Name == "" {
			// A row with no name is an export artifact, not a player.
			continue
		}
		players = append(players, p)
	}

	return players, nil
}

// parseAge accepts both integer and float forms ("25", "25.0"); anything
// else is unset.
func parseAge(raw string) int {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return int(v)
}

func parseWeight(raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseCollege(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}

func parseSalary(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
