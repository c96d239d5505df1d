package view

import (
	"regexp"
	"strconv"
	"strings"

	"nba-roster-service/internal/domain"
	"nba-roster-service/internal/sortutil"
)

var heightPattern = regexp.MustCompile(`^\d+-\d+$`)

// Compare orders two players by a column. Unset values (empty strings, zero
// age/weight, NULL salary, unparsable height) always sort after set values
// regardless of direction; the direction only flips the order of set values.
func Compare(a, b domain.Player, key string, order Order) int {
	av, aNull := sortValue(a, key)
	bv, bNull := sortValue(b, key)

	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return 1
	case bNull:
		return -1
	}

	var c int
	if av.isNumber && bv.isNumber {
		switch {
		case av.number < bv.number:
			c = -1
		case av.number > bv.number:
			c = 1
		}
	} else {
		c = sortutil.Natural(av.text, bv.text)
	}

	if order == Desc {
		return -c
	}
	return c
}

type columnValue struct {
	text     string
	number   float64
	isNumber bool
}

func sortValue(p domain.Player, key string) (columnValue, bool) {
	switch key {
	case "age":
		if p.Age <= 0 {
			return columnValue{}, true
		}
		return columnValue{number: float64(p.Age), isNumber: true}, false
	case "weight":
		if p.Weight <= 0 {
			return columnValue{}, true
		}
		return columnValue{number: p.Weight, isNumber: true}, false
	case "salary":
		if p.Salary == nil {
			return columnValue{}, true
		}
		return columnValue{number: *p.Salary, isNumber: true}, false
	case "height":
		inches, ok := HeightInches(p.Height)
		if !ok {
			return columnValue{}, true
		}
		return columnValue{number: float64(inches), isNumber: true}, false
	case "name":
		return textValue(p.Name)
	case "team":
		return textValue(p.Team)
	case "number":
		return textValue(p.Number)
	case "position":
		return textValue(p.Position)
	case "college":
		return textValue(p.CollegeValue())
	default:
		return columnValue{}, true
	}
}

func textValue(raw string) (columnValue, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return columnValue{}, true
	}
	return columnValue{text: trimmed}, false
}

// HeightInches converts a "feet-inches" string to total inches. Malformed
// values (missing, wrong shape, junk digits) report ok=false so callers can
// sort them last instead of failing.
func HeightInches(height string) (int, bool) {
	trimmed := strings.TrimSpace(height)
	if !heightPattern.MatchString(trimmed) {
		return 0, false
	}
	parts := strings.SplitN(trimmed, "-", 2)
	feet, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	inches, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return feet*12 + inches, true
}
