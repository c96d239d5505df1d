package csvsource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `Name,Team,Number,Position,Age,Height,Weight,College,Salary
Avery Bradley,Boston Celtics,0.0,PG,25.0,6-2,180.0,Texas,7730337.0
Jae Crowder,Boston Celtics,99.0,SF,25.0,6-6,235.0,Marquette,6796117.0
John Holland,Boston Celtics,30.0,SG,27.0,6-5,205.0,Boston University,
`

func TestParseMapsColumns(t *testing.T) {
	players, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}

	p := players[0]
	if p.Name != "Avery Bradley" || p.Team != "Boston Celtics" || p.Position != "PG" {
		t.Fatalf("unexpected player %+v", p)
	}
	if p.Age != 25 {
		t.Fatalf("expected float age to parse to 25, got %d", p.Age)
	}
	if p.Height != "6-2" {
		t.Fatalf("expected verbatim height, got %q", p.Height)
	}
	if p.Weight != 180 {
		t.Fatalf("expected weight 180, got %v", p.Weight)
	}
	if p.College == nil || *p.College != "Texas" {
		t.Fatalf("expected college Texas, got %+v", p.College)
	}
	if p.Salary == nil || *p.Salary != 7730337 {
		t.Fatalf("expected salary 7730337, got %+v", p.Salary)
	}
	if p.Number != "0.0" {
		t.Fatalf("expected jersey number kept verbatim, got %q", p.Number)
	}
}

func TestParseSynthesizesIDs(t *testing.T) {
	players, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]bool)
	for _, p := range players {
		if p.ID == "" {
			t.Fatalf("expected synthesized id for %s", p.Name)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestParseKeepsProvidedIDs(t *testing.T) {
	csv := "id,Name,Team\np-7,Jane Doe,Sparks\n"
	players, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if players[0].ID != "p-7" {
		t.Fatalf("expected provided id, got %q", players[0].ID)
	}
}

func TestParseEmptySalaryIsNull(t *testing.T) {
	players, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if players[2].Salary != nil {
		t.Fatalf("expected NULL salary, got %v", *players[2].Salary)
	}
}

func TestParseMalformedNumericsDegrade(t *testing.T) {
	csv := "Name,Age,Weight,Salary\nJunk Row,abc,heavy,lots\n"
	players, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("expected defensive parse, got error %v", err)
	}
	p := players[0]
	if p.Age != 0 || p.Weight != 0 || p.Salary != nil {
		t.Fatalf("expected degraded fields, got %+v", p)
	}
}

func TestParseSkipsNamelessRows(t *testing.T) {
	csv := "Name,Team\n,Ghost Team\nReal Player,Celtics\n"
	players, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 1 || players[0].Name != "Real Player" {
		t.Fatalf("expected only the named row, got %+v", players)
	}
}

func TestParseRequiresNameColumn(t *testing.T) {
	if _, err := Parse(strings.NewReader("Team,Age\nCeltics,25\n")); err == nil {
		t.Fatal("expected error for missing name column")
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "players.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	players, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
