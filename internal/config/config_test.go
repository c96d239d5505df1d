package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Source != SourceCSV {
		t.Fatalf("expected default source %s, got %s", SourceCSV, cfg.Source)
	}
	if cfg.CSVPath != defaultCSVPath {
		t.Fatalf("expected default csv path %s, got %s", defaultCSVPath, cfg.CSVPath)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("expected wildcard origins by default, got %v", cfg.CORSOrigins)
	}
	if cfg.Database.Host != defaultDBHost || cfg.Database.Port != defaultDBPort {
		t.Fatalf("unexpected default database config %+v", cfg.Database)
	}
	if cfg.Database.MigrationsPath != defaultMigrationsPath {
		t.Fatalf("expected default migrations path %s, got %s", defaultMigrationsPath, cfg.Database.MigrationsPath)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envSource, "MySQL")
	t.Setenv(envDBHost, "db.internal")
	t.Setenv(envDBPort, "3307")
	t.Setenv(envDBUser, "roster")
	t.Setenv(envDBPassword, "secret")
	t.Setenv(envDBName, "players")
	t.Setenv(envCORSOrigins, "http://localhost:3000, https://dashboard.example.com")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.Source != SourceMySQL {
		t.Fatalf("expected source lowered to %s, got %s", SourceMySQL, cfg.Source)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Port != 3307 {
		t.Fatalf("unexpected database config %+v", cfg.Database)
	}
	if cfg.Database.User != "roster" || cfg.Database.Password != "secret" || cfg.Database.Name != "players" {
		t.Fatalf("unexpected database credentials %+v", cfg.Database)
	}
	want := []string{"http://localhost:3000", "https://dashboard.example.com"}
	if len(cfg.CORSOrigins) != len(want) || cfg.CORSOrigins[0] != want[0] || cfg.CORSOrigins[1] != want[1] {
		t.Fatalf("unexpected origins %v", cfg.CORSOrigins)
	}
}

func TestSplitOriginsDropsBlanks(t *testing.T) {
	got := splitOrigins(" , http://a.example , ,http://b.example,")
	if len(got) != 2 || got[0] != "http://a.example" || got[1] != "http://b.example" {
		t.Fatalf("unexpected origins %v", got)
	}
}
