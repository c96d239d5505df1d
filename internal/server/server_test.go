package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nba-roster-service/internal/app/roster"
	"nba-roster-service/internal/config"
	"nba-roster-service/internal/store"
	"nba-roster-service/internal/store/mysqlstore"
	"nba-roster-service/internal/testutil"
)

const sampleCSV = `name,team,number,position,age,height,weight,college,salary
Avery Bradley,Boston Celtics,0,PG,25,6-2,180,Texas,7730337
Jae Crowder,Boston Celtics,99,SF,25,6-6,235,Marquette,6796117
Rudy Gobert,Utah Jazz,27,C,24,7-1,245,,
`

func writeSampleCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "players.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func testConfig(t *testing.T) config.Config {
	return config.Config{
		Port:        "0",
		Source:      config.SourceCSV,
		CSVPath:     writeSampleCSV(t),
		CORSOrigins: []string{"*"},
	}
}

func TestNewServesRoutes(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv, err := New(context.Background(), testConfig(t), logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(srv.Handler(), http.MethodGet, "/api/players/stats/team", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), "Boston Celtics") {
		t.Fatalf("expected seeded teams in stats, got %s", rr.Body.String())
	}
}

func TestNewMountsMetricsEndpoint(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	cfg := testConfig(t)
	cfg.Metrics = config.MetricsConfig{Enabled: true, ServiceName: "test"}

	srv, err := New(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/metrics", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestNewFailsOnMissingCSV(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	cfg := testConfig(t)
	cfg.CSVPath = filepath.Join(t.TempDir(), "missing.csv")

	if _, err := New(context.Background(), cfg, logger); err == nil {
		t.Fatal("expected error for missing seed file")
	}
}

func TestBuildCatalogUnknownSource(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	cfg := testConfig(t)
	cfg.Source = "carrier-pigeon"

	if _, err := buildCatalog(context.Background(), cfg, logger); err == nil {
		t.Fatal("expected error for unknown source")
	}
}

func TestBuildCatalogMySQLUsesOpener(t *testing.T) {
	orig := openMySQL
	t.Cleanup(func() { openMySQL = orig })

	var gotCfg mysqlstore.Config
	stub := store.NewMemoryStore()
	stub.SetPlayers(testutil.SampleRoster())
	openMySQL = func(ctx context.Context, cfg mysqlstore.Config) (roster.Catalog, error) {
		gotCfg = cfg
		return stub, nil
	}

	logger, _ := testutil.NewBufferLogger()
	cfg := testConfig(t)
	cfg.Source = config.SourceMySQL
	cfg.Database = config.DatabaseConfig{Host: "db", Port: 3307, User: "u", Password: "p", Name: "roster", MigrationsPath: "migrations"}

	catalog, err := buildCatalog(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog != stub {
		t.Fatal("expected the opener's catalog back")
	}
	if gotCfg.Host != "db" || gotCfg.Port != 3307 || gotCfg.DBName != "roster" {
		t.Fatalf("unexpected mysql config %+v", gotCfg)
	}
}

type fakeHTTPServer struct {
	shutdowns chan struct{}
}

func (f *fakeHTTPServer) ListenAndServe() error { return http.ErrServerClosed }
func (f *fakeHTTPServer) Shutdown(context.Context) error {
	f.shutdowns <- struct{}{}
	return nil
}
func (f *fakeHTTPServer) Addr() string          { return ":0" }
func (f *fakeHTTPServer) Handler() http.Handler { return http.NewServeMux() }

func TestRunShutsDownOnCancel(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	catalog := store.NewMemoryStore()
	catalog.SetPlayers(nil)
	fake := &fakeHTTPServer{shutdowns: make(chan struct{}, 1)}

	srv := &Server{
		cfg:        config.Config{Port: "0"},
		logger:     logger,
		catalog:    catalog,
		httpServer: fake,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected Run to return after cancellation")
	}
	select {
	case <-fake.shutdowns:
	default:
		t.Fatal("expected http server shutdown")
	}
	if !strings.Contains(buf.String(), "shutdown complete") {
		t.Fatalf("expected shutdown log, got %s", buf.String())
	}
}
