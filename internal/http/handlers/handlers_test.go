package handlers

import (
	"net/http"
	"strings"
	"testing"

	"nba-roster-service/internal/app/roster"
	"nba-roster-service/internal/domain"
	"nba-roster-service/internal/store"
	"nba-roster-service/internal/testutil"
	"nba-roster-service/internal/view"
)

func newTestHandler(t *testing.T, players []domain.Player) *Handler {
	t.Helper()
	st := store.NewMemoryStore()
	if players != nil {
		st.SetPlayers(players)
	}
	logger, _ := testutil.NewBufferLogger()
	return NewHandler(roster.NewService(st, nil), logger)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, testutil.SampleRoster())

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["status"] != "ok" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestReadyBeforeSeed(t *testing.T) {
	h := newTestHandler(t, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestStats(t *testing.T) {
	h := newTestHandler(t, testutil.SampleRoster())

	rr := testutil.Serve(http.HandlerFunc(h.Stats), http.MethodGet, "/api/players/stats/position", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	var series struct {
		Labels []string `json:"labels"`
		Data   []int    `json:"data"`
	}
	testutil.DecodeJSON(t, rr, &series)
	if len(series.Labels) != 3 || len(series.Data) != 3 {
		t.Fatalf("expected 3 position buckets, got %+v", series)
	}
}

func TestStatsUnknownPropertyIsBadRequest(t *testing.T) {
	h := newTestHandler(t, testutil.SampleRoster())

	rr := testutil.Serve(http.HandlerFunc(h.Stats), http.MethodGet, "/api/players/stats/shoe_size", nil)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestStatsMissingProperty(t *testing.T) {
	h := newTestHandler(t, testutil.SampleRoster())

	rr := testutil.Serve(http.HandlerFunc(h.Stats), http.MethodGet, "/api/players/stats/", nil)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestStatsRejectsPost(t *testing.T) {
	h := newTestHandler(t, testutil.SampleRoster())

	rr := testutil.Serve(http.HandlerFunc(h.Stats), http.MethodPost, "/api/players/stats/position", nil)

	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestFilter(t *testing.T) {
	h := newTestHandler(t, testutil.SampleRoster())

	rr := testutil.Serve(http.HandlerFunc(h.Filter), http.MethodGet, "/api/players/filter?property=position&value=PG", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	var players []domain.Player
	testutil.DecodeJSON(t, rr, &players)
	if len(players) != 1 || players[0].Name != "Avery Bradley" {
		t.Fatalf("unexpected players %+v", players)
	}
}

func TestFilterWithTeamConstraint(t *testing.T) {
	h := newTestHandler(t, testutil.SampleRoster())

	rr := testutil.Serve(http.HandlerFunc(h.Filter), http.MethodGet,
		"/api/players/filter?property=position&value=C&team=Boston+Celtics", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	var players []domain.Player
	testutil.DecodeJSON(t, rr, &players)
	if len(players) != 0 {
		t.Fatalf("expected no Celtics centers, got %+v", players)
	}
}

func TestFilterMissingProperty(t *testing.T) {
	h := newTestHandler(t, testutil.SampleRoster())

	rr := testutil.Serve(http.HandlerFunc(h.Filter), http.MethodGet, "/api/players/filter?value=PG", nil)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestFilterUnknownSalaryLabelIsEmpty(t *testing.T) {
	h := newTestHandler(t, testutil.SampleRoster())

	rr := testutil.Serve(http.HandlerFunc(h.Filter), http.MethodGet,
		"/api/players/filter?property=salary&value=nonsense", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	var players []domain.Player
	testutil.DecodeJSON(t, rr, &players)
	if len(players) != 0 {
		t.Fatalf("expected empty result for unknown range label, got %+v", players)
	}
}

func TestAll(t *testing.T) {
	h := newTestHandler(t, testutil.SampleRoster())

	rr := testutil.Serve(http.HandlerFunc(h.All), http.MethodGet, "/api/players/all", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	var players []domain.Player
	testutil.DecodeJSON(t, rr, &players)
	if len(players) != 3 {
		t.Fatalf("expected full roster, got %d players", len(players))
	}
}

func TestView(t *testing.T) {
	h := newTestHandler(t, testutil.SampleRoster())

	rr := testutil.Serve(http.HandlerFunc(h.View), http.MethodGet,
		"/api/players/view?q=celtics&sort=name&order=desc&page=1", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	var page view.Page
	testutil.DecodeJSON(t, rr, &page)
	if page.Total != 2 || page.TotalPages != 1 {
		t.Fatalf("unexpected page %+v", page)
	}
	if page.Players[0].Name != "Jae Crowder" {
		t.Fatalf("expected descending order, got %q first", page.Players[0].Name)
	}
}

func TestViewRejectsBadParams(t *testing.T) {
	h := newTestHandler(t, testutil.SampleRoster())

	for _, target := range []string{
		"/api/players/view?order=sideways",
		"/api/players/view?page=0",
		"/api/players/view?page=two",
		"/api/players/view?sort=shoe_size",
	} {
		rr := testutil.Serve(http.HandlerFunc(h.View), http.MethodGet, target, nil)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", target, rr.Code)
		}
	}
}

func TestExport(t *testing.T) {
	h := newTestHandler(t, testutil.SampleRoster())

	rr := testutil.Serve(http.HandlerFunc(h.Export), http.MethodGet, "/api/players/export", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if rr.Body.Len() == 0 {
		t.Fatal("expected workbook bytes")
	}
}

func TestTeams(t *testing.T) {
	h := newTestHandler(t, testutil.SampleRoster())

	rr := testutil.Serve(http.HandlerFunc(h.Teams), http.MethodGet, "/api/teams/list", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	var teams []string
	testutil.DecodeJSON(t, rr, &teams)
	if len(teams) != 2 || teams[0] != "Boston Celtics" {
		t.Fatalf("unexpected teams %v", teams)
	}
}

func TestTeamDetails(t *testing.T) {
	h := newTestHandler(t, testutil.SampleRoster())

	rr := testutil.Serve(http.HandlerFunc(h.TeamDetails), http.MethodGet, "/api/teams/details/Boston%20Celtics", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	var details domain.TeamDetails
	testutil.DecodeJSON(t, rr, &details)
	if details.Team != "Boston Celtics" || len(details.Stats) != 2 {
		t.Fatalf("unexpected details %+v", details)
	}
}

func TestChart(t *testing.T) {
	h := newTestHandler(t, testutil.SampleRoster())

	rr := testutil.Serve(http.HandlerFunc(h.Chart), http.MethodGet, "/charts/position", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(rr.Body.String(), "Players by position") {
		t.Fatal("expected chart markup in response")
	}
}

func TestSourceUnavailableIsBadGateway(t *testing.T) {
	h := newTestHandler(t, nil)

	rr := testutil.Serve(http.HandlerFunc(h.All), http.MethodGet, "/api/players/all", nil)

	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}
