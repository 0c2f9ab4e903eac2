package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/delilt/football-dashboard/internal/infrastructure/repository/memory"
	"github.com/delilt/football-dashboard/internal/platform/id"
	"github.com/delilt/football-dashboard/internal/platform/logging"
	"github.com/delilt/football-dashboard/internal/usecase"
)

const testJobToken = "test-job-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())

	teamService := usecase.NewTeamService(teamRepo, nil)
	matchService := usecase.NewMatchService(teamRepo, matchRepo)
	statsService := usecase.NewStatsService(teamRepo, matchRepo, nil)
	dashboardService := usecase.NewDashboardService(teamService, statsService)
	syncService := usecase.NewSyncService(nil, teamRepo, matchRepo, nil, nil, 1, logging.NewNop())

	handler := NewHandler(teamService, matchService, statsService, dashboardService, syncService, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), id.NewRandomGenerator(), nil, testJobToken)
}

func doRequest(t *testing.T, router http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()

	var envelope struct {
		APIVersion string          `json:"apiVersion"`
		Data       json.RawMessage `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if envelope.APIVersion != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %q", envelope.APIVersion)
	}
	if err := sonic.Unmarshal(envelope.Data, target); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_ListTeams(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/teams/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var teams []teamDTO
	decodeData(t, rec, &teams)
	if len(teams) != 6 {
		t.Fatalf("expected 6 seeded teams, got %d", len(teams))
	}
	if teams[0].ID != 1 || teams[0].Name != "Galatasaray" {
		t.Fatalf("unexpected first team: %+v", teams[0])
	}
}

func TestRouter_ListTeamsWithSearch(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/teams/?search=gala")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var teams []teamDTO
	decodeData(t, rec, &teams)
	if len(teams) != 1 || teams[0].Name != "Galatasaray" {
		t.Fatalf("expected only Galatasaray, got %+v", teams)
	}
}

func TestRouter_GetTeam(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/teams/2")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var team teamDTO
	decodeData(t, rec, &team)
	if team.Name != "Fenerbahçe" {
		t.Fatalf("unexpected team: %+v", team)
	}
}

func TestRouter_GetTeamNotFound(t *testing.T) {
	router := newTestRouter(t)

	if rec := doRequest(t, router, http.MethodGet, "/teams/999"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouter_GetTeamBadID(t *testing.T) {
	router := newTestRouter(t)

	if rec := doRequest(t, router, http.MethodGet, "/teams/abc"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouter_ListMatchesFilteredAndSorted(t *testing.T) {
	router := newTestRouter(t)

	query := url.Values{}
	query.Set("league", "Süper Lig")
	query.Set("sort", "date")

	rec := doRequest(t, router, http.MethodGet, "/matches/?"+query.Encode())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var matches []matchDTO
	decodeData(t, rec, &matches)
	if len(matches) != 7 {
		t.Fatalf("expected 7 league matches, got %d", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].MatchDate < matches[i-1].MatchDate {
			t.Fatalf("matches not in date order at index %d: %+v", i, matches)
		}
	}
}

func TestRouter_ListMatchesEmptyResultIsOK(t *testing.T) {
	router := newTestRouter(t)

	query := url.Values{}
	query.Set("league", "Bundesliga")

	rec := doRequest(t, router, http.MethodGet, "/matches/?"+query.Encode())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty result, got %d", rec.Code)
	}

	var matches []matchDTO
	decodeData(t, rec, &matches)
	if len(matches) != 0 {
		t.Fatalf("expected no matches, got %+v", matches)
	}
}

func TestRouter_ListMatchesBadDate(t *testing.T) {
	router := newTestRouter(t)

	if rec := doRequest(t, router, http.MethodGet, "/matches/?date_from=not-a-date"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouter_GetDashboard(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/dashboard/?team_id=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var dashboard dashboardDTO
	decodeData(t, rec, &dashboard)
	if dashboard.Team.Name != "Galatasaray" {
		t.Fatalf("unexpected dashboard team: %+v", dashboard.Team)
	}
	if dashboard.Record.Played != 4 || dashboard.Record.Wins != 3 || dashboard.Record.Draws != 1 {
		t.Fatalf("unexpected record: %+v", dashboard.Record)
	}
	if len(dashboard.ResultBreakdown) != 3 || len(dashboard.GoalsBreakdown) != 2 {
		t.Fatalf("unexpected breakdowns: %+v", dashboard)
	}
	if len(dashboard.MonthlyTrend) == 0 {
		t.Fatal("expected a monthly trend")
	}
}

func TestRouter_GetDashboardRequiresTeamID(t *testing.T) {
	router := newTestRouter(t)

	if rec := doRequest(t, router, http.MethodGet, "/dashboard/"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without team_id, got %d", rec.Code)
	}
}

func TestRouter_StatsEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("team table", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/stats/teams/")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var rows []teamRowDTO
		decodeData(t, rec, &rows)
		if len(rows) != 6 {
			t.Fatalf("expected a row per team, got %d", len(rows))
		}
		if rows[0].TeamID != 1 {
			t.Fatalf("expected Galatasaray leading on goals, got %+v", rows[0])
		}
	})

	t.Run("win loss", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/stats/teams/winloss/")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var rows []teamRowDTO
		decodeData(t, rec, &rows)
		if rows[0].Wins < rows[len(rows)-1].Wins {
			t.Fatalf("expected wins-descending order, got %+v", rows)
		}
	})

	t.Run("top goal matches with limit", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/stats/matches/top5goals/?limit=2")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var rows []matchGoalsDTO
		decodeData(t, rec, &rows)
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if rows[0].TotalGoals < rows[1].TotalGoals {
			t.Fatalf("expected goals-descending order, got %+v", rows)
		}
	})

	t.Run("top goal matches bad limit", func(t *testing.T) {
		if rec := doRequest(t, router, http.MethodGet, "/stats/matches/top5goals/?limit=0"); rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("top goal matches limit over the cap", func(t *testing.T) {
		if rec := doRequest(t, router, http.MethodGet, "/stats/matches/top5goals/?limit=5000"); rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("league match counts", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/stats/leagues/matchcount/")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var rows []leagueCountDTO
		decodeData(t, rec, &rows)
		if len(rows) != 2 || rows[0].League != "Süper Lig" || rows[0].Matches != 7 {
			t.Fatalf("unexpected league counts: %+v", rows)
		}
	})

	t.Run("average goals", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/stats/teams/avggoals/")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var rows []teamAverageDTO
		decodeData(t, rec, &rows)
		if len(rows) != 6 {
			t.Fatalf("expected a row per team, got %d", len(rows))
		}
	})

	t.Run("count by date", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/stats/matches/countbydate/")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var rows []dateCountDTO
		decodeData(t, rec, &rows)
		if len(rows) == 0 {
			t.Fatal("expected date buckets")
		}
	})

	t.Run("top scorers", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/stats/teams/topscorers/?limit=3")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var rows []teamGoalsDTO
		decodeData(t, rec, &rows)
		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(rows))
		}
	})
}

func TestRouter_TeamRecordAndTrend(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/teams/1/record")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var record recordDTO
	decodeData(t, rec, &record)
	if record.Played != 4 || record.GoalsFor != 8 {
		t.Fatalf("unexpected record: %+v", record)
	}

	rec = doRequest(t, router, http.MethodGet, "/teams/1/trend")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var trend []monthGoalsDTO
	decodeData(t, rec, &trend)
	if len(trend) != 3 {
		t.Fatalf("expected 3 monthly buckets, got %+v", trend)
	}
	if trend[0].Month != "2025-08" {
		t.Fatalf("expected trend to start in 2025-08, got %+v", trend[0])
	}
}

func TestRouter_InternalSyncRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	if rec := doRequest(t, router, http.MethodPost, "/internal/jobs/sync"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/internal/jobs/sync", nil)
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	// The test wiring has no upstream fetcher, so a valid token reaches the
	// sync service and gets its dependency error back.
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 with no fetcher configured, got %d", rec.Code)
	}
}
