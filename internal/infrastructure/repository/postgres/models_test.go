package postgres

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/delilt/football-dashboard/internal/domain/match"
)

func TestMatchModelRoundTrip(t *testing.T) {
	t.Parallel()

	in := match.Match{
		ID:             7,
		HomeTeamID:     1,
		AwayTeamID:     2,
		FinalScore:     "2-1",
		FirstHalfScore: "1-0",
		MatchDate:      time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC),
		League:         "Süper Lig",
		Country:        "Türkiye",
		Season:         "2025/2026",
	}

	got := matchToModel(in).toDomain()
	if got != in {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, in)
	}
}

func TestMatchModelUnknownDateMapsToNull(t *testing.T) {
	t.Parallel()

	model := matchToModel(match.Match{ID: 7, HomeTeamID: 1, AwayTeamID: 2})
	if model.MatchDate.Valid {
		t.Fatalf("expected NULL match_date, got %+v", model.MatchDate)
	}

	back := model.toDomain()
	if back.HasDate() {
		t.Fatalf("expected unknown date after round trip, got %v", back.MatchDate)
	}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("sql.ErrNoRows must map to not found")
	}
	if isNotFound(errors.New("boom")) {
		t.Fatal("arbitrary errors are not not-found")
	}
}
