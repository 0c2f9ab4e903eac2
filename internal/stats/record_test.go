package stats

import (
	"testing"

	"github.com/delilt/football-dashboard/internal/domain/match"
)

func TestComputeRecord(t *testing.T) {
	t.Run("home and away perspectives", func(t *testing.T) {
		matches := []match.Match{
			{ID: 1, HomeTeamID: 1, AwayTeamID: 2, FinalScore: "3-1"},
			{ID: 2, HomeTeamID: 2, AwayTeamID: 1, FinalScore: "0-0"},
		}

		got := ComputeRecord(matches, 1)
		if got.Wins != 1 || got.Draws != 1 || got.Losses != 0 {
			t.Fatalf("unexpected tally: %+v", got)
		}
		if got.GoalsFor != 3 || got.GoalsAgainst != 1 {
			t.Fatalf("unexpected goals: %+v", got)
		}
	})

	t.Run("tallies sum to played matches", func(t *testing.T) {
		matches := []match.Match{
			{ID: 1, HomeTeamID: 1, AwayTeamID: 2, FinalScore: "2-0"},
			{ID: 2, HomeTeamID: 3, AwayTeamID: 1, FinalScore: "4-1"},
			{ID: 3, HomeTeamID: 1, AwayTeamID: 3, FinalScore: "1-1"},
			{ID: 4, HomeTeamID: 2, AwayTeamID: 3, FinalScore: "5-0"},
		}

		got := ComputeRecord(matches, 1)
		if got.Played != 3 {
			t.Fatalf("unexpected played count: got=%d want=3", got.Played)
		}
		if got.Wins+got.Draws+got.Losses != got.Played {
			t.Fatalf("tallies do not sum to played: %+v", got)
		}
	})

	t.Run("unrelated matches are skipped defensively", func(t *testing.T) {
		matches := []match.Match{
			{ID: 1, HomeTeamID: 2, AwayTeamID: 3, FinalScore: "9-9"},
		}

		got := ComputeRecord(matches, 1)
		if got.Played != 0 || got.GoalsFor != 0 || got.GoalsAgainst != 0 {
			t.Fatalf("unrelated match was counted: %+v", got)
		}
	})

	t.Run("missing score contributes a goalless default", func(t *testing.T) {
		matches := []match.Match{
			{ID: 1, HomeTeamID: 1, AwayTeamID: 2, FinalScore: ""},
		}

		got := ComputeRecord(matches, 1)
		if got.Played != 1 || got.Draws != 1 {
			t.Fatalf("unexpected record: %+v", got)
		}
		if got.GoalsFor != 0 || got.GoalsAgainst != 0 {
			t.Fatalf("unexpected goals: %+v", got)
		}
	})
}
