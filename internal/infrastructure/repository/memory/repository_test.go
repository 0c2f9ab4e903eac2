package memory

import (
	"context"
	"testing"

	"github.com/delilt/football-dashboard/internal/domain/team"
)

func TestTeamRepository_ListKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository([]team.Team{
		{ID: 3, Name: "Beşiktaş"},
		{ID: 1, Name: "Galatasaray"},
		{ID: 2, Name: "Fenerbahçe"},
	})

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(got))
	}
	if got[0].ID != 3 || got[1].ID != 1 || got[2].ID != 2 {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestTeamRepository_GetByID(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(SeedTeams())

	got, ok, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if !ok {
		t.Fatal("expected team 1 to exist")
	}
	if got.Name != "Galatasaray" {
		t.Fatalf("unexpected team: %+v", got)
	}

	_, ok, err = repo.GetByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if ok {
		t.Fatal("expected team 999 to be absent")
	}
}

func TestTeamRepository_ReplaceAllSwapsDataset(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(SeedTeams())

	if err := repo.ReplaceAll(context.Background(), []team.Team{{ID: 42, Name: "Kocaelispor"}}); err != nil {
		t.Fatalf("ReplaceAll error: %v", err)
	}

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 42 {
		t.Fatalf("expected only the replacement team, got %+v", got)
	}

	_, ok, _ := repo.GetByID(context.Background(), 1)
	if ok {
		t.Fatal("expected old team 1 to be gone after replace")
	}
}

func TestMatchRepository_ListReturnsCopy(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(SeedMatches())

	first, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	first[0].FinalScore = "9-9"

	second, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if second[0].FinalScore == "9-9" {
		t.Fatal("mutating a listed slice must not affect the repository")
	}
}

func TestMatchRepository_ReplaceAll(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(SeedMatches())

	if err := repo.ReplaceAll(context.Background(), nil); err != nil {
		t.Fatalf("ReplaceAll error: %v", err)
	}

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty dataset, got %d matches", len(got))
	}
}

func TestSeedDataIsStructurallyValid(t *testing.T) {
	t.Parallel()

	teams := SeedTeams()
	known := make(map[int64]bool, len(teams))
	for _, tm := range teams {
		if err := tm.Validate(); err != nil {
			t.Fatalf("seed team %d invalid: %v", tm.ID, err)
		}
		known[tm.ID] = true
	}

	for _, m := range SeedMatches() {
		if err := m.Validate(); err != nil {
			t.Fatalf("seed match %d invalid: %v", m.ID, err)
		}
		if !known[m.HomeTeamID] || !known[m.AwayTeamID] {
			t.Fatalf("seed match %d references unknown team", m.ID)
		}
	}
}
