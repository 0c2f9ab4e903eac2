package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/delilt/football-dashboard/internal/domain/match"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	var rows []matchTableModel
	query := `SELECT id, home_team_id, away_team_id, final_score, first_half_score,
		match_date, league, country, season
		FROM matches ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

// ReplaceAll swaps the whole table for the snapshot in one transaction.
func (r *MatchRepository) ReplaceAll(ctx context.Context, matches []match.Match) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace matches: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM matches`); err != nil {
		return fmt.Errorf("clear matches: %w", err)
	}

	if len(matches) > 0 {
		rows := make([]matchTableModel, 0, len(matches))
		for _, m := range matches {
			rows = append(rows, matchToModel(m))
		}
		query := `INSERT INTO matches (id, home_team_id, away_team_id, final_score,
			first_half_score, match_date, league, country, season)
			VALUES (:id, :home_team_id, :away_team_id, :final_score,
			:first_half_score, :match_date, :league, :country, :season)`
		if _, err := tx.NamedExecContext(ctx, query, rows); err != nil {
			return fmt.Errorf("insert matches: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace matches: %w", err)
	}

	return nil
}
