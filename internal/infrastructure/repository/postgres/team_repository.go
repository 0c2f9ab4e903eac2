package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/delilt/football-dashboard/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name FROM teams ORDER BY id`); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, `SELECT id, name FROM teams WHERE id = $1`, teamID); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}

	return row.toDomain(), true, nil
}

// ReplaceAll swaps the whole table for the snapshot in one transaction, so
// readers never observe a half-replaced dataset.
func (r *TeamRepository) ReplaceAll(ctx context.Context, teams []team.Team) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace teams: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM teams`); err != nil {
		return fmt.Errorf("clear teams: %w", err)
	}

	if len(teams) > 0 {
		rows := make([]teamTableModel, 0, len(teams))
		for _, t := range teams {
			rows = append(rows, teamTableModel{ID: t.ID, Name: t.Name})
		}
		if _, err := tx.NamedExecContext(ctx, `INSERT INTO teams (id, name) VALUES (:id, :name)`, rows); err != nil {
			return fmt.Errorf("insert teams: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace teams: %w", err)
	}

	return nil
}
