package repository

import (
	"context"
	"database/sql"
)

// PlayerRepo handles players.
type PlayerRepo struct {
	db *sql.DB
}

func NewPlayerRepo(db *sql.DB) *PlayerRepo {
	return &PlayerRepo{db: db}
}

func (r *PlayerRepo) Upsert(ctx context.Context, p Player) (int64, error) {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO players(ign, role, nationality, team_id, active, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(ign) DO UPDATE SET
	 role=excluded.role,
	 nationality=excluded.nationality,
	 team_id=excluded.team_id,
	 active=excluded.active,
	 updated_at=CURRENT_TIMESTAMP;
	`, p.IGN, p.Role, p.Nationality, p.TeamID, p.Active)
	if err != nil {
		return 0, err
	}
	// LastInsertId is stale on the conflict arm, so resolve by ign.
	var id int64
	err = r.db.QueryRowContext(ctx, `SELECT id FROM players WHERE ign = ?`, p.IGN).Scan(&id)
	return id, err
}

func (r *PlayerRepo) List(ctx context.Context) ([]Player, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, ign, role, nationality, team_id, active, created_at, updated_at FROM players ORDER BY ign`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Player
	for rows.Next() {
		var p Player
		var teamID sql.NullInt64
		if err := rows.Scan(&p.ID, &p.IGN, &p.Role, &p.Nationality, &teamID, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if teamID.Valid {
			p.TeamID = &teamID.Int64
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PlayerRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players WHERE active = 1`).Scan(&n)
	return n, err
}
