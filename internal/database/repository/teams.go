package repository

import (
	"context"
	"database/sql"
)

// TeamRepo handles teams.
type TeamRepo struct {
	db *sql.DB
}

func NewTeamRepo(db *sql.DB) *TeamRepo {
	return &TeamRepo{db: db}
}

func (r *TeamRepo) Upsert(ctx context.Context, t Team) (int64, error) {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO teams(name, short_name, region, founded_year, active, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(name) DO UPDATE SET
	 short_name=excluded.short_name,
	 region=excluded.region,
	 founded_year=excluded.founded_year,
	 active=excluded.active,
	 updated_at=CURRENT_TIMESTAMP;
	`, t.Name, t.ShortName, t.Region, t.FoundedYear, t.Active)
	if err != nil {
		return 0, err
	}
	// LastInsertId is stale on the conflict arm, so resolve by name.
	var id int64
	err = r.db.QueryRowContext(ctx, `SELECT id FROM teams WHERE name = ?`, t.Name).Scan(&id)
	return id, err
}

func (r *TeamRepo) List(ctx context.Context) ([]Team, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, short_name, region, founded_year, active, created_at, updated_at FROM teams ORDER BY short_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Team
	for rows.Next() {
		var t Team
		var founded sql.NullInt64
		if err := rows.Scan(&t.ID, &t.Name, &t.ShortName, &t.Region, &founded, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		if founded.Valid {
			year := int(founded.Int64)
			t.FoundedYear = &year
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TeamRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams WHERE active = 1`).Scan(&n)
	return n, err
}
