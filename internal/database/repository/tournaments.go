package repository

import (
	"context"
	"database/sql"
	"strings"
)

// TournamentFilters defines list filters.
type TournamentFilters struct {
	Region string
	Tier   string
	Status string
	Search string
}

// TournamentRepo handles tournaments.
type TournamentRepo struct {
	db *sql.DB
}

func NewTournamentRepo(db *sql.DB) *TournamentRepo { return &TournamentRepo{db: db} }

func (r *TournamentRepo) Insert(ctx context.Context, t Tournament) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
	INSERT INTO tournaments(
	 name, slug, region, tier, start_date, end_date, status, prize_pool_usd, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`,
		t.Name, t.Slug, t.Region, t.Tier, t.StartDate, t.EndDate, t.Status, t.PrizePoolUSD)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *TournamentRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tournaments SET status = ?, updated_at=CURRENT_TIMESTAMP WHERE id = ?`, status, id)
	return err
}

// ListNames returns tournament names newest first, the order the UI shows.
func (r *TournamentRepo) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM tournaments ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *TournamentRepo) List(ctx context.Context, f TournamentFilters) ([]Tournament, error) {
	var where []string
	var args []interface{}

	if f.Region != "" {
		where = append(where, "region = ?")
		args = append(args, f.Region)
	}
	if f.Tier != "" {
		where = append(where, "tier = ?")
		args = append(args, f.Tier)
	}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, f.Status)
	}
	if f.Search != "" {
		where = append(where, "name LIKE ?")
		args = append(args, "%"+f.Search+"%")
	}

	query := `SELECT id, name, slug, region, tier, start_date, end_date, status, prize_pool_usd, created_at, updated_at,
	 (SELECT COUNT(*) FROM tournament_teams tt WHERE tt.tournament_id = tournaments.id) AS team_count
	 FROM tournaments`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Tournament
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListWithDates returns tournaments that have both dates set, for status
// recomputation.
func (r *TournamentRepo) ListWithDates(ctx context.Context) ([]Tournament, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, slug, region, tier, start_date, end_date, status, prize_pool_usd, created_at, updated_at, 0
	 FROM tournaments WHERE start_date IS NOT NULL AND end_date IS NOT NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Tournament
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TournamentRepo) Get(ctx context.Context, id int64) (*Tournament, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, slug, region, tier, start_date, end_date, status, prize_pool_usd, created_at, updated_at,
	 (SELECT COUNT(*) FROM tournament_teams tt WHERE tt.tournament_id = tournaments.id)
	 FROM tournaments WHERE id = ?`, id)
	t, err := scanTournament(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TournamentRepo) BySlug(ctx context.Context, slug string) (*Tournament, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, slug, region, tier, start_date, end_date, status, prize_pool_usd, created_at, updated_at,
	 (SELECT COUNT(*) FROM tournament_teams tt WHERE tt.tournament_id = tournaments.id)
	 FROM tournaments WHERE slug = ?`, slug)
	t, err := scanTournament(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TournamentRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tournaments WHERE slug = ?`, slug).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountByStatus returns stats for the dashboard.
func (r *TournamentRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM tournaments GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

// AddTeam enters a team into a tournament. Re-entering is a no-op.
func (r *TournamentRepo) AddTeam(ctx context.Context, e Entry) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO tournament_teams(tournament_id, team_id, seed, kind) VALUES(?, ?, ?, ?)`,
		e.TournamentID, e.TeamID, e.Seed, e.Kind)
	return err
}

// scanTournament handles nullable fields for both Row and Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTournament(row scanner) (Tournament, error) {
	var t Tournament
	var start, end sql.NullTime
	var prize sql.NullInt64
	if err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.Region, &t.Tier, &start, &end,
		&t.Status, &prize, &t.CreatedAt, &t.UpdatedAt, &t.TeamCount); err != nil {
		return Tournament{}, err
	}
	if start.Valid {
		t.StartDate = &start.Time
	}
	if end.Valid {
		t.EndDate = &end.Time
	}
	if prize.Valid {
		t.PrizePoolUSD = &prize.Int64
	}
	return t, nil
}
