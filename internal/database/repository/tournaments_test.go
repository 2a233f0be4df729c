package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Togss/esportsranker/internal/database"
)

func TestTournamentRepoNamesNewestFirst(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewTournamentRepo(db)

	for _, name := range []string{"MPL PH Season 13", "MSC 2024", "M6 World Championship"} {
		_, err := repo.Insert(ctx, Tournament{
			Name:   name,
			Slug:   name, // slugging is the service's job, any unique string works here
			Status: StatusDraft,
		})
		require.NoError(t, err)
	}

	names, err := repo.ListNames(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"M6 World Championship", "MSC 2024", "MPL PH Season 13"}, names)
	t.Log("names come back newest first")
}

func TestTournamentRepoListAndCounts(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewTournamentRepo(db)
	teams := NewTeamRepo(db)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
	prize := int64(300000)
	mscID, err := repo.Insert(ctx, Tournament{
		Name: "MSC 2024", Slug: "msc-2024", Region: "INTL", Tier: "S",
		StartDate: &start, EndDate: &end, Status: StatusCompleted, PrizePoolUSD: &prize,
	})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, Tournament{
		Name: "MPL PH Season 13", Slug: "mpl-ph-season-13", Region: "PH", Tier: "B",
		Status: StatusOngoing,
	})
	require.NoError(t, err)

	teamID, err := teams.Upsert(ctx, Team{Name: "Falcon Esports", ShortName: "FLCN", Region: "MM", Active: true})
	require.NoError(t, err)
	require.NoError(t, repo.AddTeam(ctx, Entry{TournamentID: mscID, TeamID: teamID, Kind: KindQualified}))
	// same entry again is a no-op
	require.NoError(t, repo.AddTeam(ctx, Entry{TournamentID: mscID, TeamID: teamID, Kind: KindQualified}))

	all, err := repo.List(ctx, TournamentFilters{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "MPL PH Season 13", all[0].Name) // newest first

	intl, err := repo.List(ctx, TournamentFilters{Region: "INTL"})
	require.NoError(t, err)
	require.Len(t, intl, 1)
	require.Equal(t, "MSC 2024", intl[0].Name)
	require.Equal(t, 1, intl[0].TeamCount)
	require.NotNil(t, intl[0].PrizePoolUSD)
	require.Equal(t, int64(300000), *intl[0].PrizePoolUSD)
	require.NotNil(t, intl[0].StartDate)
	require.Equal(t, "2024-06-01", intl[0].StartDate.UTC().Format("2006-01-02"))

	byName, err := repo.List(ctx, TournamentFilters{Search: "season"})
	require.NoError(t, err)
	require.Len(t, byName, 1)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]int{StatusCompleted: 1, StatusOngoing: 1}, counts)

	got, err := repo.Get(ctx, mscID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "msc-2024", got.Slug)

	missing, err := repo.Get(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, missing)

	bySlug, err := repo.BySlug(ctx, "msc-2024")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	require.Equal(t, mscID, bySlug.ID)

	exists, err := repo.SlugExists(ctx, "msc-2024")
	require.NoError(t, err)
	require.True(t, exists)
	exists, err = repo.SlugExists(ctx, "nope")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestRosterRepos(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	teams := NewTeamRepo(db)
	players := NewPlayerRepo(db)

	year := 2012
	teamID, err := teams.Upsert(ctx, Team{Name: "Blacklist International", ShortName: "BLCK", Region: "PH", FoundedYear: &year, Active: true})
	require.NoError(t, err)
	require.Greater(t, teamID, int64(0))

	// upsert by name keeps the id stable
	again, err := teams.Upsert(ctx, Team{Name: "Blacklist International", ShortName: "BLCK", Region: "PH", Active: true})
	require.NoError(t, err)
	require.Equal(t, teamID, again)

	_, err = players.Upsert(ctx, Player{IGN: "OhMyV33NUS", Role: RoleRoam, Nationality: "PH", TeamID: &teamID, Active: true})
	require.NoError(t, err)
	_, err = players.Upsert(ctx, Player{IGN: "Wise", Role: RoleJungle, Nationality: "PH", TeamID: &teamID, Active: true})
	require.NoError(t, err)

	list, err := teams.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].FoundedYear)
	require.Equal(t, 2012, *list[0].FoundedYear)

	roster, err := players.List(ctx)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	require.Equal(t, "OhMyV33NUS", roster[0].IGN) // ordered by ign

	teamCount, err := teams.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, teamCount)
	playerCount, err := players.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, playerCount)
}
