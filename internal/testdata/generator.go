package testdata

import (
	"context"
	"fmt"
	"time"

	"github.com/Togss/esportsranker/internal/database/repository"
	"github.com/Togss/esportsranker/internal/service"
)

// Repos bundles repos used by Seed.
type Repos struct {
	Tournaments *repository.TournamentRepo
	Teams       *repository.TeamRepo
	Players     *repository.PlayerRepo
}

// Seed fills an empty database with a small believable dataset so the app
// has something to show on first run. A non-empty database is left alone.
func Seed(ctx context.Context, repos Repos) error {
	existing, err := repos.Tournaments.ListNames(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	teamIDs := make(map[string]int64)
	year := func(y int) *int { return &y }
	teams := []repository.Team{
		{Name: "Blacklist International", ShortName: "BLCK", Region: "PH", FoundedYear: year(2019), Active: true},
		{Name: "ONIC Esports", ShortName: "ONIC", Region: "ID", FoundedYear: year(2018), Active: true},
		{Name: "Falcon Esports", ShortName: "FLCN", Region: "MM", FoundedYear: year(2019), Active: true},
		{Name: "Selangor Red Giants", ShortName: "SRG", Region: "MY", FoundedYear: year(2013), Active: true},
		{Name: "AP Bren", ShortName: "APBR", Region: "PH", FoundedYear: year(2017), Active: true},
		{Name: "Team Liquid ID", ShortName: "TLID", Region: "ID", FoundedYear: year(2000), Active: true},
	}
	for _, team := range teams {
		id, err := repos.Teams.Upsert(ctx, team)
		if err != nil {
			return fmt.Errorf("seed team %s: %w", team.ShortName, err)
		}
		teamIDs[team.ShortName] = id
	}

	players := []struct {
		ign, role, nat, team string
	}{
		{"OhMyV33NUS", repository.RoleRoam, "PH", "BLCK"},
		{"Wise", repository.RoleJungle, "PH", "BLCK"},
		{"Kairi", repository.RoleJungle, "PH", "ONIC"},
		{"Sanz", repository.RoleMid, "ID", "ONIC"},
		{"KarlTzy", repository.RoleJungle, "PH", "APBR"},
		{"FlapTzy", repository.RoleExp, "PH", "APBR"},
		{"Lusty", repository.RoleRoam, "MY", "SRG"},
		{"Deadmon", repository.RoleGold, "MM", "FLCN"},
	}
	for _, p := range players {
		teamID := teamIDs[p.team]
		if _, err := repos.Players.Upsert(ctx, repository.Player{
			IGN: p.ign, Role: p.role, Nationality: p.nat, TeamID: &teamID, Active: true,
		}); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ign, err)
		}
	}

	svc := &service.TournamentService{Tournaments: repos.Tournaments}
	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	prize := func(usd int64) *int64 { return &usd }
	tournaments := []struct {
		draft service.TournamentDraft
		entry []string
	}{
		{
			draft: service.TournamentDraft{
				Name: "M5 World Championship", Region: "INTL", Tier: "SS",
				StartDate: date(2023, time.November, 23), EndDate: date(2023, time.December, 17),
				PrizePoolUSD: prize(900000),
			},
			entry: []string{"APBR", "ONIC", "BLCK", "FLCN"},
		},
		{
			draft: service.TournamentDraft{
				Name: "MPL PH Season 13", Region: "PH", Tier: "B",
				StartDate: date(2024, time.February, 16), EndDate: date(2024, time.April, 14),
			},
			entry: []string{"BLCK", "APBR"},
		},
		{
			draft: service.TournamentDraft{
				Name: "MPL ID Season 13", Region: "ID", Tier: "B",
				StartDate: date(2024, time.February, 23), EndDate: date(2024, time.April, 21),
			},
			entry: []string{"ONIC", "TLID"},
		},
		{
			draft: service.TournamentDraft{
				Name: "MSC 2024", Region: "INTL", Tier: "S",
				StartDate: date(2024, time.June, 28), EndDate: date(2024, time.July, 14),
				PrizePoolUSD: prize(3000000),
			},
			entry: []string{"FLCN", "SRG", "ONIC"},
		},
		{
			draft: service.TournamentDraft{Name: "M6 World Championship", Region: "INTL", Tier: "SS"},
		},
	}
	for _, entry := range tournaments {
		res, err := svc.Add(ctx, entry.draft)
		if err != nil {
			return fmt.Errorf("seed tournament %s: %w", entry.draft.Name, err)
		}
		for i, short := range entry.entry {
			seed := i + 1
			if err := repos.Tournaments.AddTeam(ctx, repository.Entry{
				TournamentID: res.ID, TeamID: teamIDs[short], Seed: &seed, Kind: repository.KindQualified,
			}); err != nil {
				return fmt.Errorf("seed entry %s: %w", short, err)
			}
		}
	}
	return nil
}
