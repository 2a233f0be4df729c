package repository

import "time"

// Tournament statuses. DRAFT is the column default for rows created without
// dates; the other three are recomputed from the dates on every write.
const (
	StatusDraft     = "DRAFT"
	StatusUpcoming  = "UPCOMING"
	StatusOngoing   = "ONGOING"
	StatusCompleted = "COMPLETED"
)

// Tournament tiers, strongest first.
var Tiers = []string{"SS", "S", "A", "B", "C", "D"}

// Regions recognised by the ranking service.
var Regions = []string{
	"NA", "ID", "MY", "PH", "SG", "BR", "VN", "MM", "TH", "IN",
	"TR", "EU", "JP", "CN", "MENA", "KR", "TW", "HK", "LATAM", "INTL",
}

// Player roles (lanes).
const (
	RoleGold   = "GOLD"
	RoleMid    = "MID"
	RoleJungle = "JUNGLE"
	RoleExp    = "EXP"
	RoleRoam   = "ROAM"
)

// Entry kinds: how a team got into a tournament.
const (
	KindInvited   = "INVITED"
	KindQualified = "QUALIFIED"
	KindWildcard  = "WILDCARD"
	KindFranchise = "FRANCHISE"
)

// Tournament represents a tournament row.
type Tournament struct {
	ID           int64
	Name         string
	Slug         string
	Region       string
	Tier         string
	StartDate    *time.Time
	EndDate      *time.Time
	Status       string
	PrizePoolUSD *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	TeamCount    int // entered teams, populated by List
}

// Team represents a team row.
type Team struct {
	ID          int64
	Name        string
	ShortName   string
	Region      string
	FoundedYear *int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Player represents a player row.
type Player struct {
	ID          int64
	IGN         string
	Role        string
	Nationality string
	TeamID      *int64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Entry represents a tournament_teams row.
type Entry struct {
	TournamentID int64
	TeamID       int64
	Seed         *int
	Kind         string
}
